package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/memberhub/internal/app/models"
	"github.com/yigit/memberhub/internal/pkg/apperrors"
	"github.com/yigit/memberhub/internal/pkg/logger"
)

// FileRepository handles database operations for files
type FileRepository struct {
	DB *pgxpool.Pool
}

// NewFileRepository creates a new FileRepository
func NewFileRepository(db *pgxpool.Pool) *FileRepository {
	return &FileRepository{DB: db}
}

var fileColumns = []string{
	"f.id", "f.original_name", "f.stored_path", "f.mime_type", "f.file_type", "f.category",
	"f.permissions", "f.size", "f.uploaded_by", "f.created_at",
}

// selectFiles joins the uploader so listings can show who uploaded what
func selectFiles() squirrel.SelectBuilder {
	cols := append([]string{}, fileColumns...)
	cols = append(cols, "u.first_name", "u.last_name")
	return psql.Select(cols...).From("files f").LeftJoin("members u ON u.id = f.uploaded_by")
}

func scanFile(row pgx.Row, extra ...interface{}) (*models.File, error) {
	var f models.File
	var firstName, lastName *string
	dest := []interface{}{
		&f.ID, &f.OriginalName, &f.StoredPath, &f.MimeType, &f.FileType, &f.Category,
		&f.Permissions, &f.Size, &f.UploadedBy, &f.CreatedAt, &firstName, &lastName,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFileNotFound
		}
		return nil, err
	}
	if f.UploadedBy != nil && firstName != nil {
		f.Uploader = &models.Member{ID: *f.UploadedBy, FirstName: *firstName}
		if lastName != nil {
			f.Uploader.LastName = *lastName
		}
	}
	return &f, nil
}

// Create inserts a file record
func (r *FileRepository) Create(ctx context.Context, f *models.File) error {
	sql, args, err := psql.Insert("files").
		Columns("original_name", "stored_path", "mime_type", "file_type", "category", "permissions", "size", "uploaded_by").
		Values(f.OriginalName, f.StoredPath, f.MimeType, f.FileType, f.Category, f.Permissions, f.Size, f.UploadedBy).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create file query: %w", err)
	}

	if err := r.DB.QueryRow(ctx, sql, args...).Scan(&f.ID, &f.CreatedAt); err != nil {
		logger.Error().Err(err).Str("path", f.StoredPath).Msg("Error creating file record")
		return fmt.Errorf("failed to create file record: %w", err)
	}
	return nil
}

// GetByID retrieves a file by ID
func (r *FileRepository) GetByID(ctx context.Context, id int64) (*models.File, error) {
	sql, args, err := selectFiles().Where(squirrel.Eq{"f.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get file query: %w", err)
	}
	return scanFile(r.DB.QueryRow(ctx, sql, args...))
}

// GetByStoredPath retrieves a file by its relative stored path
func (r *FileRepository) GetByStoredPath(ctx context.Context, storedPath string) (*models.File, error) {
	sql, args, err := selectFiles().Where(squirrel.Eq{"f.stored_path": storedPath}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get file query: %w", err)
	}
	return scanFile(r.DB.QueryRow(ctx, sql, args...))
}

// ListByCategory returns files of a category, newest first
func (r *FileRepository) ListByCategory(ctx context.Context, category models.FileCategory) ([]*models.File, error) {
	sql, args, err := selectFiles().Where(squirrel.Eq{"f.category": category}).OrderBy("f.id DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list files query: %w", err)
	}

	rows, err := r.DB.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}
	defer rows.Close()

	var files []*models.File
	for rows.Next() {
		f, err := scanFile(rows)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, rows.Err()
}

// Delete removes the record; join rows cascade and member photos are nulled
func (r *FileRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := psql.Delete("files").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete file query: %w", err)
	}
	tag, err := r.DB.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("fileID", id).Msg("Error deleting file record")
		return fmt.Errorf("failed to delete file record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrFileNotFound
	}
	return nil
}

// fileLinks manages one owner-to-file join table
type fileLinks struct {
	table       string
	ownerColumn string
}

// attach links files to the owner; existing links are kept
func (l fileLinks) attach(ctx context.Context, db *pgxpool.Pool, ownerID int64, fileIDs ...int64) error {
	if len(fileIDs) == 0 {
		return nil
	}
	q := psql.Insert(l.table).Columns(l.ownerColumn, "file_id")
	for _, id := range fileIDs {
		q = q.Values(ownerID, id)
	}
	sql, args, err := q.Suffix("ON CONFLICT DO NOTHING").ToSql()
	if err != nil {
		return fmt.Errorf("failed to build attach files query: %w", err)
	}
	if _, err := db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("failed to attach files to %s: %w", l.table, err)
	}
	return nil
}

// filesFor loads the files of each owner, keyed by owner ID
func (l fileLinks) filesFor(ctx context.Context, db *pgxpool.Pool, ownerIDs ...int64) (map[int64][]*models.File, error) {
	result := make(map[int64][]*models.File, len(ownerIDs))
	if len(ownerIDs) == 0 {
		return result, nil
	}

	sql, args, err := selectFiles().
		Column("l." + l.ownerColumn).
		Join(l.table + " l ON l.file_id = f.id").
		Where(squirrel.Eq{"l." + l.ownerColumn: ownerIDs}).
		OrderBy("f.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build files query: %w", err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to load files from %s: %w", l.table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var ownerID int64
		f, err := scanFile(rows, &ownerID)
		if err != nil {
			return nil, err
		}
		result[ownerID] = append(result[ownerID], f)
	}
	return result, rows.Err()
}
