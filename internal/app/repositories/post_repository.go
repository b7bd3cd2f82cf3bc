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

// PostRepository handles database operations for posts
type PostRepository struct {
	DB    *pgxpool.Pool
	files fileLinks
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(db *pgxpool.Pool) *PostRepository {
	return &PostRepository{
		DB:    db,
		files: fileLinks{table: "post_files", ownerColumn: "post_id"},
	}
}

func selectPosts() squirrel.SelectBuilder {
	return psql.Select(
		"p.id", "p.title", "p.content", "p.super_event", "p.visible", "p.author_id",
		"p.edit_history", "p.created_at", "a.first_name", "a.last_name",
	).From("posts p").Join("members a ON a.id = p.author_id")
}

func scanPost(row pgx.Row) (*models.Post, error) {
	var p models.Post
	author := &models.Member{}
	err := row.Scan(
		&p.ID, &p.Title, &p.Content, &p.SuperEvent, &p.Visible, &p.AuthorID,
		&p.EditHistory, &p.CreatedAt, &author.FirstName, &author.LastName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, err
	}
	author.ID = p.AuthorID
	p.Author = author
	return &p, nil
}

// Create inserts a post
func (r *PostRepository) Create(ctx context.Context, p *models.Post) error {
	sql, args, err := psql.Insert("posts").
		Columns("title", "content", "super_event", "visible", "author_id", "edit_history").
		Values(p.Title, p.Content, p.SuperEvent, p.Visible, p.AuthorID, historyOrEmpty(p.EditHistory)).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create post query: %w", err)
	}
	if err := r.DB.QueryRow(ctx, sql, args...).Scan(&p.ID, &p.CreatedAt); err != nil {
		logger.Error().Err(err).Msg("Error creating post")
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

// Update persists every mutable column of the post
func (r *PostRepository) Update(ctx context.Context, p *models.Post) error {
	sql, args, err := psql.Update("posts").
		Set("title", p.Title).
		Set("content", p.Content).
		Set("super_event", p.SuperEvent).
		Set("visible", p.Visible).
		Set("edit_history", historyOrEmpty(p.EditHistory)).
		Where(squirrel.Eq{"id": p.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update post query: %w", err)
	}
	tag, err := r.DB.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("postID", p.ID).Msg("Error updating post")
		return fmt.Errorf("failed to update post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrPostNotFound
	}
	return nil
}

// SetVisible toggles publication without touching edit history
func (r *PostRepository) SetVisible(ctx context.Context, id int64, visible bool) error {
	sql, args, err := psql.Update("posts").Set("visible", visible).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build post visibility query: %w", err)
	}
	tag, err := r.DB.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to update post visibility: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrPostNotFound
	}
	return nil
}

// GetByID retrieves a post with its files
func (r *PostRepository) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	sql, args, err := selectPosts().Where(squirrel.Eq{"p.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get post query: %w", err)
	}
	p, err := scanPost(r.DB.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, err
	}
	files, err := r.files.filesFor(ctx, r.DB, p.ID)
	if err != nil {
		return nil, err
	}
	p.Files = files[p.ID]
	return p, nil
}

// List returns posts newest first
func (r *PostRepository) List(ctx context.Context, visibleOnly bool) ([]*models.Post, error) {
	q := selectPosts().OrderBy("p.id DESC")
	if visibleOnly {
		q = q.Where(squirrel.Eq{"p.visible": true})
	}
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list posts query: %w", err)
	}

	rows, err := r.DB.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	var posts []*models.Post
	var ids []int64
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		posts = append(posts, p)
		ids = append(ids, p.ID)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	files, err := r.files.filesFor(ctx, r.DB, ids...)
	if err != nil {
		return nil, err
	}
	for _, p := range posts {
		p.Files = files[p.ID]
	}
	return posts, nil
}

// AttachFiles links uploaded files to the post
func (r *PostRepository) AttachFiles(ctx context.Context, postID int64, fileIDs ...int64) error {
	return r.files.attach(ctx, r.DB, postID, fileIDs...)
}
