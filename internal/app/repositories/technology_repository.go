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
	"github.com/yigit/memberhub/internal/pkg/dberrors"
	"github.com/yigit/memberhub/internal/pkg/logger"
)

const technologiesNameKey = "technologies_name_key"

// TechnologyRepository handles database operations for technologies
type TechnologyRepository struct {
	DB *pgxpool.Pool
}

// NewTechnologyRepository creates a new TechnologyRepository
func NewTechnologyRepository(db *pgxpool.Pool) *TechnologyRepository {
	return &TechnologyRepository{DB: db}
}

func selectTechnologies() squirrel.SelectBuilder {
	return psql.Select("t.id", "t.name", "t.description", "t.icon",
		"(SELECT COUNT(*) FROM project_technologies pt WHERE pt.technology_id = t.id)").
		From("technologies t")
}

func scanTechnology(row pgx.Row) (*models.Technology, error) {
	var t models.Technology
	if err := row.Scan(&t.ID, &t.Name, &t.Description, &t.Icon, &t.ProjectCount); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTechnologyNotFound
		}
		return nil, err
	}
	return &t, nil
}

// Create inserts a technology; duplicate names yield ErrTechnologyExists
func (r *TechnologyRepository) Create(ctx context.Context, t *models.Technology) error {
	sql, args, err := psql.Insert("technologies").
		Columns("name", "description", "icon").
		Values(t.Name, t.Description, t.Icon).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create technology query: %w", err)
	}
	if err := r.DB.QueryRow(ctx, sql, args...).Scan(&t.ID); err != nil {
		if dberrors.IsDuplicateConstraintError(err, technologiesNameKey) {
			return apperrors.ErrTechnologyExists
		}
		logger.Error().Err(err).Str("name", t.Name).Msg("Error creating technology")
		return fmt.Errorf("failed to create technology: %w", err)
	}
	return nil
}

// Update persists name, description and icon
func (r *TechnologyRepository) Update(ctx context.Context, t *models.Technology) error {
	sql, args, err := psql.Update("technologies").
		Set("name", t.Name).
		Set("description", t.Description).
		Set("icon", t.Icon).
		Where(squirrel.Eq{"id": t.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update technology query: %w", err)
	}
	tag, err := r.DB.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, technologiesNameKey) {
			return apperrors.ErrTechnologyExists
		}
		return fmt.Errorf("failed to update technology: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrTechnologyNotFound
	}
	return nil
}

// Delete removes a technology; referenced ones yield ErrTechnologyInUse
func (r *TechnologyRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := psql.Delete("technologies").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete technology query: %w", err)
	}
	tag, err := r.DB.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrTechnologyInUse
		}
		return fmt.Errorf("failed to delete technology: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrTechnologyNotFound
	}
	return nil
}

// GetByID retrieves a technology with its project count
func (r *TechnologyRepository) GetByID(ctx context.Context, id int64) (*models.Technology, error) {
	sql, args, err := selectTechnologies().Where(squirrel.Eq{"t.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get technology query: %w", err)
	}
	return scanTechnology(r.DB.QueryRow(ctx, sql, args...))
}

// GetByName retrieves a technology by exact name
func (r *TechnologyRepository) GetByName(ctx context.Context, name string) (*models.Technology, error) {
	sql, args, err := selectTechnologies().Where(squirrel.Eq{"t.name": name}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get technology query: %w", err)
	}
	return scanTechnology(r.DB.QueryRow(ctx, sql, args...))
}

// GetByIDs returns the technologies that exist among ids; unknown ids are skipped
func (r *TechnologyRepository) GetByIDs(ctx context.Context, ids []int64) ([]*models.Technology, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.list(ctx, selectTechnologies().Where(squirrel.Eq{"t.id": ids}).OrderBy("t.name ASC"))
}

// List returns all technologies ordered by name
func (r *TechnologyRepository) List(ctx context.Context) ([]*models.Technology, error) {
	return r.list(ctx, selectTechnologies().OrderBy("t.name ASC"))
}

func (r *TechnologyRepository) list(ctx context.Context, q squirrel.SelectBuilder) ([]*models.Technology, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list technologies query: %w", err)
	}
	rows, err := r.DB.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list technologies: %w", err)
	}
	defer rows.Close()

	var techs []*models.Technology
	for rows.Next() {
		t, err := scanTechnology(rows)
		if err != nil {
			return nil, err
		}
		techs = append(techs, t)
	}
	return techs, rows.Err()
}

// ProjectsFor lists the projects referencing a technology
func (r *TechnologyRepository) ProjectsFor(ctx context.Context, technologyID int64) ([]*models.Project, error) {
	sql, args, err := psql.Select("p.id", "p.name", "p.visible").
		From("projects p").
		Join("project_technologies pt ON pt.project_id = p.id").
		Where(squirrel.Eq{"pt.technology_id": technologyID}).
		OrderBy("p.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build technology projects query: %w", err)
	}
	rows, err := r.DB.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to load technology projects: %w", err)
	}
	defer rows.Close()

	var projects []*models.Project
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Visible); err != nil {
			return nil, err
		}
		projects = append(projects, &p)
	}
	return projects, rows.Err()
}
