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

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	DB    *pgxpool.Pool
	files fileLinks
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{
		DB:    db,
		files: fileLinks{table: "project_files", ownerColumn: "project_id"},
	}
}

var projectColumns = []string{
	"p.id", "p.name", "p.description", "p.participants", "p.start_date", "p.end_date",
	"p.technologies", "p.project_link", "p.repo_link", "p.future", "p.visible", "p.created_at",
}

func scanProject(row pgx.Row) (*models.Project, error) {
	var p models.Project
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Participants, &p.StartDate, &p.EndDate,
		&p.Technologies, &p.ProjectLink, &p.RepoLink, &p.Future, &p.Visible, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, err
	}
	return &p, nil
}

func stringsOrEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// Create inserts a project together with its technology relations
func (r *ProjectRepository) Create(ctx context.Context, p *models.Project) error {
	sql, args, err := psql.Insert("projects").
		Columns("name", "description", "participants", "start_date", "end_date", "technologies",
			"project_link", "repo_link", "future", "visible").
		Values(p.Name, p.Description, stringsOrEmpty(p.Participants), p.StartDate, p.EndDate,
			stringsOrEmpty(p.Technologies), p.ProjectLink, p.RepoLink, p.Future, p.Visible).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create project query: %w", err)
	}

	return withTransaction(ctx, r.DB, func(ctx context.Context, tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, sql, args...).Scan(&p.ID, &p.CreatedAt); err != nil {
			logger.Error().Err(err).Str("name", p.Name).Msg("Error creating project")
			return fmt.Errorf("failed to create project: %w", err)
		}
		return setTechnologies(ctx, tx, p.ID, p.TechnologyRelations)
	})
}

// Update persists the project; relations are rewritten only when
// replaceTechnologies is set
func (r *ProjectRepository) Update(ctx context.Context, p *models.Project, replaceTechnologies bool) error {
	sql, args, err := psql.Update("projects").
		Set("name", p.Name).
		Set("description", p.Description).
		Set("participants", stringsOrEmpty(p.Participants)).
		Set("start_date", p.StartDate).
		Set("end_date", p.EndDate).
		Set("technologies", stringsOrEmpty(p.Technologies)).
		Set("project_link", p.ProjectLink).
		Set("repo_link", p.RepoLink).
		Set("future", p.Future).
		Set("visible", p.Visible).
		Where(squirrel.Eq{"id": p.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update project query: %w", err)
	}

	return withTransaction(ctx, r.DB, func(ctx context.Context, tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			logger.Error().Err(err).Int64("projectID", p.ID).Msg("Error updating project")
			return fmt.Errorf("failed to update project: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrProjectNotFound
		}
		if !replaceTechnologies {
			return nil
		}

		del, delArgs, err := psql.Delete("project_technologies").Where(squirrel.Eq{"project_id": p.ID}).ToSql()
		if err != nil {
			return fmt.Errorf("failed to build clear technologies query: %w", err)
		}
		if _, err := tx.Exec(ctx, del, delArgs...); err != nil {
			return fmt.Errorf("failed to clear project technologies: %w", err)
		}
		return setTechnologies(ctx, tx, p.ID, p.TechnologyRelations)
	})
}

func setTechnologies(ctx context.Context, tx pgx.Tx, projectID int64, techs []*models.Technology) error {
	if len(techs) == 0 {
		return nil
	}
	q := psql.Insert("project_technologies").Columns("project_id", "technology_id")
	for _, t := range techs {
		q = q.Values(projectID, t.ID)
	}
	sql, args, err := q.Suffix("ON CONFLICT DO NOTHING").ToSql()
	if err != nil {
		return fmt.Errorf("failed to build project technologies query: %w", err)
	}
	if _, err := tx.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("failed to link project technologies: %w", err)
	}
	return nil
}

// SetVisible toggles publication
func (r *ProjectRepository) SetVisible(ctx context.Context, id int64, visible bool) error {
	sql, args, err := psql.Update("projects").Set("visible", visible).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build project visibility query: %w", err)
	}
	tag, err := r.DB.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to update project visibility: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrProjectNotFound
	}
	return nil
}

// GetByID retrieves a project with its files and technology relations
func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	sql, args, err := psql.Select(projectColumns...).From("projects p").Where(squirrel.Eq{"p.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get project query: %w", err)
	}
	p, err := scanProject(r.DB.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, err
	}
	if err := r.loadRelations(ctx, []*models.Project{p}); err != nil {
		return nil, err
	}
	return p, nil
}

// List returns projects by start date, newest first, undated last
func (r *ProjectRepository) List(ctx context.Context, visibleOnly bool) ([]*models.Project, error) {
	q := psql.Select(projectColumns...).From("projects p").OrderBy("p.start_date DESC NULLS LAST", "p.id DESC")
	if visibleOnly {
		q = q.Where(squirrel.Eq{"p.visible": true})
	}
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list projects query: %w", err)
	}

	rows, err := r.DB.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	var projects []*models.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		projects = append(projects, p)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.loadRelations(ctx, projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *ProjectRepository) loadRelations(ctx context.Context, projects []*models.Project) error {
	ids := make([]int64, 0, len(projects))
	for _, p := range projects {
		ids = append(ids, p.ID)
	}
	files, err := r.files.filesFor(ctx, r.DB, ids...)
	if err != nil {
		return err
	}
	techs, err := r.technologiesFor(ctx, ids...)
	if err != nil {
		return err
	}
	for _, p := range projects {
		p.Files = files[p.ID]
		p.TechnologyRelations = techs[p.ID]
	}
	return nil
}

func (r *ProjectRepository) technologiesFor(ctx context.Context, projectIDs ...int64) (map[int64][]*models.Technology, error) {
	result := make(map[int64][]*models.Technology, len(projectIDs))
	if len(projectIDs) == 0 {
		return result, nil
	}
	sql, args, err := psql.Select("pt.project_id", "t.id", "t.name", "t.description", "t.icon").
		From("project_technologies pt").
		Join("technologies t ON t.id = pt.technology_id").
		Where(squirrel.Eq{"pt.project_id": projectIDs}).
		OrderBy("t.name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build project technologies query: %w", err)
	}

	rows, err := r.DB.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to load project technologies: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var projectID int64
		var t models.Technology
		if err := rows.Scan(&projectID, &t.ID, &t.Name, &t.Description, &t.Icon); err != nil {
			return nil, err
		}
		result[projectID] = append(result[projectID], &t)
	}
	return result, rows.Err()
}

// AttachFiles links uploaded files to the project
func (r *ProjectRepository) AttachFiles(ctx context.Context, projectID int64, fileIDs ...int64) error {
	return r.files.attach(ctx, r.DB, projectID, fileIDs...)
}
