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

const eventsEventPathKey = "events_event_path_key"

// EventRepository handles database operations for events
type EventRepository struct {
	DB    *pgxpool.Pool
	files fileLinks
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{
		DB:    db,
		files: fileLinks{table: "event_files", ownerColumn: "event_id"},
	}
}

func selectEvents() squirrel.SelectBuilder {
	return psql.Select(
		"e.id", "e.title", "e.content", "e.description", "e.event_path", "e.event_date",
		"e.visible", "e.author_id", "e.edit_history", "e.created_at",
		"a.first_name", "a.last_name",
	).From("events e").Join("members a ON a.id = e.author_id")
}

func scanEvent(row pgx.Row) (*models.Event, error) {
	var e models.Event
	author := &models.Member{}
	err := row.Scan(
		&e.ID, &e.Title, &e.Content, &e.Description, &e.EventPath, &e.EventDate,
		&e.Visible, &e.AuthorID, &e.EditHistory, &e.CreatedAt,
		&author.FirstName, &author.LastName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}
	author.ID = e.AuthorID
	e.Author = author
	return &e, nil
}

func historyOrEmpty(h []models.EditHistoryEntry) []models.EditHistoryEntry {
	if h == nil {
		return []models.EditHistoryEntry{}
	}
	return h
}

// Create inserts an event; a taken path yields ErrEventPathTaken
func (r *EventRepository) Create(ctx context.Context, e *models.Event) error {
	sql, args, err := psql.Insert("events").
		Columns("title", "content", "description", "event_path", "event_date", "visible", "author_id", "edit_history").
		Values(e.Title, e.Content, e.Description, e.EventPath, e.EventDate, e.Visible, e.AuthorID, historyOrEmpty(e.EditHistory)).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create event query: %w", err)
	}

	if err := r.DB.QueryRow(ctx, sql, args...).Scan(&e.ID, &e.CreatedAt); err != nil {
		if dberrors.IsDuplicateConstraintError(err, eventsEventPathKey) {
			return apperrors.ErrEventPathTaken
		}
		logger.Error().Err(err).Str("path", e.EventPath).Msg("Error creating event")
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

// Update persists every mutable column of the event
func (r *EventRepository) Update(ctx context.Context, e *models.Event) error {
	sql, args, err := psql.Update("events").
		Set("title", e.Title).
		Set("content", e.Content).
		Set("description", e.Description).
		Set("event_path", e.EventPath).
		Set("event_date", e.EventDate).
		Set("visible", e.Visible).
		Set("edit_history", historyOrEmpty(e.EditHistory)).
		Where(squirrel.Eq{"id": e.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update event query: %w", err)
	}

	tag, err := r.DB.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, eventsEventPathKey) {
			return apperrors.ErrEventPathTaken
		}
		logger.Error().Err(err).Int64("eventID", e.ID).Msg("Error updating event")
		return fmt.Errorf("failed to update event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}
	return nil
}

// SetVisible toggles publication without touching edit history
func (r *EventRepository) SetVisible(ctx context.Context, id int64, visible bool) error {
	sql, args, err := psql.Update("events").Set("visible", visible).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build event visibility query: %w", err)
	}
	tag, err := r.DB.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to update event visibility: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}
	return nil
}

// GetByID retrieves an event with its files
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	return r.getOne(ctx, squirrel.Eq{"e.id": id})
}

// GetByPath retrieves an event by its URL path
func (r *EventRepository) GetByPath(ctx context.Context, path string) (*models.Event, error) {
	return r.getOne(ctx, squirrel.Eq{"e.event_path": path})
}

func (r *EventRepository) getOne(ctx context.Context, where squirrel.Sqlizer) (*models.Event, error) {
	sql, args, err := selectEvents().Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get event query: %w", err)
	}
	e, err := scanEvent(r.DB.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, err
	}
	files, err := r.files.filesFor(ctx, r.DB, e.ID)
	if err != nil {
		return nil, err
	}
	e.Files = files[e.ID]
	return e, nil
}

// PathExists reports whether another event already uses path
func (r *EventRepository) PathExists(ctx context.Context, path string, excludeID int64) (bool, error) {
	q := psql.Select("1").From("events").Where(squirrel.Eq{"event_path": path})
	if excludeID > 0 {
		q = q.Where(squirrel.NotEq{"id": excludeID})
	}
	sql, args, err := q.Prefix("SELECT EXISTS (").Suffix(")").ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build path query: %w", err)
	}
	var exists bool
	if err := r.DB.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check event path: %w", err)
	}
	return exists, nil
}

// List returns events ordered by date, ascending or descending
func (r *EventRepository) List(ctx context.Context, visibleOnly, ascending bool) ([]*models.Event, error) {
	q := selectEvents()
	if visibleOnly {
		q = q.Where(squirrel.Eq{"e.visible": true})
	}
	if ascending {
		q = q.OrderBy("e.event_date ASC", "e.id ASC")
	} else {
		q = q.OrderBy("e.event_date DESC", "e.id DESC")
	}
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list events query: %w", err)
	}

	rows, err := r.DB.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	var events []*models.Event
	var ids []int64
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		events = append(events, e)
		ids = append(ids, e.ID)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	files, err := r.files.filesFor(ctx, r.DB, ids...)
	if err != nil {
		return nil, err
	}
	for _, e := range events {
		e.Files = files[e.ID]
	}
	return events, nil
}

// AttachFiles links uploaded files to the event
func (r *EventRepository) AttachFiles(ctx context.Context, eventID int64, fileIDs ...int64) error {
	return r.files.attach(ctx, r.DB, eventID, fileIDs...)
}
