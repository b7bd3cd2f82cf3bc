package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	appauth "github.com/yigit/memberhub/internal/app/auth"
	"github.com/yigit/memberhub/internal/app/models"
	"github.com/yigit/memberhub/internal/app/models/dto"
	"github.com/yigit/memberhub/internal/pkg/apperrors"
)

const (
	msgEventRequired     = "Tytuł, treść i data wydarzenia są wymagane"
	msgInvalidDate       = "Nieprawidłowy format daty"
	msgEventNotFound     = "Wydarzenie nie zostało znalezione"
	msgEventForbidden    = "Brak uprawnień do edycji tego wydarzenia"
	msgEventUnavailable  = "Wydarzenie nie jest dostępne"
	msgVisibilityAdmin   = "Tylko administrator może zmieniać widoczność"
	fallbackEventPath    = "wydarzenie"
	eventPathInsertTries = 3
)

// EventService defines the interface for event operations
type EventService interface {
	Create(ctx context.Context, actor *models.Member, in *dto.EventInput, files []*multipart.FileHeader) (*dto.EventResponse, error)
	Edit(ctx context.Context, actor *models.Member, id int64, in *dto.EventInput, files []*multipart.FileHeader) (*dto.EventResponse, error)
	SetVisibility(ctx context.Context, actor *models.Member, id int64, visible bool) (*dto.EventVisibilityResponse, error)
	ListVisible(ctx context.Context) ([]dto.EventResponse, error)
	ListAll(ctx context.Context) ([]dto.EventResponse, error)
	GetByPath(ctx context.Context, path string) (*dto.EventResponse, error)
}

// eventServiceImpl implements EventService
type eventServiceImpl struct {
	events   EventStore
	uploads  FileUploadService
	notifier ReviewNotifier
	logger   zerolog.Logger
	now      func() time.Time
}

// NewEventService creates a new EventService
func NewEventService(events EventStore, uploads FileUploadService, notifier ReviewNotifier, logger zerolog.Logger) EventService {
	return &eventServiceImpl{
		events:   events,
		uploads:  uploads,
		notifier: notifierOrNoop(notifier),
		logger:   logger,
		now:      time.Now,
	}
}

// uniquePath appends -1, -2, ... to base until no other event uses it
func (s *eventServiceImpl) uniquePath(ctx context.Context, base string, excludeID int64) (string, error) {
	if base == "" {
		base = fallbackEventPath
	}
	candidate := base
	for i := 1; ; i++ {
		exists, err := s.events.PathExists(ctx, candidate, excludeID)
		if err != nil {
			return "", fmt.Errorf("error checking event path: %w", err)
		}
		if !exists {
			return candidate, nil
		}
		candidate = base + "-" + strconv.Itoa(i)
	}
}

// storeWithPath picks a free path from base and runs store. When a
// concurrent writer claims the path first, the search is repeated up to
// eventPathInsertTries times.
func (s *eventServiceImpl) storeWithPath(ctx context.Context, event *models.Event, base string, excludeID int64, store func(context.Context, *models.Event) error) error {
	for attempt := 1; ; attempt++ {
		path, err := s.uniquePath(ctx, base, excludeID)
		if err != nil {
			return err
		}
		event.EventPath = path
		err = store(ctx, event)
		if err == nil {
			return nil
		}
		if !errors.Is(err, apperrors.ErrEventPathTaken) || attempt == eventPathInsertTries {
			return err
		}
		s.logger.Debug().Str("path", path).Msg("Event path taken concurrently, retrying")
	}
}

func (s *eventServiceImpl) getEvent(ctx context.Context, id int64) (*models.Event, error) {
	e, err := s.events.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrEventNotFound) {
			return nil, apperrors.NewResourceNotFoundError(msgEventNotFound)
		}
		return nil, fmt.Errorf("error getting event: %w", err)
	}
	return e, nil
}

// Create stores a hidden event with a unique path and its photos
func (s *eventServiceImpl) Create(ctx context.Context, actor *models.Member, in *dto.EventInput, files []*multipart.FileHeader) (*dto.EventResponse, error) {
	if actor == nil {
		return nil, apperrors.ErrUnauthorized
	}
	if in == nil {
		return nil, apperrors.NewBadRequestError(msgEventRequired)
	}
	title, okTitle := nonEmpty(in.Title)
	content, okContent := nonEmpty(in.Content)
	dateStr, okDate := nonEmpty(in.EventDate)
	if !okTitle || !okContent || !okDate {
		return nil, apperrors.NewBadRequestError(msgEventRequired)
	}
	eventDate, ok := parseDate(dateStr, eventDateLayouts)
	if !ok {
		return nil, apperrors.NewBadRequestError(msgInvalidDate)
	}

	stored, err := uploadAll(ctx, s.uploads, files, models.CategoryEventPhoto, actor)
	if err != nil {
		return nil, err
	}

	event := &models.Event{
		Title:       title,
		Content:     content,
		Description: optional(in.Description),
		EventDate:   eventDate,
		Visible:     false,
		AuthorID:    actor.ID,
		Author:      actor,
		EditHistory: []models.EditHistoryEntry{},
	}

	if err := s.storeWithPath(ctx, event, models.GenerateEventPath(title), 0, s.events.Create); err != nil {
		return nil, fmt.Errorf("error creating event: %w", err)
	}

	if err := s.events.AttachFiles(ctx, event.ID, fileIDs(stored)...); err != nil {
		return nil, fmt.Errorf("error attaching event files: %w", err)
	}
	event.Files = stored

	s.logger.Info().Int64("eventID", event.ID).Str("path", event.EventPath).Msg("Event created")
	s.notifier.NotifyReview(ReviewItem{Resource: "event", ID: event.ID, Title: event.Title, By: actor.FullName(), Timestamp: s.now()})
	return s.toResponse(event, true, false, false), nil
}

// Edit records the previous state, applies the changes and, for non-admin
// editors, hides the event again. New files replace the old ones.
func (s *eventServiceImpl) Edit(ctx context.Context, actor *models.Member, id int64, in *dto.EventInput, files []*multipart.FileHeader) (*dto.EventResponse, error) {
	if actor == nil {
		return nil, apperrors.ErrUnauthorized
	}
	event, err := s.getEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	if !appauth.CanEditEvent(event, actor) {
		return nil, apperrors.NewForbiddenError(msgEventForbidden)
	}
	if in == nil {
		in = &dto.EventInput{}
	}

	entry := models.NewEditHistoryEntry(s.now(), actor, event.Snapshot())

	if dateStr, ok := nonEmpty(in.EventDate); ok {
		eventDate, ok := parseDate(dateStr, eventDateLayouts)
		if !ok {
			return nil, apperrors.NewBadRequestError(msgInvalidDate)
		}
		event.EventDate = eventDate
	}
	var newPathBase string
	if title, ok := nonEmpty(in.Title); ok {
		event.Title = title
		base := models.GenerateEventPath(title)
		if base == "" {
			base = fallbackEventPath
		}
		if base != event.EventPath {
			newPathBase = base
		}
	}
	if content, ok := nonEmpty(in.Content); ok {
		event.Content = content
	}
	if in.Description != nil {
		event.Description = optional(in.Description)
	}
	if !appauth.KeepsVisibilityOnEdit(actor) {
		event.Visible = false
	}

	if in.ReplaceFiles || len(files) > 0 {
		if err := deleteAll(ctx, s.uploads, event.Files); err != nil {
			return nil, err
		}
		event.Files = nil
	}
	stored, err := uploadAll(ctx, s.uploads, files, models.CategoryEventPhoto, actor)
	if err != nil {
		return nil, err
	}

	event.EditHistory = append(event.EditHistory, entry)
	if newPathBase != "" {
		err = s.storeWithPath(ctx, event, newPathBase, event.ID, s.events.Update)
	} else {
		err = s.events.Update(ctx, event)
	}
	if err != nil {
		return nil, fmt.Errorf("error updating event: %w", err)
	}
	if err := s.events.AttachFiles(ctx, event.ID, fileIDs(stored)...); err != nil {
		return nil, fmt.Errorf("error attaching event files: %w", err)
	}
	event.Files = append(event.Files, stored...)

	s.logger.Info().Int64("eventID", event.ID).Int64("editorID", actor.ID).Msg("Event edited")
	if !event.Visible {
		s.notifier.NotifyReview(ReviewItem{Resource: "event", ID: event.ID, Title: event.Title, By: actor.FullName(), Timestamp: s.now()})
	}
	return s.toResponse(event, false, true, false), nil
}

// SetVisibility publishes or hides an event
func (s *eventServiceImpl) SetVisibility(ctx context.Context, actor *models.Member, id int64, visible bool) (*dto.EventVisibilityResponse, error) {
	if !appauth.CanChangeVisibility(actor) {
		return nil, apperrors.NewForbiddenError(msgVisibilityAdmin)
	}
	event, err := s.getEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.events.SetVisible(ctx, id, visible); err != nil {
		return nil, fmt.Errorf("error updating event visibility: %w", err)
	}
	return &dto.EventVisibilityResponse{ID: event.ID, Title: event.Title, EventPath: event.EventPath, Visible: visible}, nil
}

// ListVisible returns published events, soonest first
func (s *eventServiceImpl) ListVisible(ctx context.Context) ([]dto.EventResponse, error) {
	events, err := s.events.List(ctx, true, true)
	if err != nil {
		return nil, fmt.Errorf("error listing events: %w", err)
	}
	result := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		result = append(result, *s.toResponse(e, true, false, false))
	}
	return result, nil
}

// ListAll returns every event, latest first, with edit counts
func (s *eventServiceImpl) ListAll(ctx context.Context) ([]dto.EventResponse, error) {
	events, err := s.events.List(ctx, false, false)
	if err != nil {
		return nil, fmt.Errorf("error listing events: %w", err)
	}
	result := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		result = append(result, *s.toResponse(e, false, true, false))
	}
	return result, nil
}

// GetByPath returns a published event with its history
func (s *eventServiceImpl) GetByPath(ctx context.Context, path string) (*dto.EventResponse, error) {
	event, err := s.events.GetByPath(ctx, path)
	if err != nil {
		if errors.Is(err, apperrors.ErrEventNotFound) {
			return nil, apperrors.NewResourceNotFoundError(msgEventNotFound)
		}
		return nil, fmt.Errorf("error getting event: %w", err)
	}
	if !event.Visible {
		return nil, apperrors.NewResourceNotFoundError(msgEventUnavailable)
	}
	return s.toResponse(event, true, false, true), nil
}

func (s *eventServiceImpl) toResponse(e *models.Event, withFiles, withEditCount, withHistory bool) *dto.EventResponse {
	resp := &dto.EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Content:     e.Content,
		Description: e.Description,
		EventDate:   e.EventDate.Format(models.DateTimeLayout),
		EventPath:   e.EventPath,
		Visible:     e.Visible,
		Author:      authorName(e.Author),
		FileCount:   len(e.Files),
	}
	if withFiles {
		resp.Files = fileLinks(s.uploads, e.Files)
	}
	if withEditCount {
		n := len(e.EditHistory)
		resp.EditCount = &n
	}
	if withHistory {
		resp.EditHistory = e.EditHistory
	}
	return resp
}
