package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/rs/zerolog"
	appauth "github.com/yigit/memberhub/internal/app/auth"
	"github.com/yigit/memberhub/internal/app/models"
	"github.com/yigit/memberhub/internal/app/models/dto"
	"github.com/yigit/memberhub/internal/pkg/apperrors"
)

const (
	msgPostRequired  = "Tytuł i treść są wymagane"
	msgPostNotFound  = "Post nie został znaleziony"
	msgPostForbidden = "Brak uprawnień do edycji tego posta"
)

// PostService defines the interface for post operations
type PostService interface {
	Create(ctx context.Context, actor *models.Member, in *dto.PostInput, files []*multipart.FileHeader) (*dto.PostResponse, error)
	Edit(ctx context.Context, actor *models.Member, id int64, in *dto.PostInput, files []*multipart.FileHeader) (*dto.PostResponse, error)
	SetVisibility(ctx context.Context, actor *models.Member, id int64, visible bool) (*dto.PostVisibilityResponse, error)
	ListVisible(ctx context.Context) ([]dto.PostResponse, error)
	ListAll(ctx context.Context) ([]dto.PostResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.PostResponse, error)
}

// postServiceImpl implements PostService
type postServiceImpl struct {
	posts    PostStore
	uploads  FileUploadService
	notifier ReviewNotifier
	logger   zerolog.Logger
	now      func() time.Time
}

// NewPostService creates a new PostService
func NewPostService(posts PostStore, uploads FileUploadService, notifier ReviewNotifier, logger zerolog.Logger) PostService {
	return &postServiceImpl{
		posts:    posts,
		uploads:  uploads,
		notifier: notifierOrNoop(notifier),
		logger:   logger,
		now:      time.Now,
	}
}

func (s *postServiceImpl) getPost(ctx context.Context, id int64) (*models.Post, error) {
	p, err := s.posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrPostNotFound) {
			return nil, apperrors.NewResourceNotFoundError(msgPostNotFound)
		}
		return nil, fmt.Errorf("error getting post: %w", err)
	}
	return p, nil
}

// Create stores a hidden post with its attachments
func (s *postServiceImpl) Create(ctx context.Context, actor *models.Member, in *dto.PostInput, files []*multipart.FileHeader) (*dto.PostResponse, error) {
	if actor == nil {
		return nil, apperrors.ErrUnauthorized
	}
	if in == nil {
		return nil, apperrors.NewBadRequestError(msgPostRequired)
	}
	title, okTitle := nonEmpty(in.Title)
	content, okContent := nonEmpty(in.Content)
	if !okTitle || !okContent {
		return nil, apperrors.NewBadRequestError(msgPostRequired)
	}

	// attachments share the event photo directory
	stored, err := uploadAll(ctx, s.uploads, files, models.CategoryEventPhoto, actor)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:       title,
		Content:     content,
		SuperEvent:  in.SuperEvent != nil && *in.SuperEvent,
		Visible:     false,
		AuthorID:    actor.ID,
		Author:      actor,
		EditHistory: []models.EditHistoryEntry{},
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("error creating post: %w", err)
	}
	if err := s.posts.AttachFiles(ctx, post.ID, fileIDs(stored)...); err != nil {
		return nil, fmt.Errorf("error attaching post files: %w", err)
	}
	post.Files = stored

	s.logger.Info().Int64("postID", post.ID).Msg("Post created")
	s.notifier.NotifyReview(ReviewItem{Resource: "post", ID: post.ID, Title: post.Title, By: actor.FullName(), Timestamp: s.now()})
	return s.toResponse(post, true, false, false), nil
}

// Edit follows the post policy: authors may edit their posts regardless of
// visibility. Non-admin edits hide the post.
func (s *postServiceImpl) Edit(ctx context.Context, actor *models.Member, id int64, in *dto.PostInput, files []*multipart.FileHeader) (*dto.PostResponse, error) {
	if actor == nil {
		return nil, apperrors.ErrUnauthorized
	}
	post, err := s.getPost(ctx, id)
	if err != nil {
		return nil, err
	}
	if !appauth.CanEditPost(post, actor) {
		return nil, apperrors.NewForbiddenError(msgPostForbidden)
	}
	if in == nil {
		in = &dto.PostInput{}
	}

	entry := models.NewEditHistoryEntry(s.now(), actor, post.Snapshot())

	if title, ok := nonEmpty(in.Title); ok {
		post.Title = title
	}
	if content, ok := nonEmpty(in.Content); ok {
		post.Content = content
	}
	if in.SuperEvent != nil {
		post.SuperEvent = *in.SuperEvent
	}
	if !appauth.KeepsVisibilityOnEdit(actor) {
		post.Visible = false
	}

	if in.ReplaceFiles || len(files) > 0 {
		if err := deleteAll(ctx, s.uploads, post.Files); err != nil {
			return nil, err
		}
		post.Files = nil
	}
	stored, err := uploadAll(ctx, s.uploads, files, models.CategoryEventPhoto, actor)
	if err != nil {
		return nil, err
	}

	post.EditHistory = append(post.EditHistory, entry)
	if err := s.posts.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("error updating post: %w", err)
	}
	if err := s.posts.AttachFiles(ctx, post.ID, fileIDs(stored)...); err != nil {
		return nil, fmt.Errorf("error attaching post files: %w", err)
	}
	post.Files = append(post.Files, stored...)

	s.logger.Info().Int64("postID", post.ID).Int64("editorID", actor.ID).Msg("Post edited")
	if !post.Visible {
		s.notifier.NotifyReview(ReviewItem{Resource: "post", ID: post.ID, Title: post.Title, By: actor.FullName(), Timestamp: s.now()})
	}
	return s.toResponse(post, false, true, false), nil
}

// SetVisibility publishes or hides a post
func (s *postServiceImpl) SetVisibility(ctx context.Context, actor *models.Member, id int64, visible bool) (*dto.PostVisibilityResponse, error) {
	if !appauth.CanChangeVisibility(actor) {
		return nil, apperrors.NewForbiddenError(msgVisibilityAdmin)
	}
	post, err := s.getPost(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.posts.SetVisible(ctx, id, visible); err != nil {
		return nil, fmt.Errorf("error updating post visibility: %w", err)
	}
	return &dto.PostVisibilityResponse{ID: post.ID, Title: post.Title, Visible: visible}, nil
}

// ListVisible returns published posts, newest first
func (s *postServiceImpl) ListVisible(ctx context.Context) ([]dto.PostResponse, error) {
	return s.list(ctx, true)
}

// ListAll returns every post, newest first, with edit counts
func (s *postServiceImpl) ListAll(ctx context.Context) ([]dto.PostResponse, error) {
	return s.list(ctx, false)
}

func (s *postServiceImpl) list(ctx context.Context, visibleOnly bool) ([]dto.PostResponse, error) {
	posts, err := s.posts.List(ctx, visibleOnly)
	if err != nil {
		return nil, fmt.Errorf("error listing posts: %w", err)
	}
	result := make([]dto.PostResponse, 0, len(posts))
	for _, p := range posts {
		result = append(result, *s.toResponse(p, visibleOnly, !visibleOnly, false))
	}
	return result, nil
}

// GetByID returns a post of any visibility with files and history
func (s *postServiceImpl) GetByID(ctx context.Context, id int64) (*dto.PostResponse, error) {
	post, err := s.getPost(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(post, true, false, true), nil
}

func (s *postServiceImpl) toResponse(p *models.Post, withFiles, withEditCount, withHistory bool) *dto.PostResponse {
	resp := &dto.PostResponse{
		ID:         p.ID,
		Title:      p.Title,
		Content:    p.Content,
		SuperEvent: p.SuperEvent,
		Visible:    p.Visible,
		Author:     authorName(p.Author),
		FileCount:  len(p.Files),
	}
	if withFiles {
		resp.Files = fileLinks(s.uploads, p.Files)
	}
	if withEditCount {
		n := len(p.EditHistory)
		resp.EditCount = &n
	}
	if withHistory {
		resp.EditHistory = p.EditHistory
	}
	return resp
}
