package services

import (
	"context"
	"encoding/json"
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
	msgProjectRequired  = "Nazwa i opis są wymagane"
	msgProjectNotFound  = "Projekt nie został znaleziony"
	msgProjectForbidden = "Brak uprawnień do edycji projektu"
	msgInvalidStartDate = "Nieprawidłowy format daty rozpoczęcia"
	msgInvalidEndDate   = "Nieprawidłowy format daty zakończenia"
)

var projectDateLayouts = []string{
	models.DateLayout,
	time.RFC3339,
	models.DateTimeLayout,
}

// ProjectService defines the interface for project operations
type ProjectService interface {
	Create(ctx context.Context, actor *models.Member, in *dto.ProjectInput, file *multipart.FileHeader) (*dto.ProjectResponse, error)
	Edit(ctx context.Context, actor *models.Member, id int64, in *dto.ProjectInput, file *multipart.FileHeader) (*dto.ProjectResponse, error)
	SetVisibility(ctx context.Context, actor *models.Member, id int64, visible bool) (*dto.ProjectVisibilityResponse, error)
	ListVisible(ctx context.Context) ([]dto.ProjectResponse, error)
	ListAll(ctx context.Context) ([]dto.ProjectResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.ProjectResponse, error)
}

// projectServiceImpl implements ProjectService
type projectServiceImpl struct {
	projects     ProjectStore
	technologies TechnologyStore
	uploads      FileUploadService
	notifier     ReviewNotifier
	logger       zerolog.Logger
	now          func() time.Time
}

// NewProjectService creates a new ProjectService
func NewProjectService(projects ProjectStore, technologies TechnologyStore, uploads FileUploadService, notifier ReviewNotifier, logger zerolog.Logger) ProjectService {
	return &projectServiceImpl{
		projects:     projects,
		technologies: technologies,
		uploads:      uploads,
		notifier:     notifierOrNoop(notifier),
		logger:       logger,
		now:          time.Now,
	}
}

// decodeStrings reads a JSON array of strings; anything else is ignored
func decodeStrings(raw *string) ([]string, bool) {
	v, ok := nonEmpty(raw)
	if !ok {
		return nil, false
	}
	var list []string
	if err := json.Unmarshal([]byte(v), &list); err != nil {
		return nil, false
	}
	if list == nil {
		list = []string{}
	}
	return list, true
}

// resolveTechnologies reads a JSON array of ids and loads the known ones
func (s *projectServiceImpl) resolveTechnologies(ctx context.Context, raw *string) ([]*models.Technology, bool, error) {
	v, ok := nonEmpty(raw)
	if !ok {
		return nil, false, nil
	}
	var ids []int64
	if err := json.Unmarshal([]byte(v), &ids); err != nil {
		// a malformed list still clears the relations
		return []*models.Technology{}, true, nil
	}
	techs, err := s.technologies.GetByIDs(ctx, ids)
	if err != nil {
		return nil, false, fmt.Errorf("error loading technologies: %w", err)
	}
	return techs, true, nil
}

func parseProjectDate(raw *string, message string) (*time.Time, bool, error) {
	v, ok := nonEmpty(raw)
	if !ok {
		return nil, false, nil
	}
	t, ok := parseDate(v, projectDateLayouts)
	if !ok {
		return nil, false, apperrors.NewBadRequestError(message)
	}
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &d, true, nil
}

// applyInput copies the sent fields onto p. Name and description are
// handled by the callers since create requires them.
func (s *projectServiceImpl) applyInput(ctx context.Context, p *models.Project, in *dto.ProjectInput, clearLinks bool) (bool, error) {
	start, okStart, err := parseProjectDate(in.StartDate, msgInvalidStartDate)
	if err != nil {
		return false, err
	}
	end, okEnd, err := parseProjectDate(in.EndDate, msgInvalidEndDate)
	if err != nil {
		return false, err
	}
	if okStart {
		p.StartDate = start
	}
	if okEnd {
		p.EndDate = end
	}
	if list, ok := decodeStrings(in.Participants); ok {
		p.Participants = list
	}
	if list, ok := decodeStrings(in.Technologies); ok {
		p.Technologies = list
	}
	if in.Future != nil {
		p.Future = *in.Future
	}
	if clearLinks {
		if in.ProjectLink != nil {
			p.ProjectLink = optional(in.ProjectLink)
		}
		if in.RepoLink != nil {
			p.RepoLink = optional(in.RepoLink)
		}
	} else {
		if link := optional(in.ProjectLink); link != nil {
			p.ProjectLink = link
		}
		if link := optional(in.RepoLink); link != nil {
			p.RepoLink = link
		}
	}

	techs, replace, err := s.resolveTechnologies(ctx, in.TechnologyIDs)
	if err != nil {
		return false, err
	}
	if replace {
		p.TechnologyRelations = techs
	}
	return replace, nil
}

func (s *projectServiceImpl) getProject(ctx context.Context, id int64) (*models.Project, error) {
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrProjectNotFound) {
			return nil, apperrors.NewResourceNotFoundError(msgProjectNotFound)
		}
		return nil, fmt.Errorf("error getting project: %w", err)
	}
	return p, nil
}

// Create stores a hidden project with an optional photo
func (s *projectServiceImpl) Create(ctx context.Context, actor *models.Member, in *dto.ProjectInput, file *multipart.FileHeader) (*dto.ProjectResponse, error) {
	if actor == nil {
		return nil, apperrors.ErrUnauthorized
	}
	if in == nil {
		return nil, apperrors.NewBadRequestError(msgProjectRequired)
	}
	name, okName := nonEmpty(in.Name)
	description, okDesc := nonEmpty(in.Description)
	if !okName || !okDesc {
		return nil, apperrors.NewBadRequestError(msgProjectRequired)
	}

	project := &models.Project{
		Name:                name,
		Description:         description,
		Participants:        []string{},
		Technologies:        []string{},
		TechnologyRelations: []*models.Technology{},
		Visible:             false,
	}
	if _, err := s.applyInput(ctx, project, in, false); err != nil {
		return nil, err
	}

	stored, err := uploadAll(ctx, s.uploads, []*multipart.FileHeader{file}, models.CategoryProjectPhoto, actor)
	if err != nil {
		return nil, err
	}

	if err := s.projects.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("error creating project: %w", err)
	}
	if err := s.projects.AttachFiles(ctx, project.ID, fileIDs(stored)...); err != nil {
		return nil, fmt.Errorf("error attaching project file: %w", err)
	}
	project.Files = stored

	s.logger.Info().Int64("projectID", project.ID).Msg("Project created")
	s.notifier.NotifyReview(ReviewItem{Resource: "project", ID: project.ID, Title: project.Name, By: actor.FullName(), Timestamp: s.now()})
	return s.toResponse(project, true, false), nil
}

// Edit is limited to staff. A new file replaces the existing ones.
func (s *projectServiceImpl) Edit(ctx context.Context, actor *models.Member, id int64, in *dto.ProjectInput, file *multipart.FileHeader) (*dto.ProjectResponse, error) {
	if actor == nil {
		return nil, apperrors.ErrUnauthorized
	}
	project, err := s.getProject(ctx, id)
	if err != nil {
		return nil, err
	}
	if !appauth.CanEditProject(actor) {
		return nil, apperrors.NewForbiddenError(msgProjectForbidden)
	}
	if in == nil {
		in = &dto.ProjectInput{}
	}

	if name, ok := nonEmpty(in.Name); ok {
		project.Name = name
	}
	if description, ok := nonEmpty(in.Description); ok {
		project.Description = description
	}
	replaceTechs, err := s.applyInput(ctx, project, in, true)
	if err != nil {
		return nil, err
	}
	if !appauth.KeepsVisibilityOnEdit(actor) {
		project.Visible = false
	}

	var stored []*models.File
	if file != nil {
		if err := deleteAll(ctx, s.uploads, project.Files); err != nil {
			return nil, err
		}
		project.Files = nil
		if stored, err = uploadAll(ctx, s.uploads, []*multipart.FileHeader{file}, models.CategoryProjectPhoto, actor); err != nil {
			return nil, err
		}
	}

	if err := s.projects.Update(ctx, project, replaceTechs); err != nil {
		return nil, fmt.Errorf("error updating project: %w", err)
	}
	if err := s.projects.AttachFiles(ctx, project.ID, fileIDs(stored)...); err != nil {
		return nil, fmt.Errorf("error attaching project file: %w", err)
	}
	project.Files = append(project.Files, stored...)

	s.logger.Info().Int64("projectID", project.ID).Int64("editorID", actor.ID).Msg("Project edited")
	if !project.Visible {
		s.notifier.NotifyReview(ReviewItem{Resource: "project", ID: project.ID, Title: project.Name, By: actor.FullName(), Timestamp: s.now()})
	}
	return s.toResponse(project, false, false), nil
}

// SetVisibility publishes or hides a project
func (s *projectServiceImpl) SetVisibility(ctx context.Context, actor *models.Member, id int64, visible bool) (*dto.ProjectVisibilityResponse, error) {
	if !appauth.CanChangeVisibility(actor) {
		return nil, apperrors.NewForbiddenError(msgVisibilityAdmin)
	}
	project, err := s.getProject(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.projects.SetVisible(ctx, id, visible); err != nil {
		return nil, fmt.Errorf("error updating project visibility: %w", err)
	}
	return &dto.ProjectVisibilityResponse{ID: project.ID, Name: project.Name, Visible: visible}, nil
}

// ListVisible returns published projects, latest start first
func (s *projectServiceImpl) ListVisible(ctx context.Context) ([]dto.ProjectResponse, error) {
	return s.list(ctx, true)
}

// ListAll returns every project, latest start first
func (s *projectServiceImpl) ListAll(ctx context.Context) ([]dto.ProjectResponse, error) {
	return s.list(ctx, false)
}

func (s *projectServiceImpl) list(ctx context.Context, visibleOnly bool) ([]dto.ProjectResponse, error) {
	projects, err := s.projects.List(ctx, visibleOnly)
	if err != nil {
		return nil, fmt.Errorf("error listing projects: %w", err)
	}
	result := make([]dto.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		result = append(result, *s.toResponse(p, visibleOnly, false))
	}
	return result, nil
}

// GetByID returns a project with its technology relations
func (s *projectServiceImpl) GetByID(ctx context.Context, id int64) (*dto.ProjectResponse, error) {
	project, err := s.getProject(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(project, true, true), nil
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(models.DateLayout)
	return &s
}

func (s *projectServiceImpl) toResponse(p *models.Project, withFileURL, withRelations bool) *dto.ProjectResponse {
	resp := &dto.ProjectResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Participants: p.Participants,
		Technologies: p.Technologies,
		StartDate:    formatDate(p.StartDate),
		EndDate:      formatDate(p.EndDate),
		ProjectLink:  p.ProjectLink,
		RepoLink:     p.RepoLink,
		Future:       p.Future,
		Visible:      p.Visible,
		HasFile:      len(p.Files) > 0,
	}
	if withFileURL && len(p.Files) > 0 {
		url := s.uploads.URLFor(p.Files[0])
		resp.FileURL = &url
	}
	if withRelations {
		resp.TechnologyRelations = make([]dto.TechnologyRef, 0, len(p.TechnologyRelations))
		for _, t := range p.TechnologyRelations {
			resp.TechnologyRelations = append(resp.TechnologyRelations, dto.TechnologyRef{ID: t.ID, Name: t.Name, Icon: t.Icon})
		}
	}
	return resp
}
