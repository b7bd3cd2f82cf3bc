package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/memberhub/internal/app/models"
	"github.com/yigit/memberhub/internal/app/models/dto"
	"github.com/yigit/memberhub/internal/pkg/apperrors"
)

const (
	msgTechnologyNameRequired = "Nazwa technologii jest wymagana"
	msgTechnologyExists       = "Technologia o tej nazwie już istnieje"
	msgTechnologyNotFound     = "Technologia nie została znaleziona"
	msgTechnologyInUse        = "Nie można usunąć technologii używanej w projektach"
)

// TechnologyService defines the interface for technology operations
type TechnologyService interface {
	Create(ctx context.Context, req *dto.TechnologyRequest) (*dto.TechnologyResponse, error)
	Update(ctx context.Context, id int64, req *dto.TechnologyRequest) (*dto.TechnologyResponse, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]dto.TechnologyResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.TechnologyResponse, error)
}

// technologyServiceImpl implements TechnologyService
type technologyServiceImpl struct {
	technologies TechnologyStore
	logger       zerolog.Logger
}

// NewTechnologyService creates a new TechnologyService
func NewTechnologyService(technologies TechnologyStore, logger zerolog.Logger) TechnologyService {
	return &technologyServiceImpl{
		technologies: technologies,
		logger:       logger,
	}
}

func (s *technologyServiceImpl) getTechnology(ctx context.Context, id int64) (*models.Technology, error) {
	t, err := s.technologies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrTechnologyNotFound) {
			return nil, apperrors.NewResourceNotFoundError(msgTechnologyNotFound)
		}
		return nil, fmt.Errorf("error getting technology: %w", err)
	}
	return t, nil
}

// nameTaken reports whether another technology already uses name
func (s *technologyServiceImpl) nameTaken(ctx context.Context, name string, excludeID int64) (bool, error) {
	existing, err := s.technologies.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, apperrors.ErrTechnologyNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("error checking technology name: %w", err)
	}
	return existing.ID != excludeID, nil
}

func translateTechnologyErr(err error, action string) error {
	if errors.Is(err, apperrors.ErrTechnologyExists) {
		return apperrors.Wrap(apperrors.ErrTechnologyExists, msgTechnologyExists)
	}
	return fmt.Errorf("error %s technology: %w", action, err)
}

// Create adds a technology with a unique name
func (s *technologyServiceImpl) Create(ctx context.Context, req *dto.TechnologyRequest) (*dto.TechnologyResponse, error) {
	if req == nil {
		return nil, apperrors.NewBadRequestError(msgTechnologyNameRequired)
	}
	name, ok := nonEmpty(req.Name)
	if !ok {
		return nil, apperrors.NewBadRequestError(msgTechnologyNameRequired)
	}
	taken, err := s.nameTaken(ctx, name, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.Wrap(apperrors.ErrTechnologyExists, msgTechnologyExists)
	}

	tech := &models.Technology{Name: name, Description: optional(req.Description)}
	if err := s.technologies.Create(ctx, tech); err != nil {
		return nil, translateTechnologyErr(err, "creating")
	}
	s.logger.Info().Int64("technologyID", tech.ID).Str("name", tech.Name).Msg("Technology created")
	return toTechnologyResponse(tech, false), nil
}

// Update renames or re-describes a technology
func (s *technologyServiceImpl) Update(ctx context.Context, id int64, req *dto.TechnologyRequest) (*dto.TechnologyResponse, error) {
	tech, err := s.getTechnology(ctx, id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		req = &dto.TechnologyRequest{}
	}
	if name, ok := nonEmpty(req.Name); ok {
		taken, err := s.nameTaken(ctx, name, tech.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperrors.Wrap(apperrors.ErrTechnologyExists, msgTechnologyExists)
		}
		tech.Name = name
	}
	if req.Description != nil {
		tech.Description = optional(req.Description)
	}
	if err := s.technologies.Update(ctx, tech); err != nil {
		return nil, translateTechnologyErr(err, "updating")
	}
	return toTechnologyResponse(tech, false), nil
}

// Delete removes a technology no project references
func (s *technologyServiceImpl) Delete(ctx context.Context, id int64) error {
	tech, err := s.getTechnology(ctx, id)
	if err != nil {
		return err
	}
	if tech.ProjectCount > 0 {
		return apperrors.Wrap(apperrors.ErrTechnologyInUse, msgTechnologyInUse)
	}
	if err := s.technologies.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrTechnologyInUse):
			return apperrors.Wrap(apperrors.ErrTechnologyInUse, msgTechnologyInUse)
		case errors.Is(err, apperrors.ErrTechnologyNotFound):
			return apperrors.NewResourceNotFoundError(msgTechnologyNotFound)
		}
		return fmt.Errorf("error deleting technology: %w", err)
	}
	s.logger.Info().Int64("technologyID", id).Msg("Technology deleted")
	return nil
}

// List returns all technologies by name with project counts
func (s *technologyServiceImpl) List(ctx context.Context) ([]dto.TechnologyResponse, error) {
	techs, err := s.technologies.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing technologies: %w", err)
	}
	result := make([]dto.TechnologyResponse, 0, len(techs))
	for _, t := range techs {
		result = append(result, *toTechnologyResponse(t, true))
	}
	return result, nil
}

// GetByID returns a technology with the projects using it
func (s *technologyServiceImpl) GetByID(ctx context.Context, id int64) (*dto.TechnologyResponse, error) {
	tech, err := s.getTechnology(ctx, id)
	if err != nil {
		return nil, err
	}
	projects, err := s.technologies.ProjectsFor(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error loading technology projects: %w", err)
	}
	resp := toTechnologyResponse(tech, false)
	resp.Projects = make([]dto.ProjectRef, 0, len(projects))
	for _, p := range projects {
		resp.Projects = append(resp.Projects, dto.ProjectRef{ID: p.ID, Name: p.Name, Visible: p.Visible})
	}
	return resp, nil
}

func toTechnologyResponse(t *models.Technology, withCount bool) *dto.TechnologyResponse {
	resp := &dto.TechnologyResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Icon:        t.Icon,
	}
	if withCount {
		n := t.ProjectCount
		resp.ProjectCount = &n
	}
	return resp
}
