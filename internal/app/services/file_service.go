package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/rs/zerolog"
	appauth "github.com/yigit/memberhub/internal/app/auth"
	"github.com/yigit/memberhub/internal/app/models"
	"github.com/yigit/memberhub/internal/app/models/dto"
	"github.com/yigit/memberhub/internal/pkg/apperrors"
)

const (
	msgInvalidPermissions   = "Nieprawidłowe uprawnienia"
	msgIconTechNotFound     = "Nie znaleziono technologii"
	msgFileNotFound         = "Plik nie został znaleziony"
	msgDownloadForbidden    = "Brak uprawnień do pobrania pliku"
	msgFileMissingOnDisk    = "Plik nie istnieje na serwerze"
	msgFileNotDeletable     = "Nie można usunąć tego typu pliku"
	msgFileDeleteForbidden  = "Brak uprawnień do usunięcia pliku"
	technologyIconDimension = 64
)

// FileDownload describes a file ready to be streamed
type FileDownload struct {
	Path         string
	OriginalName string
	MimeType     string
}

// FileService defines the interface for the file endpoints
type FileService interface {
	UploadGeneral(ctx context.Context, actor *models.Member, fh *multipart.FileHeader, permissions string) (*dto.FileResponse, error)
	UploadTechnologyIcon(ctx context.Context, actor *models.Member, technologyID int64, fh *multipart.FileHeader) (*dto.TechnologyIconResponse, error)
	ListGeneral(ctx context.Context, actor *models.Member) ([]dto.FileResponse, error)
	Download(ctx context.Context, actor *models.Member, id int64) (*FileDownload, error)
	Delete(ctx context.Context, actor *models.Member, id int64) error
}

// fileServiceImpl implements FileService
type fileServiceImpl struct {
	files        FileStore
	technologies TechnologyStore
	uploads      FileUploadService
	logger       zerolog.Logger
}

// NewFileService creates a new FileService
func NewFileService(files FileStore, technologies TechnologyStore, uploads FileUploadService, logger zerolog.Logger) FileService {
	return &fileServiceImpl{
		files:        files,
		technologies: technologies,
		uploads:      uploads,
		logger:       logger,
	}
}

func (s *fileServiceImpl) getFile(ctx context.Context, id int64) (*models.File, error) {
	f, err := s.files.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrFileNotFound) {
			return nil, apperrors.NewResourceNotFoundError(msgFileNotFound)
		}
		return nil, fmt.Errorf("error getting file: %w", err)
	}
	return f, nil
}

// UploadGeneral stores a general file under the requested permission tier
func (s *fileServiceImpl) UploadGeneral(ctx context.Context, actor *models.Member, fh *multipart.FileHeader, permissions string) (*dto.FileResponse, error) {
	if actor == nil {
		return nil, apperrors.ErrUnauthorized
	}
	if fh == nil {
		return nil, apperrors.NewBadRequestError(msgNoFile)
	}
	perm := models.FilePermission(permissions)
	if !perm.Valid() {
		return nil, apperrors.NewBadRequestError(msgInvalidPermissions)
	}
	file, err := s.uploads.Upload(ctx, fh, models.CategoryGeneral, perm, actor, UploadOptions{})
	if err != nil {
		return nil, err
	}
	file.Uploader = actor
	return s.toResponse(file), nil
}

// UploadTechnologyIcon replaces a technology's icon with a 64x64 public image
func (s *fileServiceImpl) UploadTechnologyIcon(ctx context.Context, actor *models.Member, technologyID int64, fh *multipart.FileHeader) (*dto.TechnologyIconResponse, error) {
	if actor == nil {
		return nil, apperrors.ErrUnauthorized
	}
	tech, err := s.technologies.GetByID(ctx, technologyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrTechnologyNotFound) {
			return nil, apperrors.NewResourceNotFoundError(msgIconTechNotFound)
		}
		return nil, fmt.Errorf("error getting technology: %w", err)
	}
	if fh == nil {
		return nil, apperrors.NewBadRequestError(msgNoFile)
	}

	if tech.Icon != nil && *tech.Icon != "" {
		old, err := s.files.GetByStoredPath(ctx, string(models.CategoryTechnologyIcon)+"/"+*tech.Icon)
		switch {
		case err == nil:
			if err := s.uploads.Delete(ctx, old); err != nil {
				return nil, err
			}
		case !errors.Is(err, apperrors.ErrFileNotFound):
			return nil, fmt.Errorf("error finding previous icon: %w", err)
		}
	}

	file, err := s.uploads.Upload(ctx, fh, models.CategoryTechnologyIcon, models.PermissionPublic, actor, UploadOptions{
		MaxWidth:  technologyIconDimension,
		MaxHeight: technologyIconDimension,
	})
	if err != nil {
		return nil, err
	}

	icon := file.Basename()
	tech.Icon = &icon
	if err := s.technologies.Update(ctx, tech); err != nil {
		return nil, fmt.Errorf("error updating technology icon: %w", err)
	}
	s.logger.Info().Int64("technologyID", tech.ID).Str("icon", icon).Msg("Technology icon updated")
	return &dto.TechnologyIconResponse{ID: tech.ID, Name: tech.Name, Icon: tech.Icon}, nil
}

// ListGeneral returns the general files the actor may download
func (s *fileServiceImpl) ListGeneral(ctx context.Context, actor *models.Member) ([]dto.FileResponse, error) {
	files, err := s.files.ListByCategory(ctx, models.CategoryGeneral)
	if err != nil {
		return nil, fmt.Errorf("error listing files: %w", err)
	}
	result := make([]dto.FileResponse, 0, len(files))
	for _, f := range files {
		if !s.uploads.CanAccess(f, actor) {
			continue
		}
		result = append(result, *s.toResponse(f))
	}
	return result, nil
}

// Download checks access and that the object is still on disk
func (s *fileServiceImpl) Download(ctx context.Context, actor *models.Member, id int64) (*FileDownload, error) {
	file, err := s.getFile(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.uploads.CanAccess(file, actor) {
		return nil, apperrors.NewForbiddenError(msgDownloadForbidden)
	}
	if !s.uploads.Exists(file) {
		s.logger.Warn().Int64("fileID", file.ID).Str("path", file.StoredPath).Msg("File record without object on disk")
		return nil, apperrors.NewResourceNotFoundError(msgFileMissingOnDisk)
	}
	return &FileDownload{
		Path:         s.uploads.FullPathFor(file),
		OriginalName: file.OriginalName,
		MimeType:     file.MimeType,
	}, nil
}

// Delete removes a general file. Admins may delete any, other staff only
// their own uploads.
func (s *fileServiceImpl) Delete(ctx context.Context, actor *models.Member, id int64) error {
	if !appauth.CanDelete(actor) {
		return apperrors.NewForbiddenError(msgFileDeleteForbidden)
	}
	file, err := s.getFile(ctx, id)
	if err != nil {
		return err
	}
	if file.Category != models.CategoryGeneral {
		return apperrors.NewForbiddenError(msgFileNotDeletable)
	}
	if !appauth.CanDeleteGeneralFile(file, actor) {
		return apperrors.NewForbiddenError(msgFileDeleteForbidden)
	}
	if err := s.uploads.Delete(ctx, file); err != nil {
		return err
	}
	s.logger.Info().Int64("fileID", id).Int64("actorID", actor.ID).Msg("General file deleted")
	return nil
}

func (s *fileServiceImpl) toResponse(f *models.File) *dto.FileResponse {
	resp := &dto.FileResponse{
		ID:           f.ID,
		OriginalName: f.OriginalName,
		Size:         f.Size,
		Type:         f.FileType,
		Permissions:  f.Permissions,
		DownloadURL:  s.uploads.URLFor(f),
	}
	if f.Uploader != nil {
		name := f.Uploader.FullName()
		resp.UploadedBy = &name
	}
	return resp
}
