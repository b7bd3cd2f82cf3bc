package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/rs/zerolog"
	appauth "github.com/yigit/memberhub/internal/app/auth"
	"github.com/yigit/memberhub/internal/app/models"
	"github.com/yigit/memberhub/internal/pkg/apperrors"
	"github.com/yigit/memberhub/internal/pkg/filestorage"
)

const (
	maxFileSize  = 10 << 20
	maxImageSize = 5 << 20
)

// Upload messages shown to clients
const (
	msgFileCorrupted   = "Plik jest uszkodzony"
	msgImagesOnly      = "Dozwolone są tylko pliki: JPG, PNG, WebP"
	msgInvalidFileType = "Nieprawidłowy typ pliku"
	msgSaveFailed      = "Błąd podczas zapisywania pliku"
	msgDeleteFailed    = "Błąd podczas usuwania pliku"
)

var (
	imageTypes = []string{"image/jpeg", "image/png", "image/webp"}

	documentTypes = []string{
		"application/pdf",
		"application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		"application/vnd.ms-excel",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		"application/vnd.ms-powerpoint",
		"application/vnd.openxmlformats-officedocument.presentationml.presentation",
		"text/plain",
		"text/csv",
		"application/rtf",
		"application/vnd.oasis.opendocument.text",
		"application/vnd.oasis.opendocument.spreadsheet",
		"application/vnd.oasis.opendocument.presentation",
	}

	archiveTypes = []string{"application/zip", "application/x-rar-compressed", "application/vnd.rar", "application/x-rar"}
)

// UploadOptions bounds image dimensions; zero means unbounded.
type UploadOptions struct {
	MaxWidth  int
	MaxHeight int
}

// FileUploadService validates, stores and removes uploaded files
type FileUploadService interface {
	Upload(ctx context.Context, fh *multipart.FileHeader, category models.FileCategory, permissions models.FilePermission, uploader *models.Member, opts UploadOptions) (*models.File, error)
	Delete(ctx context.Context, file *models.File) error
	CanAccess(file *models.File, actor *models.Member) bool
	URLFor(file *models.File) string
	FullPathFor(file *models.File) string
	Exists(file *models.File) bool
}

// fileUploadServiceImpl implements FileUploadService
type fileUploadServiceImpl struct {
	storage filestorage.FileStorage
	files   FileStore
	logger  zerolog.Logger
}

// NewFileUploadService creates a new FileUploadService
func NewFileUploadService(storage filestorage.FileStorage, files FileStore, logger zerolog.Logger) FileUploadService {
	return &fileUploadServiceImpl{
		storage: storage,
		files:   files,
		logger:  logger,
	}
}

// matchesAny checks the detected type and its aliases
func matchesAny(mt *mimetype.MIME, allowed []string) bool {
	for _, a := range allowed {
		if mt.Is(a) {
			return true
		}
	}
	return false
}

func classify(mt *mimetype.MIME) models.FileType {
	switch {
	case matchesAny(mt, imageTypes):
		return models.FileTypeImage
	case matchesAny(mt, documentTypes):
		return models.FileTypeDocument
	case matchesAny(mt, archiveTypes):
		return models.FileTypeArchive
	default:
		return models.FileTypeOther
	}
}

// baseMIME drops parameters such as "; charset=utf-8"
func baseMIME(mt *mimetype.MIME) string {
	s := mt.String()
	if i := strings.IndexByte(s, ';'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

// storedName builds "{slug}-{uuid}.{ext}" from the client file name
func storedName(originalName, ext string) string {
	base := strings.TrimSuffix(filepath.Base(originalName), filepath.Ext(originalName))
	s := slug.Make(base)
	if s == "" {
		s = "file"
	}
	ext = strings.TrimPrefix(ext, ".")
	if ext == "" {
		ext = "bin"
	}
	return fmt.Sprintf("%s-%s.%s", s, uuid.New().String(), ext)
}

func (s *fileUploadServiceImpl) validate(mt *mimetype.MIME, size int64, category models.FileCategory) error {
	limit := int64(maxFileSize)
	if matchesAny(mt, imageTypes) {
		limit = maxImageSize
	}
	if size > limit {
		return apperrors.NewBadRequestError(fmt.Sprintf("Plik jest za duży (max %dMB)", limit>>20))
	}

	if category.ImagesOnly() {
		if !matchesAny(mt, imageTypes) {
			return apperrors.NewBadRequestError(msgImagesOnly)
		}
		return nil
	}
	if classify(mt) == models.FileTypeOther {
		return apperrors.NewBadRequestError(msgInvalidFileType)
	}
	return nil
}

// Upload validates the file, writes it under its category directory and
// records it. Images are downscaled to JPEG when opts bounds them.
func (s *fileUploadServiceImpl) Upload(ctx context.Context, fh *multipart.FileHeader, category models.FileCategory, permissions models.FilePermission, uploader *models.Member, opts UploadOptions) (*models.File, error) {
	if fh == nil {
		return nil, apperrors.NewBadRequestError(msgFileCorrupted)
	}
	src, err := fh.Open()
	if err != nil {
		s.logger.Warn().Err(err).Str("name", fh.Filename).Msg("Unreadable upload")
		return nil, apperrors.NewBadRequestError(msgFileCorrupted)
	}
	defer src.Close()

	mt, err := mimetype.DetectReader(src)
	if err != nil {
		return nil, apperrors.NewBadRequestError(msgFileCorrupted)
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, apperrors.NewBadRequestError(msgFileCorrupted)
	}

	if err := s.validate(mt, fh.Size, category); err != nil {
		return nil, err
	}

	fileType := classify(mt)
	mimeType := baseMIME(mt)
	ext := mt.Extension()

	var body io.Reader = src
	if fileType == models.FileTypeImage && (opts.MaxWidth > 0 || opts.MaxHeight > 0) {
		var buf bytes.Buffer
		if err := filestorage.ResizeToJPEG(&buf, src, opts.MaxWidth, opts.MaxHeight); err != nil {
			s.logger.Warn().Err(err).Str("name", fh.Filename).Msg("Image processing failed")
			return nil, apperrors.NewStorageError(msgSaveFailed, err)
		}
		body = &buf
		mimeType = "image/jpeg"
		ext = "jpg"
	}

	relPath, size, err := s.storage.Save(string(category), storedName(fh.Filename, ext), body)
	if err != nil {
		return nil, apperrors.NewStorageError(msgSaveFailed, err)
	}

	file := &models.File{
		OriginalName: fh.Filename,
		StoredPath:   relPath,
		MimeType:     mimeType,
		FileType:     fileType,
		Category:     category,
		Permissions:  permissions,
		Size:         size,
	}
	if uploader != nil {
		id := uploader.ID
		file.UploadedBy = &id
		file.Uploader = uploader
	}

	if err := s.files.Create(ctx, file); err != nil {
		if delErr := s.storage.Delete(relPath); delErr != nil {
			s.logger.Warn().Err(delErr).Str("path", relPath).Msg("Orphaned upload left on disk")
		}
		return nil, apperrors.NewStorageError(msgSaveFailed, err)
	}

	s.logger.Info().
		Int64("fileID", file.ID).
		Str("path", relPath).
		Str("mime", mimeType).
		Int64("size", size).
		Msg("File uploaded")
	return file, nil
}

// Delete removes the object from disk and then its record; both steps
// tolerate an already missing target.
func (s *fileUploadServiceImpl) Delete(ctx context.Context, file *models.File) error {
	if file == nil {
		return nil
	}
	if err := s.storage.Delete(file.StoredPath); err != nil {
		return apperrors.NewStorageError(msgDeleteFailed, err)
	}
	if err := s.files.Delete(ctx, file.ID); err != nil && !errors.Is(err, apperrors.ErrFileNotFound) {
		return apperrors.NewStorageError(msgDeleteFailed, err)
	}
	return nil
}

func (s *fileUploadServiceImpl) CanAccess(file *models.File, actor *models.Member) bool {
	return appauth.CanAccessFile(file, actor)
}

// URLFor returns the download endpoint of a file
func (s *fileUploadServiceImpl) URLFor(file *models.File) string {
	return fmt.Sprintf("/api/file/%d/download", file.ID)
}

func (s *fileUploadServiceImpl) FullPathFor(file *models.File) string {
	return s.storage.FullPath(file.StoredPath)
}

func (s *fileUploadServiceImpl) Exists(file *models.File) bool {
	return s.storage.Exists(file.StoredPath)
}
