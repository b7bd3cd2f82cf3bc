package services

import (
	"context"
	"mime/multipart"
	"strings"
	"time"

	"github.com/yigit/memberhub/internal/app/models"
	"github.com/yigit/memberhub/internal/app/models/dto"
)

// eventDateLayouts are tried in order when parsing an event date
var eventDateLayouts = []string{
	time.RFC3339,
	models.DateTimeLayout,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	models.DateLayout,
}

func parseDate(value string, layouts []string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// nonEmpty returns the trimmed value when it was sent and is not blank
func nonEmpty(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	v := strings.TrimSpace(*s)
	return v, v != ""
}

// optional maps "not sent" and "" to nil
func optional(s *string) *string {
	if v, ok := nonEmpty(s); ok {
		return &v
	}
	return nil
}

// uploadAll stores the files in order and stops at the first failure.
// Files stored before the failure are kept.
func uploadAll(ctx context.Context, uploads FileUploadService, fhs []*multipart.FileHeader, category models.FileCategory, actor *models.Member) ([]*models.File, error) {
	var stored []*models.File
	for _, fh := range fhs {
		if fh == nil {
			continue
		}
		f, err := uploads.Upload(ctx, fh, category, models.PermissionPublic, actor, UploadOptions{})
		if err != nil {
			return stored, err
		}
		stored = append(stored, f)
	}
	return stored, nil
}

// deleteAll removes the files, stopping at the first failure
func deleteAll(ctx context.Context, uploads FileUploadService, files []*models.File) error {
	for _, f := range files {
		if err := uploads.Delete(ctx, f); err != nil {
			return err
		}
	}
	return nil
}

func fileIDs(files []*models.File) []int64 {
	ids := make([]int64, 0, len(files))
	for _, f := range files {
		ids = append(ids, f.ID)
	}
	return ids
}

func fileLinks(uploads FileUploadService, files []*models.File) []dto.FileLink {
	links := make([]dto.FileLink, 0, len(files))
	for _, f := range files {
		links = append(links, dto.FileLink{
			ID:           f.ID,
			OriginalName: f.OriginalName,
			URL:          uploads.URLFor(f),
		})
	}
	return links
}

func authorName(m *models.Member) string {
	if m == nil {
		return ""
	}
	return m.FullName()
}
