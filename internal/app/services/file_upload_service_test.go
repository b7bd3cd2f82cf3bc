package services

import (
	"bytes"
	"context"
	"image/jpeg"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/memberhub/internal/app/models"
	"github.com/yigit/memberhub/internal/pkg/apperrors"
)

func countFiles(t *testing.T, root string) int {
	t.Helper()
	n := 0
	err := filepath.Walk(root, func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			n++
		}
		return nil
	})
	require.NoError(t, err)
	return n
}

func TestUploadRejectsDisallowedType(t *testing.T) {
	files := newFileStore()
	uploads, storage := newUploads(t, files)
	ctx := context.Background()

	html := []byte("<!DOCTYPE html><html><body>hi</body></html>")
	_, err := uploads.Upload(ctx, fileHeader(t, "photo.jpg", html), models.CategoryEventPhoto, models.PermissionPublic, nil, UploadOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
	msg, _ := apperrors.Message(err)
	assert.Equal(t, "Dozwolone są tylko pliki: JPG, PNG, WebP", msg)

	_, err = uploads.Upload(ctx, fileHeader(t, "page.html", html), models.CategoryGeneral, models.PermissionPublic, nil, UploadOptions{})
	require.Error(t, err)
	msg, _ = apperrors.Message(err)
	assert.Equal(t, "Nieprawidłowy typ pliku", msg)

	assert.Zero(t, files.count())
	assert.Zero(t, countFiles(t, storage.BasePath()))
}

func TestUploadRejectsOversizedImage(t *testing.T) {
	files := newFileStore()
	uploads, _ := newUploads(t, files)

	data := append(pngBytes(t, 4, 4), bytes.Repeat([]byte{0}, 5<<20)...)
	_, err := uploads.Upload(context.Background(), fileHeader(t, "big.png", data), models.CategoryEventPhoto, models.PermissionPublic, nil, UploadOptions{})
	require.Error(t, err)
	msg, _ := apperrors.Message(err)
	assert.Equal(t, "Plik jest za duży (max 5MB)", msg)
	assert.Zero(t, files.count())
}

func TestUploadStoresDocumentVerbatim(t *testing.T) {
	files := newFileStore()
	uploads, storage := newUploads(t, files)
	uploader := &models.Member{ID: 7, FirstName: "Jan", LastName: "Kowalski"}

	content := []byte("Regulamin koła naukowego\nPunkt 1.\n")
	f, err := uploads.Upload(context.Background(), fileHeader(t, "Regulamin Koła.txt", content), models.CategoryGeneral, models.PermissionMembersOnly, uploader, UploadOptions{MaxWidth: 64})
	require.NoError(t, err)

	assert.Equal(t, models.FileTypeDocument, f.FileType)
	assert.Equal(t, "text/plain", f.MimeType)
	assert.Equal(t, models.PermissionMembersOnly, f.Permissions)
	assert.Equal(t, int64(len(content)), f.Size)
	require.NotNil(t, f.UploadedBy)
	assert.Equal(t, int64(7), *f.UploadedBy)
	assert.Regexp(t, regexp.MustCompile(`^general/regulamin-kola-[0-9a-f-]{36}\.txt$`), f.StoredPath)

	onDisk, err := os.ReadFile(storage.FullPath(f.StoredPath))
	require.NoError(t, err)
	assert.Equal(t, content, onDisk)
	assert.Equal(t, "/api/file/1/download", uploads.URLFor(f))
}

func TestUploadIconIsBoundedJPEG(t *testing.T) {
	files := newFileStore()
	uploads, storage := newUploads(t, files)

	f, err := uploads.Upload(context.Background(), fileHeader(t, "go.png", pngBytes(t, 300, 120)), models.CategoryTechnologyIcon, models.PermissionPublic, nil, UploadOptions{MaxWidth: 64, MaxHeight: 64})
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", f.MimeType)
	assert.Equal(t, models.FileTypeImage, f.FileType)
	assert.Regexp(t, regexp.MustCompile(`\.jpg$`), f.StoredPath)

	raw, err := os.Open(storage.FullPath(f.StoredPath))
	require.NoError(t, err)
	defer raw.Close()
	cfg, err := jpeg.DecodeConfig(raw)
	require.NoError(t, err)
	assert.LessOrEqual(t, cfg.Width, 64)
	assert.LessOrEqual(t, cfg.Height, 64)
}

func TestUploadWithoutBoundsKeepsPNG(t *testing.T) {
	files := newFileStore()
	uploads, _ := newUploads(t, files)

	f, err := uploads.Upload(context.Background(), fileHeader(t, "!!!.png", pngBytes(t, 10, 10)), models.CategoryEventPhoto, models.PermissionPublic, nil, UploadOptions{})
	require.NoError(t, err)
	assert.Equal(t, "image/png", f.MimeType)
	assert.Regexp(t, regexp.MustCompile(`^event_photo/file-[0-9a-f-]{36}\.png$`), f.StoredPath)
}

func TestDeleteRemovesObjectAndRecord(t *testing.T) {
	files := newFileStore()
	uploads, storage := newUploads(t, files)
	ctx := context.Background()

	f, err := uploads.Upload(ctx, fileHeader(t, "a.png", pngBytes(t, 8, 8)), models.CategoryEventPhoto, models.PermissionPublic, nil, UploadOptions{})
	require.NoError(t, err)
	require.True(t, uploads.Exists(f))

	require.NoError(t, uploads.Delete(ctx, f))
	assert.False(t, uploads.Exists(f))
	assert.Zero(t, files.count())
	assert.Zero(t, countFiles(t, storage.BasePath()))

	assert.NoError(t, uploads.Delete(ctx, f), "deleting twice is not an error")
}

func TestCanAccessTiers(t *testing.T) {
	uploads, _ := newUploads(t, newFileStore())
	admin := &models.Member{ID: 1, Role: models.RoleAdmin, IsActive: true}
	user := &models.Member{ID: 2, Role: models.RoleUser, IsActive: true}

	public := &models.File{Permissions: models.PermissionPublic}
	adminsOnly := &models.File{Permissions: models.PermissionAdminsOnly}

	assert.True(t, uploads.CanAccess(public, nil))
	assert.True(t, uploads.CanAccess(public, user))
	assert.False(t, uploads.CanAccess(adminsOnly, nil))
	assert.False(t, uploads.CanAccess(adminsOnly, user))
	assert.True(t, uploads.CanAccess(adminsOnly, admin))
}
