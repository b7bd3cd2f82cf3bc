package filestorage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/yigit/memberhub/internal/pkg/logger"
)

// ErrInvalidPath is returned for paths escaping the storage root
var ErrInvalidPath = errors.New("invalid storage path")

// LocalStorage handles saving files to the local filesystem.
type LocalStorage struct {
	basePath string // The root directory where files will be stored
}

var _ FileStorage = (*LocalStorage)(nil)

// NewLocalStorage creates a new LocalStorage rooted at basePath, creating it
// if needed.
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{basePath: basePath}, nil
}

// BasePath returns the storage root
func (ls *LocalStorage) BasePath() string {
	return ls.basePath
}

// clean validates a relative path and returns it in slash form.
func clean(relPath string) (string, error) {
	p := path.Clean("/" + filepath.ToSlash(relPath))
	p = strings.TrimPrefix(p, "/")
	if p == "" || p == "." {
		return "", ErrInvalidPath
	}
	return p, nil
}

// Save writes src under dir/name
func (ls *LocalStorage) Save(dir, name string, src io.Reader) (string, int64, error) {
	relPath, err := clean(path.Join(dir, name))
	if err != nil {
		return "", 0, err
	}

	fullPath := ls.FullPath(relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", filepath.Dir(fullPath)).Msg("Failed to create subdirectory")
		return "", 0, fmt.Errorf("failed to create subdirectory: %w", err)
	}

	dst, err := os.OpenFile(fullPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		logger.Error().Err(err).Str("path", fullPath).Msg("Failed to create destination file")
		return "", 0, fmt.Errorf("failed to create destination file: %w", err)
	}

	written, err := io.Copy(dst, src)
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		logger.Error().Err(err).Str("path", fullPath).Msg("Failed to write file content")
		_ = os.Remove(fullPath)
		return "", 0, fmt.Errorf("failed to save file content: %w", err)
	}

	logger.Debug().Str("path", relPath).Int64("size", written).Msg("File saved")
	return relPath, written, nil
}

// Delete removes a file from the storage filesystem. Returns nil if the file
// does not exist.
func (ls *LocalStorage) Delete(relPath string) error {
	p, err := clean(relPath)
	if err != nil {
		return err
	}

	fullPath := ls.FullPath(p)
	if err := os.Remove(fullPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Warn().Str("path", fullPath).Msg("File to delete does not exist")
			return nil
		}
		logger.Error().Err(err).Str("path", fullPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	logger.Debug().Str("path", fullPath).Msg("File deleted")
	return nil
}

// FullPath returns the filesystem path for a stored relative path. Traversal
// segments are cleaned so the result always stays under the root.
func (ls *LocalStorage) FullPath(relPath string) string {
	p, err := clean(relPath)
	if err != nil {
		return ls.basePath
	}
	return filepath.Join(ls.basePath, filepath.FromSlash(p))
}

// Exists reports whether a regular file is stored at relPath
func (ls *LocalStorage) Exists(relPath string) bool {
	if _, err := clean(relPath); err != nil {
		return false
	}
	info, err := os.Stat(ls.FullPath(relPath))
	return err == nil && info.Mode().IsRegular()
}
