package filestorage

import "io"

// FileStorage defines the blob operations the upload service needs. Paths are
// relative to the storage root, e.g. "general/report-1a2b.pdf".
type FileStorage interface {
	// Save writes src to dir/name, creating dir if needed, and returns the
	// relative path and the number of bytes written.
	Save(dir, name string, src io.Reader) (string, int64, error)

	// Delete removes the object; a missing object is not an error.
	Delete(relPath string) error

	// FullPath resolves a relative path to its location on disk.
	FullPath(relPath string) string

	// Exists reports whether the object is present.
	Exists(relPath string) bool
}
