package models

import (
	"path"
	"time"
)

// FileCategory controls storage location and allowed MIME types
type FileCategory string

const (
	CategoryProfilePicture FileCategory = "profile_picture"
	CategoryEventPhoto     FileCategory = "event_photo"
	CategoryProjectPhoto   FileCategory = "project_photo"
	CategoryTechnologyIcon FileCategory = "technology_icon"
	CategoryGeneral        FileCategory = "general"
)

// Valid reports whether c is a known category
func (c FileCategory) Valid() bool {
	switch c {
	case CategoryProfilePicture, CategoryEventPhoto, CategoryProjectPhoto, CategoryTechnologyIcon, CategoryGeneral:
		return true
	}
	return false
}

// ImagesOnly reports whether the category accepts image uploads only.
func (c FileCategory) ImagesOnly() bool {
	return c != CategoryGeneral
}

// FilePermission is the access tier for downloads
type FilePermission string

const (
	PermissionPublic         FilePermission = "public"
	PermissionMembersOnly    FilePermission = "members_only"
	PermissionModeratorsOnly FilePermission = "moderators_only"
	PermissionAdminsOnly     FilePermission = "admins_only"
)

// Valid reports whether p is a known permission
func (p FilePermission) Valid() bool {
	switch p {
	case PermissionPublic, PermissionMembersOnly, PermissionModeratorsOnly, PermissionAdminsOnly:
		return true
	}
	return false
}

// FileType is the coarse classification derived from the MIME type
type FileType string

const (
	FileTypeImage    FileType = "image"
	FileTypeDocument FileType = "document"
	FileTypeArchive  FileType = "archive"
	FileTypeOther    FileType = "other"
)

// File represents an uploaded file
type File struct {
	ID           int64          `json:"id" db:"id"`
	OriginalName string         `json:"originalName" db:"original_name"`
	StoredPath   string         `json:"-" db:"stored_path"` // "{category}/{name}"
	MimeType     string         `json:"mimeType" db:"mime_type"`
	FileType     FileType       `json:"type" db:"file_type"`
	Category     FileCategory   `json:"category" db:"category"`
	Permissions  FilePermission `json:"permissions" db:"permissions"`
	Size         int64          `json:"size" db:"size"`
	UploadedBy   *int64         `json:"uploadedBy,omitempty" db:"uploaded_by"`
	CreatedAt    time.Time      `json:"createdAt" db:"created_at"`

	Uploader *Member `json:"-"` // Relation, no db tag
}

// Basename returns the stored file name without the category directory.
func (f *File) Basename() string {
	return path.Base(f.StoredPath)
}
