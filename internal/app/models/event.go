package models

import (
	"time"

	"github.com/gosimple/slug"
)

// Event represents a dated event addressed by its unique path
type Event struct {
	ID          int64              `json:"id" db:"id"`
	Title       string             `json:"title" db:"title"`
	Content     string             `json:"content" db:"content"`
	Description *string            `json:"description" db:"description"`
	EventPath   string             `json:"eventPath" db:"event_path"`
	EventDate   time.Time          `json:"eventDate" db:"event_date"`
	Visible     bool               `json:"visible" db:"visible"`
	AuthorID    int64              `json:"authorId" db:"author_id"`
	EditHistory []EditHistoryEntry `json:"editHistory" db:"edit_history"`
	CreatedAt   time.Time          `json:"createdAt" db:"created_at"`

	Author *Member `json:"-"`
	Files  []*File `json:"-"`
}

// GenerateEventPath turns a title into a lower-case ASCII slug, transliterating
// Polish diacritics. Uniqueness is the caller's concern.
func GenerateEventPath(title string) string {
	return slug.MakeLang(title, "pl")
}

// Snapshot returns the pre-edit fields recorded in edit history
func (e *Event) Snapshot() map[string]interface{} {
	return map[string]interface{}{
		"title":       e.Title,
		"content":     e.Content,
		"description": e.Description,
		"eventDate":   e.EventDate.Format(DateTimeLayout),
	}
}
