package models

import "time"

// EditHistoryEntry is one append-only audit record; Changes holds the fields
// as they were before the edit.
type EditHistoryEntry struct {
	Timestamp string                 `json:"timestamp"`
	EditedBy  string                 `json:"editedBy"`
	Changes   map[string]interface{} `json:"changes"`
}

// NewEditHistoryEntry stamps a snapshot with the editor's name.
func NewEditHistoryEntry(now time.Time, editor *Member, changes map[string]interface{}) EditHistoryEntry {
	return EditHistoryEntry{
		Timestamp: now.Format(DateTimeLayout),
		EditedBy:  editor.FullName(),
		Changes:   changes,
	}
}

// Post represents a news post
type Post struct {
	ID          int64              `json:"id" db:"id"`
	Title       string             `json:"title" db:"title"`
	Content     string             `json:"content" db:"content"`
	SuperEvent  bool               `json:"superEvent" db:"super_event"`
	Visible     bool               `json:"visible" db:"visible"`
	AuthorID    int64              `json:"authorId" db:"author_id"`
	EditHistory []EditHistoryEntry `json:"editHistory" db:"edit_history"`
	CreatedAt   time.Time          `json:"createdAt" db:"created_at"`

	Author *Member `json:"-"`
	Files  []*File `json:"-"`
}

// Snapshot returns the pre-edit fields recorded in edit history
func (p *Post) Snapshot() map[string]interface{} {
	return map[string]interface{}{
		"title":      p.Title,
		"content":    p.Content,
		"superEvent": p.SuperEvent,
	}
}
