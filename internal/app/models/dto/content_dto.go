package dto

import (
	"github.com/yigit/memberhub/internal/app/models"
)

// FileLink is the attachment view embedded in content responses
type FileLink struct {
	ID           int64  `json:"id" example:"7"`
	OriginalName string `json:"originalName" example:"plakat.jpg"`
	URL          string `json:"url" example:"/api/file/7/download"`
}

// EventInput holds event form fields. Nil pointers mean "not sent".
type EventInput struct {
	Title        *string
	Content      *string
	Description  *string
	EventDate    *string
	ReplaceFiles bool
}

// EventResponse is the event view
type EventResponse struct {
	ID          int64                     `json:"id" example:"1"`
	Title       string                    `json:"title" example:"Walne Zebranie 2024"`
	Content     string                    `json:"content"`
	Description *string                   `json:"description"`
	EventDate   string                    `json:"eventDate" example:"2024-03-01 18:00:00"`
	EventPath   string                    `json:"eventPath" example:"walne-zebranie-2024"`
	Visible     bool                      `json:"visible" example:"false"`
	Author      string                    `json:"author" example:"Jan Kowalski"`
	FileCount   int                       `json:"fileCount" example:"1"`
	Files       []FileLink                `json:"files,omitempty"`
	EditCount   *int                      `json:"editCount,omitempty" example:"0"`
	EditHistory []models.EditHistoryEntry `json:"editHistory,omitempty"`
}

// EventVisibilityResponse reports the new visibility of an event
type EventVisibilityResponse struct {
	ID        int64  `json:"id" example:"1"`
	Title     string `json:"title"`
	EventPath string `json:"eventPath"`
	Visible   bool   `json:"visible"`
}

// PostInput holds post form fields. Nil pointers mean "not sent".
type PostInput struct {
	Title        *string
	Content      *string
	SuperEvent   *bool
	ReplaceFiles bool
}

// PostResponse is the post view
type PostResponse struct {
	ID          int64                     `json:"id" example:"1"`
	Title       string                    `json:"title"`
	Content     string                    `json:"content"`
	SuperEvent  bool                      `json:"superEvent" example:"false"`
	Visible     bool                      `json:"visible" example:"false"`
	Author      string                    `json:"author" example:"Jan Kowalski"`
	FileCount   int                       `json:"fileCount" example:"0"`
	Files       []FileLink                `json:"files,omitempty"`
	EditCount   *int                      `json:"editCount,omitempty"`
	EditHistory []models.EditHistoryEntry `json:"editHistory,omitempty"`
}

// PostVisibilityResponse reports the new visibility of a post
type PostVisibilityResponse struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Visible bool   `json:"visible"`
}
