package models

import "time"

// Project represents a club project
type Project struct {
	ID           int64      `json:"id" db:"id"`
	Name         string     `json:"name" db:"name"`
	Description  string     `json:"description" db:"description"`
	Participants []string   `json:"participants" db:"participants"`
	StartDate    *time.Time `json:"startDate" db:"start_date"`
	EndDate      *time.Time `json:"endDate" db:"end_date"`
	Technologies []string   `json:"technologies" db:"technologies"`
	ProjectLink  *string    `json:"projectLink" db:"project_link"`
	RepoLink     *string    `json:"repoLink" db:"repo_link"`
	Future       bool       `json:"future" db:"future"`
	Visible      bool       `json:"visible" db:"visible"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`

	TechnologyRelations []*Technology `json:"-"`
	Files               []*File       `json:"-"`
}

// Technology is a tag projects can reference
type Technology struct {
	ID          int64   `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Description *string `json:"description" db:"description"`
	Icon        *string `json:"icon" db:"icon"` // stored file basename

	ProjectCount int        `json:"-"`
	Projects     []*Project `json:"-"`
}
