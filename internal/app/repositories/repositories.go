package repositories

import (
	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

// psql is the statement builder shared by all repositories
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repositories holds all the repository instances
type Repositories struct {
	MemberRepository     *MemberRepository
	FileRepository       *FileRepository
	EventRepository      *EventRepository
	PostRepository       *PostRepository
	ProjectRepository    *ProjectRepository
	TechnologyRepository *TechnologyRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		MemberRepository:     NewMemberRepository(db),
		FileRepository:       NewFileRepository(db),
		EventRepository:      NewEventRepository(db),
		PostRepository:       NewPostRepository(db),
		ProjectRepository:    NewProjectRepository(db),
		TechnologyRepository: NewTechnologyRepository(db),
	}
}
