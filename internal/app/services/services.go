package services

import (
	"context"
	"time"

	"github.com/yigit/memberhub/internal/app/models"
	"github.com/yigit/memberhub/internal/app/repositories"
)

// Repository contracts the services depend on. The pgx repositories satisfy
// them; tests use in-memory versions.

// MemberStore persists members
type MemberStore interface {
	Create(ctx context.Context, m *models.Member) error
	GetByID(ctx context.Context, id int64) (*models.Member, error)
	GetByEmail(ctx context.Context, email string) (*models.Member, error)
	FindByPosition(ctx context.Context, position models.Position) (*models.Member, error)
	CountByRole(ctx context.Context, role models.Role) (int, error)
	List(ctx context.Context, filter repositories.MemberFilter) ([]*models.Member, error)
	Update(ctx context.Context, m *models.Member) error
	UpdateMany(ctx context.Context, members ...*models.Member) error
}

// FileStore persists file records
type FileStore interface {
	Create(ctx context.Context, f *models.File) error
	GetByID(ctx context.Context, id int64) (*models.File, error)
	GetByStoredPath(ctx context.Context, storedPath string) (*models.File, error)
	ListByCategory(ctx context.Context, category models.FileCategory) ([]*models.File, error)
	Delete(ctx context.Context, id int64) error
}

// EventStore persists events
type EventStore interface {
	Create(ctx context.Context, e *models.Event) error
	Update(ctx context.Context, e *models.Event) error
	SetVisible(ctx context.Context, id int64, visible bool) error
	GetByID(ctx context.Context, id int64) (*models.Event, error)
	GetByPath(ctx context.Context, path string) (*models.Event, error)
	PathExists(ctx context.Context, path string, excludeID int64) (bool, error)
	List(ctx context.Context, visibleOnly, ascending bool) ([]*models.Event, error)
	AttachFiles(ctx context.Context, eventID int64, fileIDs ...int64) error
}

// PostStore persists posts
type PostStore interface {
	Create(ctx context.Context, p *models.Post) error
	Update(ctx context.Context, p *models.Post) error
	SetVisible(ctx context.Context, id int64, visible bool) error
	GetByID(ctx context.Context, id int64) (*models.Post, error)
	List(ctx context.Context, visibleOnly bool) ([]*models.Post, error)
	AttachFiles(ctx context.Context, postID int64, fileIDs ...int64) error
}

// ProjectStore persists projects
type ProjectStore interface {
	Create(ctx context.Context, p *models.Project) error
	Update(ctx context.Context, p *models.Project, replaceTechnologies bool) error
	SetVisible(ctx context.Context, id int64, visible bool) error
	GetByID(ctx context.Context, id int64) (*models.Project, error)
	List(ctx context.Context, visibleOnly bool) ([]*models.Project, error)
	AttachFiles(ctx context.Context, projectID int64, fileIDs ...int64) error
}

// TechnologyStore persists technologies
type TechnologyStore interface {
	Create(ctx context.Context, t *models.Technology) error
	Update(ctx context.Context, t *models.Technology) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*models.Technology, error)
	GetByName(ctx context.Context, name string) (*models.Technology, error)
	GetByIDs(ctx context.Context, ids []int64) ([]*models.Technology, error)
	List(ctx context.Context) ([]*models.Technology, error)
	ProjectsFor(ctx context.Context, technologyID int64) ([]*models.Project, error)
}

// ReviewItem describes content that is hidden and waiting for a moderator
type ReviewItem struct {
	Resource  string    `json:"resource"`
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	By        string    `json:"by"`
	Timestamp time.Time `json:"timestamp"`
}

// ReviewNotifier is told about content that needs moderation
type ReviewNotifier interface {
	NotifyReview(item ReviewItem)
}

type noopNotifier struct{}

func (noopNotifier) NotifyReview(ReviewItem) {}

func notifierOrNoop(n ReviewNotifier) ReviewNotifier {
	if n == nil {
		return noopNotifier{}
	}
	return n
}
