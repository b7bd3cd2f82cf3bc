package services

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/yigit/memberhub/internal/app/models"
	"github.com/yigit/memberhub/internal/app/repositories"
	"github.com/yigit/memberhub/internal/pkg/apperrors"
	"github.com/yigit/memberhub/internal/pkg/filestorage"
)

var testLogger = zerolog.Nop()

// memberStore keeps copies so tests observe only what was persisted
type memberStore struct {
	mu      sync.Mutex
	next    int64
	members map[int64]models.Member

	// returned by UpdateMany when set
	updateManyErr error
}

func newMemberStore() *memberStore {
	return &memberStore{members: map[int64]models.Member{}}
}

func (s *memberStore) add(t *testing.T, m *models.Member) *models.Member {
	t.Helper()
	require.NoError(t, s.Create(context.Background(), m))
	return m
}

func (s *memberStore) Create(_ context.Context, m *models.Member) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.members {
		if existing.Email == m.Email && m.Email != "" {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	s.next++
	m.ID = s.next
	s.members[m.ID] = *m
	return nil
}

func (s *memberStore) GetByID(_ context.Context, id int64) (*models.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.members[id]
	if !ok {
		return nil, apperrors.ErrMemberNotFound
	}
	return &m, nil
}

func (s *memberStore) GetByEmail(_ context.Context, email string) (*models.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.members {
		if m.Email == email {
			found := m
			return &found, nil
		}
	}
	return nil, apperrors.ErrMemberNotFound
}

func (s *memberStore) FindByPosition(_ context.Context, position models.Position) (*models.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.members {
		if m.Position == position {
			found := m
			return &found, nil
		}
	}
	return nil, nil
}

func (s *memberStore) CountByRole(_ context.Context, role models.Role) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, m := range s.members {
		if m.Role == role {
			n++
		}
	}
	return n, nil
}

func (s *memberStore) List(_ context.Context, filter repositories.MemberFilter) ([]*models.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*models.Member
	for _, m := range s.members {
		if filter.VisibleActiveOnly && (!m.Visible || !m.IsActive) {
			continue
		}
		found := m
		out = append(out, &found)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *memberStore) Update(_ context.Context, m *models.Member) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.members[m.ID]; !ok {
		return apperrors.ErrMemberNotFound
	}
	s.members[m.ID] = *m
	return nil
}

func (s *memberStore) UpdateMany(ctx context.Context, members ...*models.Member) error {
	if s.updateManyErr != nil {
		return s.updateManyErr
	}
	for _, m := range members {
		if err := s.Update(ctx, m); err != nil {
			return err
		}
	}
	return nil
}

// fileStore is an in-memory FileStore
type fileStore struct {
	mu    sync.Mutex
	next  int64
	files map[int64]*models.File
}

func newFileStore() *fileStore {
	return &fileStore{files: map[int64]*models.File{}}
}

func (s *fileStore) Create(_ context.Context, f *models.File) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	f.ID = s.next
	s.files[f.ID] = f
	return nil
}

func (s *fileStore) GetByID(_ context.Context, id int64) (*models.File, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.files[id]
	if !ok {
		return nil, apperrors.ErrFileNotFound
	}
	return f, nil
}

func (s *fileStore) GetByStoredPath(_ context.Context, storedPath string) (*models.File, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range s.files {
		if f.StoredPath == storedPath {
			return f, nil
		}
	}
	return nil, apperrors.ErrFileNotFound
}

func (s *fileStore) ListByCategory(_ context.Context, category models.FileCategory) ([]*models.File, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*models.File
	for _, f := range s.files {
		if f.Category == category {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (s *fileStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.files[id]; !ok {
		return apperrors.ErrFileNotFound
	}
	delete(s.files, id)
	return nil
}

func (s *fileStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.files)
}

// links mimics a join table; rows of deleted files disappear like a cascade
type links map[int64][]int64

func (l links) resolve(files *fileStore, ownerID int64) []*models.File {
	var out []*models.File
	for _, id := range l[ownerID] {
		if f, err := files.GetByID(context.Background(), id); err == nil {
			out = append(out, f)
		}
	}
	return out
}

// eventStore is an in-memory EventStore
type eventStore struct {
	next   int64
	events map[int64]models.Event
	links  links
	files  *fileStore
}

func newEventStore(files *fileStore) *eventStore {
	return &eventStore{events: map[int64]models.Event{}, links: links{}, files: files}
}

func (s *eventStore) Create(_ context.Context, e *models.Event) error {
	for _, existing := range s.events {
		if existing.EventPath == e.EventPath {
			return apperrors.ErrEventPathTaken
		}
	}
	s.next++
	e.ID = s.next
	s.events[e.ID] = *e
	return nil
}

func (s *eventStore) Update(_ context.Context, e *models.Event) error {
	for id, existing := range s.events {
		if id != e.ID && existing.EventPath == e.EventPath {
			return apperrors.ErrEventPathTaken
		}
	}
	s.events[e.ID] = *e
	return nil
}

func (s *eventStore) SetVisible(_ context.Context, id int64, visible bool) error {
	e, ok := s.events[id]
	if !ok {
		return apperrors.ErrEventNotFound
	}
	e.Visible = visible
	s.events[id] = e
	return nil
}

func (s *eventStore) load(e models.Event) *models.Event {
	e.EditHistory = append([]models.EditHistoryEntry{}, e.EditHistory...)
	e.Files = s.links.resolve(s.files, e.ID)
	return &e
}

func (s *eventStore) GetByID(_ context.Context, id int64) (*models.Event, error) {
	e, ok := s.events[id]
	if !ok {
		return nil, apperrors.ErrEventNotFound
	}
	return s.load(e), nil
}

func (s *eventStore) GetByPath(_ context.Context, path string) (*models.Event, error) {
	for _, e := range s.events {
		if e.EventPath == path {
			return s.load(e), nil
		}
	}
	return nil, apperrors.ErrEventNotFound
}

func (s *eventStore) PathExists(_ context.Context, path string, excludeID int64) (bool, error) {
	for id, e := range s.events {
		if id != excludeID && e.EventPath == path {
			return true, nil
		}
	}
	return false, nil
}

func (s *eventStore) List(_ context.Context, visibleOnly, ascending bool) ([]*models.Event, error) {
	var out []*models.Event
	for _, e := range s.events {
		if visibleOnly && !e.Visible {
			continue
		}
		out = append(out, s.load(e))
	}
	sort.Slice(out, func(i, j int) bool {
		if ascending {
			return out[i].EventDate.Before(out[j].EventDate)
		}
		return out[i].EventDate.After(out[j].EventDate)
	})
	return out, nil
}

func (s *eventStore) AttachFiles(_ context.Context, eventID int64, fileIDs ...int64) error {
	s.links[eventID] = append(s.links[eventID], fileIDs...)
	return nil
}

// postStore is an in-memory PostStore
type postStore struct {
	next  int64
	posts map[int64]models.Post
	links links
	files *fileStore
}

func newPostStore(files *fileStore) *postStore {
	return &postStore{posts: map[int64]models.Post{}, links: links{}, files: files}
}

func (s *postStore) Create(_ context.Context, p *models.Post) error {
	s.next++
	p.ID = s.next
	s.posts[p.ID] = *p
	return nil
}

func (s *postStore) Update(_ context.Context, p *models.Post) error {
	s.posts[p.ID] = *p
	return nil
}

func (s *postStore) SetVisible(_ context.Context, id int64, visible bool) error {
	p, ok := s.posts[id]
	if !ok {
		return apperrors.ErrPostNotFound
	}
	p.Visible = visible
	s.posts[id] = p
	return nil
}

func (s *postStore) GetByID(_ context.Context, id int64) (*models.Post, error) {
	p, ok := s.posts[id]
	if !ok {
		return nil, apperrors.ErrPostNotFound
	}
	p.EditHistory = append([]models.EditHistoryEntry{}, p.EditHistory...)
	p.Files = s.links.resolve(s.files, id)
	return &p, nil
}

func (s *postStore) List(ctx context.Context, visibleOnly bool) ([]*models.Post, error) {
	var out []*models.Post
	for id, p := range s.posts {
		if visibleOnly && !p.Visible {
			continue
		}
		loaded, _ := s.GetByID(ctx, id)
		out = append(out, loaded)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (s *postStore) AttachFiles(_ context.Context, postID int64, fileIDs ...int64) error {
	s.links[postID] = append(s.links[postID], fileIDs...)
	return nil
}

// projectStore is an in-memory ProjectStore
type projectStore struct {
	next     int64
	projects map[int64]models.Project
	links    links
	files    *fileStore
}

func newProjectStore(files *fileStore) *projectStore {
	return &projectStore{projects: map[int64]models.Project{}, links: links{}, files: files}
}

func (s *projectStore) Create(_ context.Context, p *models.Project) error {
	s.next++
	p.ID = s.next
	s.projects[p.ID] = *p
	return nil
}

func (s *projectStore) Update(_ context.Context, p *models.Project, replaceTechnologies bool) error {
	existing, ok := s.projects[p.ID]
	if !ok {
		return apperrors.ErrProjectNotFound
	}
	updated := *p
	if !replaceTechnologies {
		updated.TechnologyRelations = existing.TechnologyRelations
	}
	s.projects[p.ID] = updated
	return nil
}

func (s *projectStore) SetVisible(_ context.Context, id int64, visible bool) error {
	p, ok := s.projects[id]
	if !ok {
		return apperrors.ErrProjectNotFound
	}
	p.Visible = visible
	s.projects[id] = p
	return nil
}

func (s *projectStore) GetByID(_ context.Context, id int64) (*models.Project, error) {
	p, ok := s.projects[id]
	if !ok {
		return nil, apperrors.ErrProjectNotFound
	}
	p.Files = s.links.resolve(s.files, id)
	return &p, nil
}

func (s *projectStore) List(ctx context.Context, visibleOnly bool) ([]*models.Project, error) {
	var out []*models.Project
	for id, p := range s.projects {
		if visibleOnly && !p.Visible {
			continue
		}
		loaded, _ := s.GetByID(ctx, id)
		out = append(out, loaded)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (s *projectStore) AttachFiles(_ context.Context, projectID int64, fileIDs ...int64) error {
	s.links[projectID] = append(s.links[projectID], fileIDs...)
	return nil
}

// technologyStore is an in-memory TechnologyStore; projects referencing a
// technology are read from the project store
type technologyStore struct {
	next     int64
	techs    map[int64]models.Technology
	projects *projectStore
}

func newTechnologyStore(projects *projectStore) *technologyStore {
	return &technologyStore{techs: map[int64]models.Technology{}, projects: projects}
}

func (s *technologyStore) usage(id int64) []*models.Project {
	var out []*models.Project
	if s.projects == nil {
		return out
	}
	for _, p := range s.projects.projects {
		for _, t := range p.TechnologyRelations {
			if t.ID == id {
				project := p
				out = append(out, &project)
				break
			}
		}
	}
	return out
}

func (s *technologyStore) Create(_ context.Context, t *models.Technology) error {
	for _, existing := range s.techs {
		if existing.Name == t.Name {
			return apperrors.ErrTechnologyExists
		}
	}
	s.next++
	t.ID = s.next
	s.techs[t.ID] = *t
	return nil
}

func (s *technologyStore) Update(_ context.Context, t *models.Technology) error {
	if _, ok := s.techs[t.ID]; !ok {
		return apperrors.ErrTechnologyNotFound
	}
	s.techs[t.ID] = *t
	return nil
}

func (s *technologyStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.techs[id]; !ok {
		return apperrors.ErrTechnologyNotFound
	}
	if len(s.usage(id)) > 0 {
		return apperrors.ErrTechnologyInUse
	}
	delete(s.techs, id)
	return nil
}

func (s *technologyStore) GetByID(_ context.Context, id int64) (*models.Technology, error) {
	t, ok := s.techs[id]
	if !ok {
		return nil, apperrors.ErrTechnologyNotFound
	}
	t.ProjectCount = len(s.usage(id))
	return &t, nil
}

func (s *technologyStore) GetByName(_ context.Context, name string) (*models.Technology, error) {
	for _, t := range s.techs {
		if t.Name == name {
			found := t
			return &found, nil
		}
	}
	return nil, apperrors.ErrTechnologyNotFound
}

func (s *technologyStore) GetByIDs(ctx context.Context, ids []int64) ([]*models.Technology, error) {
	var out []*models.Technology
	for _, id := range ids {
		if t, err := s.GetByID(ctx, id); err == nil {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *technologyStore) List(ctx context.Context) ([]*models.Technology, error) {
	var out []*models.Technology
	for id := range s.techs {
		t, _ := s.GetByID(ctx, id)
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *technologyStore) ProjectsFor(_ context.Context, technologyID int64) ([]*models.Project, error) {
	return s.usage(technologyID), nil
}

// recordingNotifier captures review notifications
type recordingNotifier struct {
	items []ReviewItem
}

func (n *recordingNotifier) NotifyReview(item ReviewItem) {
	n.items = append(n.items, item)
}

// newUploads returns an upload service writing under a temp dir
func newUploads(t *testing.T, files *fileStore) (FileUploadService, *filestorage.LocalStorage) {
	t.Helper()
	storage, err := filestorage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	return NewFileUploadService(storage, files, testLogger), storage
}

// fileHeader builds a multipart file header the way gin receives one
func fileHeader(t *testing.T, name string, data []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File["file"][0]
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}
