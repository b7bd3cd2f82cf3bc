package services

import (
	"context"
	"mime/multipart"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/memberhub/internal/app/models"
	"github.com/yigit/memberhub/internal/app/models/dto"
	"github.com/yigit/memberhub/internal/pkg/apperrors"
)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

type eventFixture struct {
	svc      EventService
	events   *eventStore
	files    *fileStore
	notifier *recordingNotifier
}

func newEventFixture(t *testing.T) *eventFixture {
	t.Helper()
	files := newFileStore()
	uploads, _ := newUploads(t, files)
	f := &eventFixture{events: newEventStore(files), files: files, notifier: &recordingNotifier{}}
	f.svc = NewEventService(f.events, uploads, f.notifier, testLogger)
	return f
}

func eventInput(title string) *dto.EventInput {
	return &dto.EventInput{
		Title:     strPtr(title),
		Content:   strPtr("Zapraszamy wszystkich członków"),
		EventDate: strPtr("2024-03-01 18:00:00"),
	}
}

var (
	author    = &models.Member{ID: 1, FirstName: "Jan", LastName: "Kowalski", Role: models.RoleUser, IsActive: true}
	moderator = &models.Member{ID: 2, FirstName: "Ewa", LastName: "Mazur", Role: models.RoleModerator, IsActive: true}
	admin     = &models.Member{ID: 3, FirstName: "Adam", LastName: "Nowak", Role: models.RoleAdmin, IsActive: true}
)

func TestCreateEventGeneratesUniquePaths(t *testing.T) {
	f := newEventFixture(t)
	ctx := context.Background()

	paths := make([]string, 0, 3)
	for i := 0; i < 3; i++ {
		e, err := f.svc.Create(ctx, author, eventInput("Walne Zebranie 2024"), nil)
		require.NoError(t, err)
		assert.False(t, e.Visible)
		assert.Equal(t, "Jan Kowalski", e.Author)
		paths = append(paths, e.EventPath)
	}
	assert.Equal(t, []string{"walne-zebranie-2024", "walne-zebranie-2024-1", "walne-zebranie-2024-2"}, paths)
	assert.Len(t, f.notifier.items, 3)
	assert.Equal(t, "event", f.notifier.items[0].Resource)
}

// racingEvents hides existing paths from the first lookups, the way a
// concurrent writer that commits between check and write would.
type racingEvents struct {
	*eventStore
	blind int
}

func (r *racingEvents) PathExists(ctx context.Context, path string, excludeID int64) (bool, error) {
	if r.blind > 0 {
		r.blind--
		return false, nil
	}
	return r.eventStore.PathExists(ctx, path, excludeID)
}

func TestEventPathRetriesOnConcurrentClaim(t *testing.T) {
	files := newFileStore()
	uploads, _ := newUploads(t, files)
	events := &racingEvents{eventStore: newEventStore(files)}
	svc := NewEventService(events, uploads, nil, testLogger)
	ctx := context.Background()

	_, err := svc.Create(ctx, author, eventInput("Walne Zebranie"), nil)
	require.NoError(t, err)
	other, err := svc.Create(ctx, author, eventInput("Piknik"), nil)
	require.NoError(t, err)

	events.blind = 1
	created, err := svc.Create(ctx, author, eventInput("Walne Zebranie"), nil)
	require.NoError(t, err)
	assert.Equal(t, "walne-zebranie-1", created.EventPath)

	events.blind = 1
	renamed, err := svc.Edit(ctx, admin, other.ID, &dto.EventInput{Title: strPtr("Walne Zebranie")}, nil)
	require.NoError(t, err)
	assert.Equal(t, "walne-zebranie-2", renamed.EventPath)

	events.blind = eventPathInsertTries
	_, err = svc.Create(ctx, author, eventInput("Walne Zebranie"), nil)
	assert.ErrorIs(t, err, apperrors.ErrEventPathTaken)
	assert.Zero(t, events.blind)
}

func TestCreateEventValidation(t *testing.T) {
	f := newEventFixture(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, author, &dto.EventInput{Title: strPtr("Bez treści")}, nil)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)

	in := eventInput("Zła data")
	in.EventDate = strPtr("jutro wieczorem")
	_, err = f.svc.Create(ctx, author, in, nil)
	require.Error(t, err)
	msg, _ := apperrors.Message(err)
	assert.Equal(t, "Nieprawidłowy format daty", msg)

	in = eventInput("Data ISO")
	in.EventDate = strPtr("2024-05-10T17:30:00+02:00")
	_, err = f.svc.Create(ctx, author, in, nil)
	assert.NoError(t, err)
}

func TestCreateEventWithPhotos(t *testing.T) {
	f := newEventFixture(t)
	ctx := context.Background()

	photos := []*multipart.FileHeader{
		fileHeader(t, "a.png", pngBytes(t, 10, 10)),
		fileHeader(t, "b.png", pngBytes(t, 12, 12)),
	}
	e, err := f.svc.Create(ctx, author, eventInput("Piknik"), photos)
	require.NoError(t, err)
	assert.Equal(t, 2, e.FileCount)
	require.Len(t, e.Files, 2)
	assert.Equal(t, "a.png", e.Files[0].OriginalName)

	bad := []*multipart.FileHeader{
		fileHeader(t, "c.png", pngBytes(t, 10, 10)),
		fileHeader(t, "notes.txt", []byte("plain text")),
	}
	_, err = f.svc.Create(ctx, author, eventInput("Piknik 2"), bad)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
	assert.Equal(t, 3, f.files.count(), "files stored before the failure stay persisted")
}

func TestNonAdminEditHidesEventAndRecordsHistory(t *testing.T) {
	f := newEventFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, author, eventInput("Walne Zebranie 2024"), nil)
	require.NoError(t, err)
	_, err = f.svc.SetVisibility(ctx, admin, created.ID, true)
	require.NoError(t, err)

	edited, err := f.svc.Edit(ctx, moderator, created.ID, &dto.EventInput{Title: strPtr("Walne Zebranie 2025")}, nil)
	require.NoError(t, err)
	assert.False(t, edited.Visible)
	assert.Equal(t, "walne-zebranie-2025", edited.EventPath)
	require.NotNil(t, edited.EditCount)
	assert.Equal(t, 1, *edited.EditCount)

	stored, err := f.events.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, stored.EditHistory, 1)
	entry := stored.EditHistory[0]
	assert.Equal(t, "Ewa Mazur", entry.EditedBy)
	assert.Equal(t, "Walne Zebranie 2024", entry.Changes["title"])
	assert.Equal(t, "2024-03-01 18:00:00", entry.Changes["eventDate"])
}

func TestAdminEditKeepsVisibility(t *testing.T) {
	f := newEventFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, author, eventInput("Hackathon"), nil)
	require.NoError(t, err)
	_, err = f.svc.SetVisibility(ctx, admin, created.ID, true)
	require.NoError(t, err)

	edited, err := f.svc.Edit(ctx, admin, created.ID, &dto.EventInput{Content: strPtr("Nowa treść")}, nil)
	require.NoError(t, err)
	assert.True(t, edited.Visible)
	assert.Equal(t, "hackathon", edited.EventPath, "unchanged title keeps the path")
}

func TestEventEditPolicy(t *testing.T) {
	f := newEventFixture(t)
	ctx := context.Background()
	stranger := &models.Member{ID: 9, Role: models.RoleUser, IsActive: true}

	created, err := f.svc.Create(ctx, author, eventInput("Warsztaty"), nil)
	require.NoError(t, err)

	_, err = f.svc.Edit(ctx, stranger, created.ID, &dto.EventInput{}, nil)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	_, err = f.svc.Edit(ctx, author, created.ID, &dto.EventInput{Content: strPtr("poprawka")}, nil)
	require.NoError(t, err, "author may edit while hidden")

	_, err = f.svc.SetVisibility(ctx, admin, created.ID, true)
	require.NoError(t, err)
	_, err = f.svc.Edit(ctx, author, created.ID, &dto.EventInput{Content: strPtr("druga")}, nil)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied, "published events are staff-only")

	_, err = f.svc.Edit(ctx, author, 404, &dto.EventInput{}, nil)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)

	_, err = f.svc.SetVisibility(ctx, moderator, created.ID, false)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestEditReplacesFiles(t *testing.T) {
	f := newEventFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, author, eventInput("Galeria"), []*multipart.FileHeader{fileHeader(t, "old.png", pngBytes(t, 5, 5))})
	require.NoError(t, err)
	oldID := created.Files[0].ID

	_, err = f.svc.Edit(ctx, author, created.ID, &dto.EventInput{}, []*multipart.FileHeader{fileHeader(t, "new.png", pngBytes(t, 5, 5))})
	require.NoError(t, err)

	_, err = f.files.GetByID(ctx, oldID)
	assert.ErrorIs(t, err, apperrors.ErrFileNotFound)
	stored, _ := f.events.GetByID(ctx, created.ID)
	require.Len(t, stored.Files, 1)
	assert.Equal(t, "new.png", stored.Files[0].OriginalName)

	_, err = f.svc.Edit(ctx, author, created.ID, &dto.EventInput{ReplaceFiles: true}, nil)
	require.NoError(t, err)
	stored, _ = f.events.GetByID(ctx, created.ID)
	assert.Empty(t, stored.Files)
}

func TestEventListingsAndPathLookup(t *testing.T) {
	f := newEventFixture(t)
	ctx := context.Background()

	later := eventInput("Później")
	later.EventDate = strPtr("2024-06-01")
	sooner := eventInput("Wcześniej")
	sooner.EventDate = strPtr("2024-01-01")

	e1, err := f.svc.Create(ctx, author, later, nil)
	require.NoError(t, err)
	e2, err := f.svc.Create(ctx, author, sooner, nil)
	require.NoError(t, err)
	_, err = f.svc.Create(ctx, author, eventInput("Ukryte"), nil)
	require.NoError(t, err)

	for _, id := range []int64{e1.ID, e2.ID} {
		_, err = f.svc.SetVisibility(ctx, admin, id, true)
		require.NoError(t, err)
	}

	visible, err := f.svc.ListVisible(ctx)
	require.NoError(t, err)
	require.Len(t, visible, 2)
	assert.Equal(t, "Wcześniej", visible[0].Title)
	assert.Nil(t, visible[0].EditCount)

	all, err := f.svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Później", all[0].Title)
	require.NotNil(t, all[0].EditCount)

	got, err := f.svc.GetByPath(ctx, "wczesniej")
	require.NoError(t, err)
	assert.Equal(t, e2.ID, got.ID)
	assert.NotNil(t, got.EditHistory)

	_, err = f.svc.GetByPath(ctx, "ukryte")
	require.Error(t, err)
	msg, _ := apperrors.Message(err)
	assert.Equal(t, "Wydarzenie nie jest dostępne", msg)

	_, err = f.svc.GetByPath(ctx, "nie-ma")
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestParseDateLayouts(t *testing.T) {
	for _, v := range []string{"2024-03-01", "2024-03-01 18:00:00", "2024-03-01T18:00", "2024-03-01T18:00:00Z"} {
		_, ok := parseDate(v, eventDateLayouts)
		assert.True(t, ok, v)
	}
	_, ok := parseDate("01.03.2024", eventDateLayouts)
	assert.False(t, ok)

	d, ok := parseDate(" 2024-03-01 ", projectDateLayouts)
	require.True(t, ok)
	assert.Equal(t, time.March, d.Month())
}
