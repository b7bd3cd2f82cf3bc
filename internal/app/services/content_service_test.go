package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/memberhub/internal/app/models"
	"github.com/yigit/memberhub/internal/app/models/dto"
	"github.com/yigit/memberhub/internal/pkg/apperrors"
)

func TestPostLifecycle(t *testing.T) {
	files := newFileStore()
	uploads, _ := newUploads(t, files)
	posts := newPostStore(files)
	notifier := &recordingNotifier{}
	svc := NewPostService(posts, uploads, notifier, testLogger)
	ctx := context.Background()

	_, err := svc.Create(ctx, author, &dto.PostInput{Title: strPtr("Tylko tytuł")}, nil)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)

	created, err := svc.Create(ctx, author, &dto.PostInput{
		Title:      strPtr("Nabór 2024"),
		Content:    strPtr("Rekrutacja trwa"),
		SuperEvent: boolPtr(true),
	}, nil)
	require.NoError(t, err)
	assert.False(t, created.Visible)
	assert.True(t, created.SuperEvent)

	_, err = svc.SetVisibility(ctx, admin, created.ID, true)
	require.NoError(t, err)

	edited, err := svc.Edit(ctx, author, created.ID, &dto.PostInput{Content: strPtr("Rekrutacja zakończona")}, nil)
	require.NoError(t, err, "authors keep edit rights after publication")
	assert.False(t, edited.Visible)
	require.NotNil(t, edited.EditCount)
	assert.Equal(t, 1, *edited.EditCount)

	stored, err := posts.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rekrutacja trwa", stored.EditHistory[0].Changes["content"])
	assert.Equal(t, true, stored.EditHistory[0].Changes["superEvent"])

	stranger := &models.Member{ID: 42, Role: models.RoleUser, IsActive: true}
	_, err = svc.Edit(ctx, stranger, created.ID, &dto.PostInput{}, nil)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	visible, err := svc.ListVisible(ctx)
	require.NoError(t, err)
	assert.Empty(t, visible)

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Len(t, got.EditHistory, 1)

	_, err = svc.GetByID(ctx, 77)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	assert.Len(t, notifier.items, 2)
}

type projectFixture struct {
	svc   ProjectService
	store *projectStore
	techs *technologyStore
	files *fileStore
}

func newProjectFixture(t *testing.T) *projectFixture {
	t.Helper()
	files := newFileStore()
	uploads, _ := newUploads(t, files)
	projects := newProjectStore(files)
	techs := newTechnologyStore(projects)
	return &projectFixture{
		svc:   NewProjectService(projects, techs, uploads, nil, testLogger),
		store: projects,
		techs: techs,
		files: files,
	}
}

func TestProjectCreateParsesListsAndDates(t *testing.T) {
	f := newProjectFixture(t)
	ctx := context.Background()
	goTech := &models.Technology{Name: "Go"}
	require.NoError(t, f.techs.Create(ctx, goTech))

	_, err := f.svc.Create(ctx, author, &dto.ProjectInput{Name: strPtr("Bez opisu")}, nil)
	require.Error(t, err)
	msg, _ := apperrors.Message(err)
	assert.Equal(t, "Nazwa i opis są wymagane", msg)

	_, err = f.svc.Create(ctx, author, &dto.ProjectInput{
		Name:        strPtr("Łazik"),
		Description: strPtr("Opis"),
		StartDate:   strPtr("pierwszy marca"),
	}, nil)
	msg, _ = apperrors.Message(err)
	assert.Equal(t, "Nieprawidłowy format daty rozpoczęcia", msg)

	created, err := f.svc.Create(ctx, author, &dto.ProjectInput{
		Name:          strPtr("Łazik"),
		Description:   strPtr("Łazik marsjański"),
		Participants:  strPtr(`["Jan Kowalski", "Anna Nowak"]`),
		Technologies:  strPtr(`["Go", "ROS"]`),
		TechnologyIDs: strPtr(`[1, 99]`),
		StartDate:     strPtr("2024-01-15"),
		ProjectLink:   strPtr("https://example.com"),
		Future:        boolPtr(true),
	}, fileHeader(t, "lazik.png", pngBytes(t, 20, 20)))
	require.NoError(t, err)
	assert.Equal(t, []string{"Jan Kowalski", "Anna Nowak"}, created.Participants)
	assert.Equal(t, []string{"Go", "ROS"}, created.Technologies)
	require.NotNil(t, created.StartDate)
	assert.Equal(t, "2024-01-15", *created.StartDate)
	assert.Nil(t, created.EndDate)
	assert.True(t, created.HasFile)
	assert.True(t, created.Future)
	assert.False(t, created.Visible)

	got, err := f.svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, got.TechnologyRelations, 1, "unknown technology ids are skipped")
	assert.Equal(t, "Go", got.TechnologyRelations[0].Name)
	require.NotNil(t, got.FileURL)
}

func TestProjectEditIsStaffOnly(t *testing.T) {
	f := newProjectFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, author, &dto.ProjectInput{
		Name:        strPtr("Dron"),
		Description: strPtr("Opis"),
		RepoLink:    strPtr("https://example.com/repo"),
	}, fileHeader(t, "dron.png", pngBytes(t, 20, 20)))
	require.NoError(t, err)

	_, err = f.svc.Edit(ctx, author, created.ID, &dto.ProjectInput{Name: strPtr("Dron 2")}, nil)
	require.Error(t, err)
	msg, _ := apperrors.Message(err)
	assert.Equal(t, "Brak uprawnień do edycji projektu", msg)

	_, err = f.svc.SetVisibility(ctx, admin, created.ID, true)
	require.NoError(t, err)

	edited, err := f.svc.Edit(ctx, moderator, created.ID, &dto.ProjectInput{
		Name:     strPtr("Dron 2"),
		RepoLink: strPtr(""),
	}, fileHeader(t, "dron2.png", pngBytes(t, 20, 20)))
	require.NoError(t, err)
	assert.Equal(t, "Dron 2", edited.Name)
	assert.Nil(t, edited.RepoLink, "an empty link clears it")
	assert.False(t, edited.Visible)
	assert.Equal(t, 1, f.files.count(), "the new file replaces the old one")

	_, err = f.svc.Edit(ctx, moderator, 500, &dto.ProjectInput{}, nil)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestTechnologyCRUD(t *testing.T) {
	f := newProjectFixture(t)
	svc := NewTechnologyService(f.techs, testLogger)
	ctx := context.Background()

	_, err := svc.Create(ctx, &dto.TechnologyRequest{Name: strPtr("  ")})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)

	goTech, err := svc.Create(ctx, &dto.TechnologyRequest{Name: strPtr("Go"), Description: strPtr("Język")})
	require.NoError(t, err)
	rust, err := svc.Create(ctx, &dto.TechnologyRequest{Name: strPtr("Rust")})
	require.NoError(t, err)

	_, err = svc.Create(ctx, &dto.TechnologyRequest{Name: strPtr("Go")})
	assert.ErrorIs(t, err, apperrors.ErrTechnologyExists)
	_, err = svc.Update(ctx, rust.ID, &dto.TechnologyRequest{Name: strPtr("Go")})
	assert.ErrorIs(t, err, apperrors.ErrTechnologyExists)

	renamed, err := svc.Update(ctx, goTech.ID, &dto.TechnologyRequest{Name: strPtr("Golang")})
	require.NoError(t, err)
	assert.Equal(t, "Golang", renamed.Name)
	require.NotNil(t, renamed.Description)

	_, err = f.svc.Create(ctx, author, &dto.ProjectInput{
		Name:          strPtr("Serwer"),
		Description:   strPtr("Opis"),
		TechnologyIDs: strPtr(`[1]`),
	}, nil)
	require.NoError(t, err)

	err = svc.Delete(ctx, goTech.ID)
	assert.ErrorIs(t, err, apperrors.ErrTechnologyInUse)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Golang", list[0].Name)
	require.NotNil(t, list[0].ProjectCount)
	assert.Equal(t, 1, *list[0].ProjectCount)

	detail, err := svc.GetByID(ctx, goTech.ID)
	require.NoError(t, err)
	require.Len(t, detail.Projects, 1)
	assert.Equal(t, "Serwer", detail.Projects[0].Name)

	require.NoError(t, svc.Delete(ctx, rust.ID))
	assert.ErrorIs(t, svc.Delete(ctx, rust.ID), apperrors.ErrResourceNotFound)
}

func TestGeneralFiles(t *testing.T) {
	files := newFileStore()
	uploads, _ := newUploads(t, files)
	techs := newTechnologyStore(nil)
	svc := NewFileService(files, techs, uploads, testLogger)
	ctx := context.Background()
	user := &models.Member{ID: 10, Role: models.RoleUser, IsActive: true}

	_, err := svc.UploadGeneral(ctx, moderator, fileHeader(t, "a.txt", []byte("abc")), "everyone")
	require.Error(t, err)
	msg, _ := apperrors.Message(err)
	assert.Equal(t, "Nieprawidłowe uprawnienia", msg)

	pub, err := svc.UploadGeneral(ctx, moderator, fileHeader(t, "public.txt", []byte("jawne")), "public")
	require.NoError(t, err)
	require.NotNil(t, pub.UploadedBy)
	assert.Equal(t, "Ewa Mazur", *pub.UploadedBy)
	secret, err := svc.UploadGeneral(ctx, moderator, fileHeader(t, "secret.txt", []byte("tajne")), "admins_only")
	require.NoError(t, err)

	list, err := svc.ListGeneral(ctx, user)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "public.txt", list[0].OriginalName)

	list, err = svc.ListGeneral(ctx, admin)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	_, err = svc.Download(ctx, nil, secret.ID)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	dl, err := svc.Download(ctx, nil, pub.ID)
	require.NoError(t, err)
	assert.Equal(t, "public.txt", dl.OriginalName)
	assert.FileExists(t, dl.Path)

	otherMod := &models.Member{ID: 20, Role: models.RoleModerator, IsActive: true}
	assert.ErrorIs(t, svc.Delete(ctx, user, pub.ID), apperrors.ErrPermissionDenied)
	assert.ErrorIs(t, svc.Delete(ctx, otherMod, pub.ID), apperrors.ErrPermissionDenied)
	require.NoError(t, svc.Delete(ctx, moderator, pub.ID))
	require.NoError(t, svc.Delete(ctx, admin, secret.ID))
	assert.Zero(t, files.count())

	_, err = svc.Download(ctx, admin, secret.ID)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestGeneralDeleteRejectsOtherCategories(t *testing.T) {
	files := newFileStore()
	uploads, _ := newUploads(t, files)
	svc := NewFileService(files, newTechnologyStore(nil), uploads, testLogger)
	ctx := context.Background()

	photo, err := uploads.Upload(ctx, fileHeader(t, "p.png", pngBytes(t, 4, 4)), models.CategoryEventPhoto, models.PermissionPublic, admin, UploadOptions{})
	require.NoError(t, err)

	err = svc.Delete(ctx, admin, photo.ID)
	require.Error(t, err)
	msg, _ := apperrors.Message(err)
	assert.Equal(t, "Nie można usunąć tego typu pliku", msg)
}

func TestTechnologyIconReplacesPrevious(t *testing.T) {
	files := newFileStore()
	uploads, _ := newUploads(t, files)
	techs := newTechnologyStore(nil)
	svc := NewFileService(files, techs, uploads, testLogger)
	ctx := context.Background()

	tech := &models.Technology{Name: "Go"}
	require.NoError(t, techs.Create(ctx, tech))

	_, err := svc.UploadTechnologyIcon(ctx, admin, 99, fileHeader(t, "x.png", pngBytes(t, 4, 4)))
	require.Error(t, err)
	msg, _ := apperrors.Message(err)
	assert.Equal(t, "Nie znaleziono technologii", msg)

	first, err := svc.UploadTechnologyIcon(ctx, admin, tech.ID, fileHeader(t, "go.png", pngBytes(t, 200, 200)))
	require.NoError(t, err)
	require.NotNil(t, first.Icon)
	assert.Regexp(t, `^go-.*\.jpg$`, *first.Icon)

	second, err := svc.UploadTechnologyIcon(ctx, admin, tech.ID, fileHeader(t, "gopher.png", pngBytes(t, 90, 30)))
	require.NoError(t, err)
	assert.NotEqual(t, *first.Icon, *second.Icon)
	assert.Equal(t, 1, files.count(), "previous icon is deleted")

	stored, err := techs.GetByID(ctx, tech.ID)
	require.NoError(t, err)
	assert.Equal(t, second.Icon, stored.Icon)
}
