package services

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/yigit/memberhub/internal/app/models"
	"github.com/yigit/memberhub/internal/app/models/dto"
	"github.com/yigit/memberhub/internal/pkg/apperrors"
	"github.com/yigit/memberhub/internal/pkg/auth"
)

type sentActivation struct {
	email, name, code string
}

type fakeMailer struct {
	sent []sentActivation
}

func (m *fakeMailer) SendActivationEmail(toEmail, toName, code string) error {
	m.sent = append(m.sent, sentActivation{toEmail, toName, code})
	return nil
}

type fakeTokens struct{}

func (fakeTokens) GenerateToken(member *models.Member) (string, int, error) {
	return "token-for-" + member.Email, 3600, nil
}

type memberFixture struct {
	svc     MemberService
	members *memberStore
	files   *fileStore
	mailer  *fakeMailer
	hasher  auth.PasswordHasher
}

func newMemberFixture(t *testing.T) *memberFixture {
	t.Helper()
	f := &memberFixture{
		members: newMemberStore(),
		files:   newFileStore(),
		mailer:  &fakeMailer{},
		hasher:  auth.NewBcryptHasher(bcrypt.MinCost),
	}
	uploads, _ := newUploads(t, f.files)
	f.svc = NewMemberService(f.members, f.files, uploads, f.hasher, fakeTokens{}, f.mailer, testLogger)
	return f
}

func (f *memberFixture) seed(t *testing.T, email string, role models.Role, position models.Position) *models.Member {
	t.Helper()
	hash, err := f.hasher.Hash("Secret123")
	require.NoError(t, err)
	return f.members.add(t, &models.Member{
		FirstName:    "Jan",
		LastName:     email,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Position:     position,
		IsActive:     role != models.RoleNone,
	})
}

func validRegistration() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Email:     "  Anna.Nowak@Example.COM ",
		Password:  "Secret123",
		FirstName: "aNNA",
		LastName:  "nowak",
	}
}

func TestRegisterCreatesInactiveAccount(t *testing.T) {
	f := newMemberFixture(t)
	ctx := context.Background()

	m, err := f.svc.Register(ctx, validRegistration())
	require.NoError(t, err)

	stored, err := f.members.GetByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "anna.nowak@example.com", stored.Email)
	assert.Equal(t, "Anna", stored.FirstName)
	assert.Equal(t, "Nowak", stored.LastName)
	assert.Equal(t, models.RoleNone, stored.Role)
	assert.False(t, stored.IsActive)
	assert.False(t, stored.Visible)
	require.NotNil(t, stored.ActivationCode)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{32}$`), *stored.ActivationCode)

	require.Len(t, f.mailer.sent, 1)
	assert.Equal(t, *stored.ActivationCode, f.mailer.sent[0].code)

	_, err = f.svc.Login(ctx, &dto.LoginRequest{Email: "anna.nowak@example.com", Password: "Secret123"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrAccountInactive)
	msg, _ := apperrors.Message(err)
	assert.Equal(t, "Konto nie zostało aktywowane", msg)
}

func TestRegisterValidation(t *testing.T) {
	f := newMemberFixture(t)
	ctx := context.Background()

	weak := validRegistration()
	weak.Password = "secret"
	_, err := f.svc.Register(ctx, weak)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)

	badEmail := validRegistration()
	badEmail.Email = "not-an-email"
	_, err = f.svc.Register(ctx, badEmail)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)

	_, err = f.svc.Register(ctx, validRegistration())
	require.NoError(t, err)
	_, err = f.svc.Register(ctx, validRegistration())
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestActivateThenLogin(t *testing.T) {
	f := newMemberFixture(t)
	ctx := context.Background()

	m, err := f.svc.Register(ctx, validRegistration())
	require.NoError(t, err)

	err = f.svc.Activate(ctx, &dto.ActivateRequest{Email: m.Email, Code: "deadbeef"})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)

	require.NoError(t, f.svc.Activate(ctx, &dto.ActivateRequest{Email: m.Email, Code: *m.ActivationCode}))

	resp, err := f.svc.Login(ctx, &dto.LoginRequest{Email: m.Email, Password: "Secret123"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, "token-for-"+m.Email, resp.Token)
	assert.Equal(t, models.RoleUser, resp.User.Role)
	assert.Equal(t, "Anna Nowak", resp.User.FullName)
}

func TestLoginFailures(t *testing.T) {
	f := newMemberFixture(t)
	ctx := context.Background()
	f.seed(t, "user@example.com", models.RoleUser, models.PositionMember)

	_, err := f.svc.Login(ctx, &dto.LoginRequest{Email: "", Password: "x"})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)

	_, err = f.svc.Login(ctx, &dto.LoginRequest{Email: "ghost@example.com", Password: "Secret123"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = f.svc.Login(ctx, &dto.LoginRequest{Email: "user@example.com", Password: "Wrong1234"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	msg, _ := apperrors.Message(err)
	assert.Equal(t, "Nieprawidłowe dane logowania", msg)
}

func TestSelfDeactivation(t *testing.T) {
	f := newMemberFixture(t)
	ctx := context.Background()
	user := f.seed(t, "user@example.com", models.RoleUser, models.PositionMember)
	mod := f.seed(t, "mod@example.com", models.RoleModerator, models.PositionMember)

	assert.ErrorIs(t, f.svc.DeactivateSelf(ctx, mod), apperrors.ErrPermissionDenied)

	require.NoError(t, f.svc.DeactivateSelf(ctx, user))
	stored, err := f.members.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleNone, stored.Role)
	assert.False(t, stored.IsActive)
	assert.NotNil(t, stored.DeactivationDate)
	assert.NotNil(t, stored.ActivationCode)

	_, err = f.svc.Login(ctx, &dto.LoginRequest{Email: "user@example.com", Password: "Secret123"})
	assert.ErrorIs(t, err, apperrors.ErrAccountDisabled)
	msg, _ := apperrors.Message(err)
	assert.Equal(t, "Aktywuj konto ponownie", msg)
}

func TestDeactivateByAdmin(t *testing.T) {
	f := newMemberFixture(t)
	ctx := context.Background()
	admin := f.seed(t, "admin@example.com", models.RoleAdmin, models.PositionMember)
	other := f.seed(t, "admin2@example.com", models.RoleAdmin, models.PositionMember)
	user := f.seed(t, "user@example.com", models.RoleUser, models.PositionMember)

	assert.ErrorIs(t, f.svc.DeactivateByAdmin(ctx, admin, admin.ID), apperrors.ErrPermissionDenied)
	assert.ErrorIs(t, f.svc.DeactivateByAdmin(ctx, admin, other.ID), apperrors.ErrPermissionDenied)
	assert.ErrorIs(t, f.svc.DeactivateByAdmin(ctx, admin, 999), apperrors.ErrResourceNotFound)
	require.NoError(t, f.svc.DeactivateByAdmin(ctx, admin, user.ID))
}

func TestChangeRoleKeepsLastAdmin(t *testing.T) {
	f := newMemberFixture(t)
	ctx := context.Background()
	admin := f.seed(t, "admin@example.com", models.RoleAdmin, models.PositionMember)

	_, err := f.svc.ChangeRole(ctx, admin.ID, models.RoleUser)
	assert.ErrorIs(t, err, apperrors.ErrLastAdmin)
	stored, _ := f.members.GetByID(ctx, admin.ID)
	assert.Equal(t, models.RoleAdmin, stored.Role)

	_, err = f.svc.ChangeRole(ctx, admin.ID, models.RoleAdmin)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest, "same role is rejected")

	_, err = f.svc.ChangeRole(ctx, admin.ID, models.Role("OWNER"))
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)

	f.seed(t, "admin2@example.com", models.RoleAdmin, models.PositionMember)
	resp, err := f.svc.ChangeRole(ctx, admin.ID, models.RoleModerator)
	require.NoError(t, err)
	assert.Equal(t, models.RoleModerator, resp.Role)
}

func TestAssignUniquePositionMovesHolder(t *testing.T) {
	f := newMemberFixture(t)
	ctx := context.Background()
	oldChair := f.seed(t, "old@example.com", models.RoleAdmin, models.PositionChairman)
	newChair := f.seed(t, "new@example.com", models.RoleUser, models.PositionMember)

	resp, err := f.svc.AssignPosition(ctx, newChair.ID, models.PositionChairman)
	require.NoError(t, err)
	assert.Equal(t, models.PositionChairman, resp.Position)
	assert.Equal(t, models.RoleAdmin, resp.Role)

	prev, _ := f.members.GetByID(ctx, oldChair.ID)
	assert.Equal(t, models.PositionMember, prev.Position)
	cur, _ := f.members.GetByID(ctx, newChair.ID)
	assert.Equal(t, models.PositionChairman, cur.Position)
	assert.Equal(t, models.RoleAdmin, cur.Role)

	_, err = f.svc.AssignPosition(ctx, newChair.ID, models.Position("president"))
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestAssignPositionRaceIsConflict(t *testing.T) {
	f := newMemberFixture(t)
	ctx := context.Background()
	m := f.seed(t, "new@example.com", models.RoleUser, models.PositionMember)
	f.members.updateManyErr = apperrors.ErrConflict

	_, err := f.svc.AssignPosition(ctx, m.ID, models.PositionTreasurer)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	msg, ok := apperrors.Message(err)
	assert.True(t, ok)
	assert.Equal(t, "Stanowisko zostało w międzyczasie przydzielone innemu członkowi", msg)

	stored, _ := f.members.GetByID(ctx, m.ID)
	assert.Equal(t, models.PositionMember, stored.Position)
	assert.Equal(t, models.RoleUser, stored.Role)
}

func TestListVisibleOrdersByPosition(t *testing.T) {
	f := newMemberFixture(t)
	ctx := context.Background()
	for _, m := range []struct {
		email    string
		position models.Position
	}{
		{"a@example.com", models.PositionMember},
		{"b@example.com", models.PositionChairman},
		{"c@example.com", models.PositionTreasurer},
	} {
		seeded := f.seed(t, m.email, models.RoleUser, m.position)
		_, err := f.svc.SetVisibility(ctx, seeded.ID, true)
		require.NoError(t, err)
	}
	f.seed(t, "hidden@example.com", models.RoleUser, models.PositionMember)

	list, err := f.svc.ListVisible(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, models.PositionChairman, list[0].Position)
	assert.Empty(t, list[0].Email, "public list hides private fields")

	all, err := f.svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestUpdateProfilePictureReplacesOldPhoto(t *testing.T) {
	f := newMemberFixture(t)
	ctx := context.Background()
	user := f.seed(t, "user@example.com", models.RoleUser, models.PositionMember)

	first, err := f.svc.UpdateProfilePicture(ctx, user, fileHeader(t, "me.png", pngBytes(t, 800, 600)))
	require.NoError(t, err)
	require.NotNil(t, first.Photo.ID)
	assert.Equal(t, 1, f.files.count())

	second, err := f.svc.UpdateProfilePicture(ctx, user, fileHeader(t, "me2.png", pngBytes(t, 100, 100)))
	require.NoError(t, err)
	assert.NotEqual(t, *first.Photo.ID, *second.Photo.ID)
	assert.Equal(t, 1, f.files.count(), "old photo is deleted")

	photo, err := f.files.GetByID(ctx, *second.Photo.ID)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", photo.MimeType)
}
