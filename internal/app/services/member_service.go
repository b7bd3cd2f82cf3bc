package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"mime/multipart"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/memberhub/internal/app/models"
	"github.com/yigit/memberhub/internal/app/models/dto"
	"github.com/yigit/memberhub/internal/app/repositories"
	"github.com/yigit/memberhub/internal/pkg/apperrors"
	"github.com/yigit/memberhub/internal/pkg/auth"
	"github.com/yigit/memberhub/internal/pkg/email"
	"github.com/yigit/memberhub/internal/pkg/validation"
)

// Member messages shown to clients
const (
	msgMissingData        = "Brak wymaganych danych"
	msgInvalidEmail       = validation.MsgInvalidEmail
	msgEmailTaken         = "Konto z podanym adresem email już istnieje"
	msgWeakPassword       = validation.MsgWeakPassword
	msgLoginFailed        = "Błąd logowania"
	msgReactivate         = "Aktywuj konto ponownie"
	msgBlocked            = "Konto zablokowane permanentnie"
	msgNotActivated       = "Konto nie zostało aktywowane"
	msgBadCredentials     = "Nieprawidłowe dane logowania"
	msgStaffCannotLeave   = "Administratorzy i moderatorzy nie mogą dezaktywować swoich kont ze względu na posiadane uprawnienia."
	msgCannotDeactivateMe = "Nie możesz dezaktywować swojego konta."
	msgCannotDeactivateAd = "Nie możesz dezaktywować konta administratora."
	msgInvalidRole        = "Niepoprawna rola"
	msgSameRole           = "Użytkownik już posiada wybraną rolę"
	msgSoleAdmin          = "Nie możesz pozbawić roli jedynego administratora."
	msgInvalidPosition    = "Nieprawidłowa pozycja"
	msgPositionTaken      = "Stanowisko zostało w międzyczasie przydzielone innemu członkowi"
	msgMemberNotFound     = "Nie znaleziono użytkownika"
	msgInvalidCode        = "Nieprawidłowy kod aktywacyjny"
	msgNoFile             = "Brak pliku"
)

const profilePictureSize = 512

// TokenIssuer signs access tokens for members
type TokenIssuer interface {
	GenerateToken(member *models.Member) (string, int, error)
}

// MemberService defines the interface for member account operations
type MemberService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.Member, error)
	CreateByAdmin(ctx context.Context, req *dto.RegisterRequest) (*models.Member, error)
	Activate(ctx context.Context, req *dto.ActivateRequest) error
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	DeactivateSelf(ctx context.Context, actor *models.Member) error
	DeactivateByAdmin(ctx context.Context, actor *models.Member, memberID int64) error
	ChangeRole(ctx context.Context, memberID int64, role models.Role) (*dto.RoleResponse, error)
	SetVisibility(ctx context.Context, memberID int64, visible bool) (*dto.MemberVisibilityResponse, error)
	AssignPosition(ctx context.Context, memberID int64, position models.Position) (*dto.PositionResponse, error)
	UpdateProfilePicture(ctx context.Context, actor *models.Member, fh *multipart.FileHeader) (*dto.ProfilePictureResponse, error)
	ListVisible(ctx context.Context) ([]dto.MemberResponse, error)
	ListAll(ctx context.Context) ([]dto.MemberResponse, error)
}

// memberServiceImpl implements MemberService
type memberServiceImpl struct {
	members MemberStore
	files   FileStore
	uploads FileUploadService
	hasher  auth.PasswordHasher
	tokens  TokenIssuer
	mailer  email.EmailService
	logger  zerolog.Logger
	now     func() time.Time
	newCode func() (string, error)
}

// NewMemberService creates a new MemberService
func NewMemberService(
	members MemberStore,
	files FileStore,
	uploads FileUploadService,
	hasher auth.PasswordHasher,
	tokens TokenIssuer,
	mailer email.EmailService,
	logger zerolog.Logger,
) MemberService {
	return &memberServiceImpl{
		members: members,
		files:   files,
		uploads: uploads,
		hasher:  hasher,
		tokens:  tokens,
		mailer:  mailer,
		logger:  logger,
		now:     time.Now,
		newCode: auth.GenerateActivationCode,
	}
}

// newMember validates signup data and builds an unsaved member
func (s *memberServiceImpl) newMember(ctx context.Context, req *dto.RegisterRequest) (*models.Member, error) {
	if req == nil || strings.TrimSpace(req.Email) == "" || req.Password == "" ||
		strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.LastName) == "" {
		return nil, apperrors.NewBadRequestError(msgMissingData)
	}

	emailAddr := validation.NormalizeEmail(req.Email)
	if !validation.IsValidEmail(emailAddr) {
		return nil, apperrors.NewBadRequestError(msgInvalidEmail)
	}

	if _, err := s.members.GetByEmail(ctx, emailAddr); err == nil {
		return nil, apperrors.Wrap(apperrors.ErrEmailAlreadyExists, msgEmailTaken)
	} else if !errors.Is(err, apperrors.ErrMemberNotFound) {
		return nil, fmt.Errorf("error checking email: %w", err)
	}

	if !validation.IsStrongPassword(req.Password) {
		return nil, apperrors.NewBadRequestError(msgWeakPassword)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	return &models.Member{
		FirstName:    models.NormalizeName(req.FirstName),
		LastName:     models.NormalizeName(req.LastName),
		Email:        emailAddr,
		PasswordHash: hash,
		Position:     models.PositionMember,
	}, nil
}

func (s *memberServiceImpl) create(ctx context.Context, m *models.Member) error {
	if err := s.members.Create(ctx, m); err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return apperrors.Wrap(apperrors.ErrEmailAlreadyExists, msgEmailTaken)
		}
		return fmt.Errorf("error creating member: %w", err)
	}
	return nil
}

func (s *memberServiceImpl) sendActivation(m *models.Member) {
	if m.ActivationCode == nil {
		return
	}
	if err := s.mailer.SendActivationEmail(m.Email, m.FullName(), *m.ActivationCode); err != nil {
		s.logger.Error().Err(err).Int64("memberID", m.ID).Msg("Failed to send activation email")
	}
}

// Register creates an inactive account with an activation code
func (s *memberServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*models.Member, error) {
	m, err := s.newMember(ctx, req)
	if err != nil {
		return nil, err
	}

	code, err := s.newCode()
	if err != nil {
		return nil, err
	}
	m.Role = models.RoleNone
	m.ActivationCode = &code

	if err := s.create(ctx, m); err != nil {
		return nil, err
	}
	s.logger.Info().Int64("memberID", m.ID).Str("email", m.Email).Msg("Member registered")
	s.sendActivation(m)
	return m, nil
}

// CreateByAdmin creates an active USER account
func (s *memberServiceImpl) CreateByAdmin(ctx context.Context, req *dto.RegisterRequest) (*models.Member, error) {
	m, err := s.newMember(ctx, req)
	if err != nil {
		return nil, err
	}
	m.Role = models.RoleUser
	m.IsActive = true
	m.Visible = req.Visible

	if err := s.create(ctx, m); err != nil {
		return nil, err
	}
	s.logger.Info().Int64("memberID", m.ID).Str("email", m.Email).Msg("Member created by admin")
	return m, nil
}

// Activate checks the emailed code and re-enables the account
func (s *memberServiceImpl) Activate(ctx context.Context, req *dto.ActivateRequest) error {
	if req == nil || req.Email == "" || req.Code == "" {
		return apperrors.NewBadRequestError(msgMissingData)
	}
	m, err := s.members.GetByEmail(ctx, validation.NormalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, apperrors.ErrMemberNotFound) {
			return apperrors.NewBadRequestError(msgInvalidCode)
		}
		return fmt.Errorf("error getting member: %w", err)
	}
	if m.ActivationCode == nil || subtle.ConstantTimeCompare([]byte(*m.ActivationCode), []byte(req.Code)) != 1 {
		return apperrors.NewBadRequestError(msgInvalidCode)
	}

	m.Activate()
	if err := s.members.Update(ctx, m); err != nil {
		return fmt.Errorf("error activating member: %w", err)
	}
	s.logger.Info().Int64("memberID", m.ID).Msg("Member activated")
	return nil
}

// Login runs the account checks in order and issues a token
func (s *memberServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if req == nil || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return nil, apperrors.NewBadRequestError(msgMissingData)
	}

	m, err := s.members.GetByEmail(ctx, validation.NormalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, apperrors.ErrMemberNotFound) {
			return nil, apperrors.Wrap(apperrors.ErrInvalidCredentials, msgLoginFailed)
		}
		return nil, fmt.Errorf("error getting member: %w", err)
	}

	if m.DeactivationDate != nil {
		if m.ActivationCode != nil {
			return nil, apperrors.Wrap(apperrors.ErrAccountDisabled, msgReactivate)
		}
		return nil, apperrors.Wrap(apperrors.ErrAccountDisabled, msgBlocked)
	}
	if !m.IsActivated() {
		return nil, apperrors.Wrap(apperrors.ErrAccountInactive, msgNotActivated)
	}
	if !s.hasher.Compare(m.PasswordHash, req.Password) {
		return nil, apperrors.Wrap(apperrors.ErrInvalidCredentials, msgBadCredentials)
	}

	token, expiresIn, err := s.tokens.GenerateToken(m)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	s.logger.Info().Int64("memberID", m.ID).Msg("Member logged in")
	return &dto.LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: expiresIn,
		User: dto.MemberSummary{
			ID:       m.ID,
			Email:    m.Email,
			FullName: m.FullName(),
			Role:     m.Role,
		},
	}, nil
}

// deactivate persists the transition and then drops the old photo
func (s *memberServiceImpl) deactivate(ctx context.Context, m *models.Member) error {
	code, err := s.newCode()
	if err != nil {
		return err
	}
	oldPhotoID := m.PhotoID

	m.Deactivate(s.now(), code)
	if err := s.members.Update(ctx, m); err != nil {
		return fmt.Errorf("error deactivating member: %w", err)
	}
	s.removePhoto(ctx, oldPhotoID)
	return nil
}

func (s *memberServiceImpl) removePhoto(ctx context.Context, photoID *int64) {
	if photoID == nil {
		return
	}
	photo, err := s.files.GetByID(ctx, *photoID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrFileNotFound) {
			s.logger.Warn().Err(err).Int64("fileID", *photoID).Msg("Could not load previous photo")
		}
		return
	}
	if err := s.uploads.Delete(ctx, photo); err != nil {
		s.logger.Warn().Err(err).Int64("fileID", photo.ID).Msg("Could not delete previous photo")
	}
}

// DeactivateSelf is refused for staff accounts
func (s *memberServiceImpl) DeactivateSelf(ctx context.Context, actor *models.Member) error {
	if actor == nil {
		return apperrors.ErrUnauthorized
	}
	if actor.IsStaff() {
		return apperrors.NewForbiddenError(msgStaffCannotLeave)
	}
	if err := s.deactivate(ctx, actor); err != nil {
		return err
	}
	s.logger.Info().Int64("memberID", actor.ID).Msg("Member deactivated own account")
	s.sendActivation(actor)
	return nil
}

func (s *memberServiceImpl) getMember(ctx context.Context, id int64) (*models.Member, error) {
	m, err := s.members.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrMemberNotFound) {
			return nil, apperrors.NewResourceNotFoundError(msgMemberNotFound)
		}
		return nil, fmt.Errorf("error getting member: %w", err)
	}
	return m, nil
}

// DeactivateByAdmin deactivates another non-admin account
func (s *memberServiceImpl) DeactivateByAdmin(ctx context.Context, actor *models.Member, memberID int64) error {
	if actor != nil && actor.ID == memberID {
		return apperrors.NewForbiddenError(msgCannotDeactivateMe)
	}
	m, err := s.getMember(ctx, memberID)
	if err != nil {
		return err
	}
	if m.IsAdmin() {
		return apperrors.NewForbiddenError(msgCannotDeactivateAd)
	}
	if err := s.deactivate(ctx, m); err != nil {
		return err
	}
	s.logger.Info().Int64("memberID", m.ID).Msg("Member deactivated by admin")
	return nil
}

// ChangeRole sets a new role, never leaving the organization without an admin
func (s *memberServiceImpl) ChangeRole(ctx context.Context, memberID int64, role models.Role) (*dto.RoleResponse, error) {
	if !role.Valid() {
		return nil, apperrors.NewBadRequestError(msgInvalidRole)
	}
	m, err := s.getMember(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if m.Role == role {
		return nil, apperrors.NewBadRequestError(msgSameRole)
	}

	if m.IsAdmin() {
		admins, err := s.members.CountByRole(ctx, models.RoleAdmin)
		if err != nil {
			return nil, fmt.Errorf("error counting admins: %w", err)
		}
		if admins <= 1 {
			return nil, apperrors.Wrap(apperrors.ErrLastAdmin, msgSoleAdmin)
		}
	}

	m.Role = role
	if err := s.members.Update(ctx, m); err != nil {
		return nil, fmt.Errorf("error updating role: %w", err)
	}
	s.logger.Info().Int64("memberID", m.ID).Str("role", string(role)).Msg("Member role changed")
	return &dto.RoleResponse{UserID: m.ID, Role: m.Role}, nil
}

// SetVisibility shows or hides the member on the public list
func (s *memberServiceImpl) SetVisibility(ctx context.Context, memberID int64, visible bool) (*dto.MemberVisibilityResponse, error) {
	m, err := s.getMember(ctx, memberID)
	if err != nil {
		return nil, err
	}
	m.Visible = visible
	if err := s.members.Update(ctx, m); err != nil {
		return nil, fmt.Errorf("error updating visibility: %w", err)
	}
	return &dto.MemberVisibilityResponse{UserID: m.ID, Visibility: m.Visible}, nil
}

// AssignPosition moves a unique position from its previous holder to the
// member, promoting the member to ADMIN; both rows are written in one
// transaction, the previous holder first.
func (s *memberServiceImpl) AssignPosition(ctx context.Context, memberID int64, position models.Position) (*dto.PositionResponse, error) {
	if !position.Valid() {
		return nil, apperrors.NewBadRequestError(msgInvalidPosition)
	}
	m, err := s.getMember(ctx, memberID)
	if err != nil {
		return nil, err
	}

	var changed []*models.Member
	if position.IsUnique() {
		holder, err := s.members.FindByPosition(ctx, position)
		if err != nil {
			return nil, fmt.Errorf("error finding position holder: %w", err)
		}
		if holder != nil && holder.ID != m.ID {
			holder.Position = models.PositionMember
			changed = append(changed, holder)
		}
		m.Role = models.RoleAdmin
	}
	m.Position = position
	changed = append(changed, m)

	if err := s.members.UpdateMany(ctx, changed...); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, apperrors.Wrap(apperrors.ErrConflict, msgPositionTaken)
		}
		return nil, fmt.Errorf("error assigning position: %w", err)
	}
	s.logger.Info().Int64("memberID", m.ID).Str("position", string(position)).Msg("Member position assigned")
	return &dto.PositionResponse{UserID: m.ID, Position: m.Position, Role: m.Role}, nil
}

// UpdateProfilePicture replaces the member photo with a 512x512-bounded JPEG
func (s *memberServiceImpl) UpdateProfilePicture(ctx context.Context, actor *models.Member, fh *multipart.FileHeader) (*dto.ProfilePictureResponse, error) {
	if actor == nil {
		return nil, apperrors.ErrUnauthorized
	}
	if fh == nil {
		return nil, apperrors.NewBadRequestError(msgNoFile)
	}

	if oldPhotoID := actor.PhotoID; oldPhotoID != nil {
		actor.PhotoID = nil
		if err := s.members.Update(ctx, actor); err != nil {
			return nil, fmt.Errorf("error clearing photo: %w", err)
		}
		s.removePhoto(ctx, oldPhotoID)
	}

	file, err := s.uploads.Upload(ctx, fh, models.CategoryProfilePicture, models.PermissionPublic, actor,
		UploadOptions{MaxWidth: profilePictureSize, MaxHeight: profilePictureSize})
	if err != nil {
		return nil, err
	}

	actor.PhotoID = &file.ID
	actor.Photo = file
	if err := s.members.Update(ctx, actor); err != nil {
		return nil, fmt.Errorf("error saving photo: %w", err)
	}

	url := s.uploads.URLFor(file)
	return &dto.ProfilePictureResponse{
		ID:       actor.ID,
		FullName: actor.FullName(),
		Photo: dto.PhotoData{
			ID:           &file.ID,
			DefaultPhoto: false,
			URL:          &url,
		},
	}, nil
}

// ListVisible returns the public member list
func (s *memberServiceImpl) ListVisible(ctx context.Context) ([]dto.MemberResponse, error) {
	return s.list(ctx, repositories.MemberFilter{VisibleActiveOnly: true}, false)
}

// ListAll returns every member with private fields
func (s *memberServiceImpl) ListAll(ctx context.Context) ([]dto.MemberResponse, error) {
	return s.list(ctx, repositories.MemberFilter{}, true)
}

func (s *memberServiceImpl) list(ctx context.Context, filter repositories.MemberFilter, private bool) ([]dto.MemberResponse, error) {
	members, err := s.members.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing members: %w", err)
	}
	SortByPosition(members)

	result := make([]dto.MemberResponse, 0, len(members))
	for _, m := range members {
		result = append(result, s.toMemberResponse(m, private))
	}
	return result, nil
}

// SortByPosition orders by position priority, then last name
func SortByPosition(members []*models.Member) {
	sort.SliceStable(members, func(i, j int) bool {
		pi, pj := members[i].Position.Priority(), members[j].Position.Priority()
		if pi != pj {
			return pi > pj
		}
		return members[i].LastName < members[j].LastName
	})
}

func (s *memberServiceImpl) toMemberResponse(m *models.Member, private bool) dto.MemberResponse {
	resp := dto.MemberResponse{
		ID:          m.ID,
		FirstName:   m.FirstName,
		LastName:    m.LastName,
		Position:    m.Position,
		Photo:       dto.PhotoData{DefaultPhoto: m.PhotoID == nil},
		Visible:     m.Visible,
		Description: m.Description,
	}
	if m.PhotoID != nil {
		url := s.uploads.URLFor(&models.File{ID: *m.PhotoID})
		resp.Photo.ID = m.PhotoID
		resp.Photo.URL = &url
	}
	if private {
		active := m.IsActive
		resp.Email = m.Email
		resp.Role = m.Role
		resp.IsActive = &active
		if m.DeactivationDate != nil {
			resp.DeactivationDate = m.DeactivationDate.Format(models.DateTimeLayout)
		}
	}
	return resp
}
