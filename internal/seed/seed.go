package seed

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	appModels "github.com/yigit/memberhub/internal/app/models"
	"github.com/yigit/memberhub/internal/pkg/apperrors"
	"github.com/yigit/memberhub/internal/pkg/auth"
)

// AdminAccount is the bootstrap administrator taken from configuration
type AdminAccount struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// MemberStore is the part of the member repository the seed needs
type MemberStore interface {
	CountByRole(ctx context.Context, role appModels.Role) (int, error)
	GetByEmail(ctx context.Context, email string) (*appModels.Member, error)
	Create(ctx context.Context, m *appModels.Member) error
	Update(ctx context.Context, m *appModels.Member) error
}

// EnsureAdmin creates or promotes the configured account when the
// organization has no administrator. It is a no-op without an admin email.
func EnsureAdmin(ctx context.Context, members MemberStore, hasher auth.PasswordHasher, account AdminAccount, lgr zerolog.Logger) error {
	if account.Email == "" {
		lgr.Debug().Msg("No seed admin configured, skipping")
		return nil
	}

	admins, err := members.CountByRole(ctx, appModels.RoleAdmin)
	if err != nil {
		return fmt.Errorf("counting admins: %w", err)
	}
	if admins > 0 {
		lgr.Info().Int("admins", admins).Msg("Admin account already exists, skipping seed")
		return nil
	}

	email := strings.ToLower(strings.TrimSpace(account.Email))
	existing, err := members.GetByEmail(ctx, email)
	switch {
	case err == nil:
		existing.Role = appModels.RoleAdmin
		existing.IsActive = true
		existing.ActivationCode = nil
		existing.DeactivationDate = nil
		if err := members.Update(ctx, existing); err != nil {
			return fmt.Errorf("promoting seed admin: %w", err)
		}
		lgr.Info().Int64("memberID", existing.ID).Msg("Existing account promoted to admin")
		return nil
	case !errors.Is(err, apperrors.ErrMemberNotFound):
		return fmt.Errorf("looking up seed admin: %w", err)
	}

	hash, err := hasher.Hash(account.Password)
	if err != nil {
		return fmt.Errorf("hashing seed admin password: %w", err)
	}

	admin := &appModels.Member{
		Email:        email,
		PasswordHash: hash,
		FirstName:    appModels.NormalizeName(account.FirstName),
		LastName:     appModels.NormalizeName(account.LastName),
		Role:         appModels.RoleAdmin,
		Position:     appModels.PositionMember,
		IsActive:     true,
	}
	if err := members.Create(ctx, admin); err != nil {
		return fmt.Errorf("creating seed admin: %w", err)
	}

	lgr.Info().Int64("memberID", admin.ID).Str("email", email).Msg("Seed admin account created")
	return nil
}
