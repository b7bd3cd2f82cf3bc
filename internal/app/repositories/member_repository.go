package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/memberhub/internal/app/models"
	"github.com/yigit/memberhub/internal/pkg/apperrors"
	"github.com/yigit/memberhub/internal/pkg/dberrors"
	"github.com/yigit/memberhub/internal/pkg/logger"
)

const (
	membersEmailKey    = "members_email_key"
	membersPositionKey = "members_unique_position_idx"
)

// memberWriteErr maps unique violations on members to domain errors; other
// errors yield nil.
func memberWriteErr(err error) error {
	switch {
	case dberrors.IsDuplicateConstraintError(err, membersEmailKey):
		return apperrors.ErrEmailAlreadyExists
	case dberrors.IsDuplicateConstraintError(err, membersPositionKey):
		return apperrors.ErrConflict
	}
	return nil
}

// MemberFilter narrows member listings
type MemberFilter struct {
	VisibleActiveOnly bool
}

// MemberRepository handles database operations for members
type MemberRepository struct {
	DB *pgxpool.Pool
}

// NewMemberRepository creates a new MemberRepository
func NewMemberRepository(db *pgxpool.Pool) *MemberRepository {
	return &MemberRepository{DB: db}
}

var memberColumns = []string{
	"id", "first_name", "last_name", "email", "password_hash", "role", "position",
	"is_active", "visible", "activation_code", "password_reset_code", "description",
	"photo_id", "deactivation_date", "created_at",
}

func scanMember(row pgx.Row) (*models.Member, error) {
	var m models.Member
	err := row.Scan(
		&m.ID, &m.FirstName, &m.LastName, &m.Email, &m.PasswordHash, &m.Role, &m.Position,
		&m.IsActive, &m.Visible, &m.ActivationCode, &m.PasswordResetCode, &m.Description,
		&m.PhotoID, &m.DeactivationDate, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, err
	}
	return &m, nil
}

// Create inserts a member and fills in its ID and creation time
func (r *MemberRepository) Create(ctx context.Context, m *models.Member) error {
	sql, args, err := psql.Insert("members").
		Columns("first_name", "last_name", "email", "password_hash", "role", "position",
			"is_active", "visible", "activation_code", "description").
		Values(m.FirstName, m.LastName, m.Email, m.PasswordHash, m.Role, m.Position,
			m.IsActive, m.Visible, m.ActivationCode, m.Description).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create member query: %w", err)
	}

	if err := r.DB.QueryRow(ctx, sql, args...).Scan(&m.ID, &m.CreatedAt); err != nil {
		if mapped := memberWriteErr(err); mapped != nil {
			return mapped
		}
		logger.Error().Err(err).Str("email", m.Email).Msg("Error creating member")
		return fmt.Errorf("failed to create member: %w", err)
	}
	return nil
}

func (r *MemberRepository) getOne(ctx context.Context, where squirrel.Sqlizer) (*models.Member, error) {
	sql, args, err := psql.Select(memberColumns...).From("members").Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build member query: %w", err)
	}
	return scanMember(r.DB.QueryRow(ctx, sql, args...))
}

// GetByID retrieves a member by ID
func (r *MemberRepository) GetByID(ctx context.Context, id int64) (*models.Member, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByEmail retrieves a member by its (lower-case) email
func (r *MemberRepository) GetByEmail(ctx context.Context, email string) (*models.Member, error) {
	return r.getOne(ctx, squirrel.Eq{"email": email})
}

// FindByPosition returns the holder of a position, or nil when nobody holds it
func (r *MemberRepository) FindByPosition(ctx context.Context, position models.Position) (*models.Member, error) {
	m, err := r.getOne(ctx, squirrel.Eq{"position": position})
	if errors.Is(err, apperrors.ErrMemberNotFound) {
		return nil, nil
	}
	return m, err
}

// CountByRole counts members holding the role
func (r *MemberRepository) CountByRole(ctx context.Context, role models.Role) (int, error) {
	sql, args, err := psql.Select("COUNT(*)").From("members").Where(squirrel.Eq{"role": role}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count query: %w", err)
	}
	var count int
	if err := r.DB.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count members: %w", err)
	}
	return count, nil
}

// List returns members in id order; callers apply the position ranking
func (r *MemberRepository) List(ctx context.Context, filter MemberFilter) ([]*models.Member, error) {
	q := psql.Select(memberColumns...).From("members").OrderBy("id")
	if filter.VisibleActiveOnly {
		q = q.Where(squirrel.Eq{"visible": true, "is_active": true})
	}
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list members query: %w", err)
	}

	rows, err := r.DB.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []*models.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *MemberRepository) updateQuery(m *models.Member) (string, []interface{}, error) {
	return psql.Update("members").
		Set("first_name", m.FirstName).
		Set("last_name", m.LastName).
		Set("email", m.Email).
		Set("password_hash", m.PasswordHash).
		Set("role", m.Role).
		Set("position", m.Position).
		Set("is_active", m.IsActive).
		Set("visible", m.Visible).
		Set("activation_code", m.ActivationCode).
		Set("password_reset_code", m.PasswordResetCode).
		Set("description", m.Description).
		Set("photo_id", m.PhotoID).
		Set("deactivation_date", m.DeactivationDate).
		Where(squirrel.Eq{"id": m.ID}).
		ToSql()
}

// Update persists every mutable column of the member
func (r *MemberRepository) Update(ctx context.Context, m *models.Member) error {
	return r.UpdateMany(ctx, m)
}

// UpdateMany persists the members in order inside one transaction. Order
// matters when a singleton position moves between members.
func (r *MemberRepository) UpdateMany(ctx context.Context, members ...*models.Member) error {
	return withTransaction(ctx, r.DB, func(ctx context.Context, tx pgx.Tx) error {
		for _, m := range members {
			sql, args, err := r.updateQuery(m)
			if err != nil {
				return fmt.Errorf("failed to build update member query: %w", err)
			}
			tag, err := tx.Exec(ctx, sql, args...)
			if err != nil {
				if mapped := memberWriteErr(err); mapped != nil {
					return mapped
				}
				logger.Error().Err(err).Int64("memberID", m.ID).Msg("Error updating member")
				return fmt.Errorf("failed to update member %d: %w", m.ID, err)
			}
			if tag.RowsAffected() == 0 {
				return apperrors.ErrMemberNotFound
			}
		}
		return nil
	})
}
