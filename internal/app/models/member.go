package models

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// Member defines the member model based on the 'members' table
type Member struct {
	ID                int64      `json:"id" db:"id"`
	FirstName         string     `json:"firstName" db:"first_name"`
	LastName          string     `json:"lastName" db:"last_name"`
	Email             string     `json:"email" db:"email"`
	PasswordHash      string     `json:"-" db:"password_hash"`
	Role              Role       `json:"role" db:"role"`
	Position          Position   `json:"position" db:"position"`
	IsActive          bool       `json:"isActive" db:"is_active"`
	Visible           bool       `json:"visible" db:"visible"`
	ActivationCode    *string    `json:"-" db:"activation_code"`
	PasswordResetCode *string    `json:"-" db:"password_reset_code"`
	Description       *string    `json:"description,omitempty" db:"description"`
	PhotoID           *int64     `json:"photoId,omitempty" db:"photo_id"`
	DeactivationDate  *time.Time `json:"deactivationDate,omitempty" db:"deactivation_date"`
	CreatedAt         time.Time  `json:"createdAt" db:"created_at"`

	Photo *File `json:"-"` // Relation, no db tag
}

// FullName returns "First Last"
func (m *Member) FullName() string {
	return strings.TrimSpace(m.FirstName + " " + m.LastName)
}

// IsActivated reports whether the member may log in and counts as a member
// for members_only access.
func (m *Member) IsActivated() bool {
	return m.IsActive && m.Role != RoleNone
}

func (m *Member) IsAdmin() bool {
	return m.Role == RoleAdmin
}

func (m *Member) IsModerator() bool {
	return m.Role == RoleModerator
}

// IsStaff is true for admins and moderators.
func (m *Member) IsStaff() bool {
	return m.IsAdmin() || m.IsModerator()
}

// Deactivate applies the deactivation transition. The caller persists the
// member and removes the previous photo file.
func (m *Member) Deactivate(now time.Time, activationCode string) {
	m.IsActive = false
	m.DeactivationDate = &now
	m.Role = RoleNone
	m.Visible = false
	m.Description = nil
	m.PhotoID = nil
	m.Photo = nil
	m.ActivationCode = &activationCode
}

// Activate applies the activation transition.
func (m *Member) Activate() {
	m.IsActive = true
	if m.Role == RoleNone {
		m.Role = RoleUser
	}
	m.ActivationCode = nil
	m.DeactivationDate = nil
}

// NormalizeName lower-cases the name and upper-cases its first letter.
func NormalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}
