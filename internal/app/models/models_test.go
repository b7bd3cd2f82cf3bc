package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRoleAtLeast(t *testing.T) {
	assert.True(t, RoleAdmin.AtLeast(RoleModerator))
	assert.True(t, RoleModerator.AtLeast(RoleUser))
	assert.True(t, RoleUser.AtLeast(RoleUser))
	assert.False(t, RoleUser.AtLeast(RoleModerator))
	assert.False(t, RoleNone.AtLeast(RoleUser))
	assert.False(t, Role("ROLE_ROOT").AtLeast(RoleNone))
}

func TestPositionRules(t *testing.T) {
	for _, p := range []Position{PositionGuardian, PositionChairman, PositionViceChairman, PositionTreasurer} {
		assert.True(t, p.IsUnique(), p)
	}
	assert.False(t, PositionMember.IsUnique())
	assert.False(t, PositionExMember.IsUnique())
	assert.False(t, Position("president").Valid())
	assert.Greater(t, PositionGuardian.Priority(), PositionChairman.Priority())
	assert.Greater(t, PositionMember.Priority(), PositionExMember.Priority())
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "Jan", NormalizeName("jAN"))
	assert.Equal(t, "Łukasz", NormalizeName("  łUKASZ "))
	assert.Equal(t, "", NormalizeName(""))
}

func TestMemberDeactivate(t *testing.T) {
	desc := "about me"
	photo := int64(7)
	m := &Member{Role: RoleUser, IsActive: true, Visible: true, Description: &desc, PhotoID: &photo}
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	m.Deactivate(now, "abc")

	assert.False(t, m.IsActive)
	assert.Equal(t, RoleNone, m.Role)
	assert.False(t, m.Visible)
	assert.Nil(t, m.Description)
	assert.Nil(t, m.PhotoID)
	assert.Equal(t, "abc", *m.ActivationCode)
	assert.Equal(t, now, *m.DeactivationDate)
	assert.False(t, m.IsActivated())

	m.Activate()
	assert.True(t, m.IsActivated())
	assert.Equal(t, RoleUser, m.Role)
	assert.Nil(t, m.ActivationCode)
	assert.Nil(t, m.DeactivationDate)
}

func TestGenerateEventPath(t *testing.T) {
	assert.Equal(t, "walne-zebranie-2024", GenerateEventPath("Walne Zebranie 2024"))
	assert.Equal(t, GenerateEventPath("Walne Zebranie 2024"), GenerateEventPath("Walne Zebranie 2024"))
	assert.Equal(t, "zazolc-gesla-jazn", GenerateEventPath("Zażółć gęślą jaźń"))
}

func TestEventSnapshot(t *testing.T) {
	e := &Event{Title: "A", Content: "B", EventDate: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)}
	snap := e.Snapshot()
	assert.Equal(t, "A", snap["title"])
	assert.Equal(t, "2024-01-02 03:04:05", snap["eventDate"])
}
