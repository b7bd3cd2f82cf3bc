package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yigit/memberhub/internal/app/models"
)

func member(id int64, role models.Role) *models.Member {
	return &models.Member{ID: id, Role: role, IsActive: role != models.RoleNone}
}

func TestCanEditEvent(t *testing.T) {
	author := member(1, models.RoleUser)
	other := member(2, models.RoleUser)
	hidden := &models.Event{AuthorID: 1}
	visible := &models.Event{AuthorID: 1, Visible: true}

	assert.True(t, CanEditEvent(hidden, author))
	assert.False(t, CanEditEvent(visible, author), "author loses edit rights once published")
	assert.False(t, CanEditEvent(hidden, other))
	assert.True(t, CanEditEvent(visible, member(3, models.RoleModerator)))
	assert.True(t, CanEditEvent(visible, member(4, models.RoleAdmin)))
	assert.False(t, CanEditEvent(hidden, nil))

	byAdmin := &models.Event{AuthorID: 4, Visible: true}
	assert.True(t, CanEditEvent(byAdmin, member(3, models.RoleModerator)), "moderators edit events regardless of author")
}

func TestCanEditPost(t *testing.T) {
	author := member(1, models.RoleUser)
	visible := &models.Post{AuthorID: 1, Visible: true}

	assert.True(t, CanEditPost(visible, author), "post authors keep edit rights after publication")
	assert.False(t, CanEditPost(visible, member(2, models.RoleUser)))
	assert.True(t, CanEditPost(visible, member(3, models.RoleModerator)))
	assert.False(t, CanEditPost(visible, nil))
}

func TestStaffPredicates(t *testing.T) {
	user := member(1, models.RoleUser)
	mod := member(2, models.RoleModerator)
	admin := member(3, models.RoleAdmin)

	assert.False(t, CanEditProject(user))
	assert.True(t, CanEditProject(mod))

	assert.False(t, CanDelete(user))
	assert.True(t, CanDelete(mod))
	assert.True(t, CanDelete(admin))

	assert.False(t, CanChangeVisibility(mod))
	assert.True(t, CanChangeVisibility(admin))

	assert.False(t, KeepsVisibilityOnEdit(mod))
	assert.True(t, KeepsVisibilityOnEdit(admin))
}

func TestCanAccessFile(t *testing.T) {
	inactive := &models.Member{ID: 9, Role: models.RoleUser, IsActive: false}
	none := &models.Member{ID: 8, Role: models.RoleNone, IsActive: true}
	actors := map[string]*models.Member{
		"anonymous": nil,
		"none":      none,
		"inactive":  inactive,
		"user":      member(1, models.RoleUser),
		"moderator": member(2, models.RoleModerator),
		"admin":     member(3, models.RoleAdmin),
	}

	expect := map[models.FilePermission]map[string]bool{
		models.PermissionPublic: {
			"anonymous": true, "none": true, "inactive": true, "user": true, "moderator": true, "admin": true,
		},
		models.PermissionMembersOnly: {
			"anonymous": false, "none": false, "inactive": false, "user": true, "moderator": true, "admin": true,
		},
		models.PermissionModeratorsOnly: {
			"anonymous": false, "none": false, "inactive": false, "user": false, "moderator": true, "admin": true,
		},
		models.PermissionAdminsOnly: {
			"anonymous": false, "none": false, "inactive": false, "user": false, "moderator": false, "admin": true,
		},
		models.FilePermission("secret"): {
			"anonymous": false, "none": false, "inactive": false, "user": false, "moderator": false, "admin": false,
		},
	}

	for perm, byActor := range expect {
		file := &models.File{Permissions: perm}
		for name, want := range byActor {
			assert.Equal(t, want, CanAccessFile(file, actors[name]), "%s / %s", perm, name)
		}
	}
}

func TestCanDeleteGeneralFile(t *testing.T) {
	uploader := int64(2)
	file := &models.File{Category: models.CategoryGeneral, UploadedBy: &uploader}

	assert.True(t, CanDeleteGeneralFile(file, member(2, models.RoleModerator)))
	assert.False(t, CanDeleteGeneralFile(file, member(5, models.RoleModerator)))
	assert.True(t, CanDeleteGeneralFile(file, member(6, models.RoleAdmin)))
	assert.False(t, CanDeleteGeneralFile(&models.File{}, member(5, models.RoleModerator)))
}
