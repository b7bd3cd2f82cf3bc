// Package auth holds the authorization policy: pure predicates over an actor
// (nil for anonymous requests) and the entity being acted on.
package auth

import "github.com/yigit/memberhub/internal/app/models"

// CanEditEvent allows staff always, and the author only while the event is
// still hidden.
func CanEditEvent(event *models.Event, actor *models.Member) bool {
	if actor == nil || event == nil {
		return false
	}
	if actor.IsStaff() {
		return true
	}
	return event.AuthorID == actor.ID && !event.Visible
}

// CanEditPost allows the author or staff regardless of visibility.
func CanEditPost(post *models.Post, actor *models.Member) bool {
	if actor == nil || post == nil {
		return false
	}
	return actor.IsStaff() || post.AuthorID == actor.ID
}

// CanEditProject allows staff only.
func CanEditProject(actor *models.Member) bool {
	return actor != nil && actor.IsStaff()
}

// CanDelete is shared by posts, events and projects.
func CanDelete(actor *models.Member) bool {
	return actor != nil && actor.IsStaff()
}

// CanChangeVisibility is admin only.
func CanChangeVisibility(actor *models.Member) bool {
	return actor != nil && actor.IsAdmin()
}

// KeepsVisibilityOnEdit reports whether an edit by actor leaves the visible
// flag untouched; any other editor sends content back for review.
func KeepsVisibilityOnEdit(actor *models.Member) bool {
	return actor != nil && actor.IsAdmin()
}

// CanAccessFile decides download access from the file permission tier.
// Unknown tiers are denied.
func CanAccessFile(file *models.File, actor *models.Member) bool {
	if file == nil {
		return false
	}
	switch file.Permissions {
	case models.PermissionPublic:
		return true
	case models.PermissionMembersOnly:
		return actor != nil && actor.IsActive && actor.Role != models.RoleNone
	case models.PermissionModeratorsOnly:
		return actor != nil && actor.IsStaff()
	case models.PermissionAdminsOnly:
		return actor != nil && actor.IsAdmin()
	default:
		return false
	}
}

// CanDeleteGeneralFile allows admins to delete any general file and other
// staff only their own uploads.
func CanDeleteGeneralFile(file *models.File, actor *models.Member) bool {
	if actor == nil || file == nil {
		return false
	}
	if actor.IsAdmin() {
		return true
	}
	return file.UploadedBy != nil && *file.UploadedBy == actor.ID
}
