package dto

import (
	"github.com/yigit/memberhub/internal/app/models"
)

// RegisterRequest is used for self-service signup and admin creation
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,memberemail" example:"jan.kowalski@example.com"`
	Password  string `json:"password" binding:"required,strongpassword" example:"Haslo1234"`
	FirstName string `json:"firstName" binding:"required" example:"Jan"`
	LastName  string `json:"lastName" binding:"required" example:"Kowalski"`
	Visible   bool   `json:"visible" example:"false"` // admin creation only
}

// ActivateRequest carries the code sent by email
type ActivateRequest struct {
	Email string `json:"email" binding:"required" example:"jan.kowalski@example.com"`
	Code  string `json:"code" binding:"required" example:"9f86d081884c7d659a2feaa0c55ad015"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"jan.kowalski@example.com"`
	Password string `json:"password" binding:"required" example:"Haslo1234"`
}

// MemberSummary is the short member view returned on login
type MemberSummary struct {
	ID       int64       `json:"id" example:"1"`
	Email    string      `json:"email" example:"jan.kowalski@example.com"`
	FullName string      `json:"fullName" example:"Jan Kowalski"`
	Role     models.Role `json:"role" example:"ROLE_USER"`
}

// LoginResponse holds the bearer token and the member summary
type LoginResponse struct {
	Token     string        `json:"token"`
	TokenType string        `json:"tokenType" example:"Bearer"`
	ExpiresIn int           `json:"expiresIn" example:"3600"`
	User      MemberSummary `json:"user"`
}

// ChangeRoleRequest sets a member role
type ChangeRoleRequest struct {
	Role models.Role `json:"role" binding:"required" example:"ROLE_MODERATOR"`
}

// RoleResponse reports the member role after a change
type RoleResponse struct {
	UserID int64       `json:"userId" example:"2"`
	Role   models.Role `json:"role" example:"ROLE_MODERATOR"`
}

// MemberVisibilityRequest shows or hides a member on the public list
type MemberVisibilityRequest struct {
	Visibility *bool `json:"visibility" binding:"required" example:"true"`
}

// MemberVisibilityResponse reports the new visibility
type MemberVisibilityResponse struct {
	UserID     int64 `json:"userId" example:"2"`
	Visibility bool  `json:"visibility" example:"true"`
}

// PositionRequest assigns an organizational position
type PositionRequest struct {
	Position models.Position `json:"position" binding:"required" example:"chairman"`
}

// PositionResponse reports the position and the resulting role
type PositionResponse struct {
	UserID   int64           `json:"userId" example:"2"`
	Position models.Position `json:"position" example:"chairman"`
	Role     models.Role     `json:"role" example:"ROLE_ADMIN"`
}

// PhotoData describes a member photo
type PhotoData struct {
	ID           *int64  `json:"id,omitempty" example:"12"`
	DefaultPhoto bool    `json:"defaultPhoto" example:"false"`
	URL          *string `json:"url,omitempty" example:"/api/file/12/download"`
}

// ProfilePictureResponse is returned after a profile picture upload
type ProfilePictureResponse struct {
	ID       int64     `json:"id" example:"1"`
	FullName string    `json:"fullName" example:"Jan Kowalski"`
	Photo    PhotoData `json:"photo"`
}

// MemberResponse is a member list entry; private fields are set only for
// signed-in listings
type MemberResponse struct {
	ID               int64           `json:"id" example:"1"`
	FirstName        string          `json:"firstName" example:"Jan"`
	LastName         string          `json:"lastName" example:"Kowalski"`
	Position         models.Position `json:"position" example:"member"`
	Photo            PhotoData       `json:"photo"`
	Visible          bool            `json:"visible" example:"true"`
	Description      *string         `json:"description,omitempty"`
	Email            string          `json:"email,omitempty" example:"jan.kowalski@example.com"`
	Role             models.Role     `json:"role,omitempty" example:"ROLE_USER"`
	IsActive         *bool           `json:"isActive,omitempty" example:"true"`
	DeactivationDate string          `json:"deactivationDate,omitempty" example:"2024-05-01 12:00:00"`
}
