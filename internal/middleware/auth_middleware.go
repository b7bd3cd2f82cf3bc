package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/memberhub/internal/app/models"
	"github.com/yigit/memberhub/internal/app/models/dto"
	"github.com/yigit/memberhub/internal/pkg/apperrors"
	"github.com/yigit/memberhub/internal/pkg/auth"
)

// Context keys set by the auth middleware
const (
	ContextMember   = "member"
	ContextMemberID = "memberID"
	ContextRole     = "role"
)

// TokenValidator parses bearer tokens
type TokenValidator interface {
	ValidateToken(tokenString string) (*auth.Claims, error)
}

// MemberLoader loads the member a token belongs to
type MemberLoader interface {
	GetByID(ctx context.Context, id int64) (*models.Member, error)
}

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	tokens  TokenValidator
	members MemberLoader
	logger  zerolog.Logger
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(tokens TokenValidator, members MemberLoader, logger zerolog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		tokens:  tokens,
		members: members,
		logger:  logger,
	}
}

func abortUnauthorized(c *gin.Context, code dto.ErrorCode, details string) {
	errorDetail := dto.NewErrorDetail(code, "Wymagane uwierzytelnienie").WithDetails(details)
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
}

// rawToken finds the token in the Authorization header, falling back to the
// "token" query parameter used by WebSocket clients and Swagger UI.
func rawToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		header = c.Query("token")
	}
	if header == "" {
		return "", false
	}
	header = strings.Trim(strings.TrimSpace(header), "\"'")

	token, err := auth.ExtractBearerToken(header)
	if err != nil || token == "" {
		return "", true
	}
	return token, true
}

// authenticate resolves the member for the request token. The member is
// reloaded so role changes and deactivations apply immediately.
func (m *AuthMiddleware) authenticate(c *gin.Context, token string) (*models.Member, dto.ErrorCode, string) {
	claims, err := m.tokens.ValidateToken(token)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrExpiredToken):
			return nil, dto.ErrorCodeExpiredToken, "Token wygasł"
		case errors.Is(err, auth.ErrInvalidFormat):
			return nil, dto.ErrorCodeInvalidToken, "Nieprawidłowy format tokenu"
		default:
			return nil, dto.ErrorCodeInvalidToken, "Nieprawidłowy token"
		}
	}

	member, err := m.members.GetByID(c.Request.Context(), claims.MemberID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrMemberNotFound) {
			m.logger.Error().Err(err).Int64("memberID", claims.MemberID).Msg("Failed to load token member")
		}
		return nil, dto.ErrorCodeInvalidToken, "Nieprawidłowy token"
	}
	if !member.IsActivated() {
		return nil, dto.ErrorCodeAccountInactive, "Konto nie jest aktywne"
	}
	return member, "", ""
}

func setMember(c *gin.Context, member *models.Member) {
	c.Set(ContextMember, member)
	c.Set(ContextMemberID, member.ID)
	c.Set(ContextRole, member.Role)
}

// JWTAuth middleware for JWT token validation
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, present := rawToken(c)
		if !present {
			abortUnauthorized(c, dto.ErrorCodeUnauthorized, "Brak nagłówka Authorization")
			return
		}
		if token == "" {
			abortUnauthorized(c, dto.ErrorCodeInvalidToken, "Nieprawidłowy format tokenu")
			return
		}

		member, code, details := m.authenticate(c, token)
		if member == nil {
			abortUnauthorized(c, code, details)
			return
		}

		setMember(c, member)
		c.Next()
	}
}

// OptionalAuth sets the member when a valid token is sent and otherwise lets
// the request through anonymously.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, present := rawToken(c); present && token != "" {
			if member, _, _ := m.authenticate(c, token); member != nil {
				setMember(c, member)
			}
		}
		c.Next()
	}
}

// RoleRequired admits members whose role is at least requiredRole
func (m *AuthMiddleware) RoleRequired(requiredRole models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		member := CurrentMember(c)
		if member == nil {
			abortUnauthorized(c, dto.ErrorCodeUnauthorized, "Brak danych użytkownika")
			return
		}

		if !member.Role.AtLeast(requiredRole) {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Brak uprawnień").
				WithDetails("Wymagana rola: " + string(requiredRole))
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Next()
	}
}

// CurrentMember returns the authenticated member, or nil for anonymous requests
func CurrentMember(c *gin.Context) *models.Member {
	v, exists := c.Get(ContextMember)
	if !exists {
		return nil
	}
	member, _ := v.(*models.Member)
	return member
}
