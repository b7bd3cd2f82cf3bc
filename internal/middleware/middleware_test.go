package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/memberhub/internal/app/models"
	"github.com/yigit/memberhub/internal/app/models/dto"
	"github.com/yigit/memberhub/internal/pkg/apperrors"
	"github.com/yigit/memberhub/internal/pkg/auth"
	"github.com/yigit/memberhub/internal/pkg/validation"
)

type fakeTokens map[string]*auth.Claims

func (f fakeTokens) ValidateToken(token string) (*auth.Claims, error) {
	switch token {
	case "expired":
		return nil, auth.ErrExpiredToken
	case "garbage":
		return nil, auth.ErrInvalidFormat
	}
	if c, ok := f[token]; ok {
		return c, nil
	}
	return nil, auth.ErrInvalidToken
}

type fakeMembers map[int64]*models.Member

func (f fakeMembers) GetByID(_ context.Context, id int64) (*models.Member, error) {
	if m, ok := f[id]; ok {
		return m, nil
	}
	return nil, apperrors.ErrMemberNotFound
}

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuth() *AuthMiddleware {
	tokens := fakeTokens{
		"user":      {MemberID: 1},
		"moderator": {MemberID: 2},
		"admin":     {MemberID: 3},
		"inactive":  {MemberID: 4},
		"ghost":     {MemberID: 99},
		"aa.bb.cc":  {MemberID: 3},
	}
	members := fakeMembers{
		1: {ID: 1, Role: models.RoleUser, IsActive: true},
		2: {ID: 2, Role: models.RoleModerator, IsActive: true},
		3: {ID: 3, Role: models.RoleAdmin, IsActive: true},
		4: {ID: 4, Role: models.RoleNone, IsActive: false},
	}
	return NewAuthMiddleware(tokens, members, zerolog.Nop())
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) dto.APIResponse {
	t.Helper()
	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func serve(r *gin.Engine, method, target, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestJWTAuth(t *testing.T) {
	m := newAuth()
	r := gin.New()
	r.GET("/me", m.JWTAuth(), func(c *gin.Context) {
		c.String(http.StatusOK, "%d", CurrentMember(c).ID)
	})

	tests := []struct {
		name   string
		header string
		target string
		status int
		code   dto.ErrorCode
	}{
		{"bearer header", "Bearer user", "/me", http.StatusOK, ""},
		{"raw jwt in query", "", "/me?token=aa.bb.cc", http.StatusOK, ""},
		{"bearer in query", "", "/me?token=Bearer%20admin", http.StatusOK, ""},
		{"bare word in query", "", "/me?token=admin", http.StatusUnauthorized, dto.ErrorCodeInvalidToken},
		{"missing header", "", "/me", http.StatusUnauthorized, dto.ErrorCodeUnauthorized},
		{"bad scheme", "Basic abc", "/me", http.StatusUnauthorized, dto.ErrorCodeInvalidToken},
		{"expired", "Bearer expired", "/me", http.StatusUnauthorized, dto.ErrorCodeExpiredToken},
		{"malformed", "Bearer garbage", "/me", http.StatusUnauthorized, dto.ErrorCodeInvalidToken},
		{"deleted member", "Bearer ghost", "/me", http.StatusUnauthorized, dto.ErrorCodeInvalidToken},
		{"inactive member", "Bearer inactive", "/me", http.StatusUnauthorized, dto.ErrorCodeAccountInactive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(r, http.MethodGet, tt.target, tt.header)
			assert.Equal(t, tt.status, rec.Code)
			if tt.code != "" {
				resp := decode(t, rec)
				assert.False(t, resp.Success)
				assert.NotEmpty(t, resp.Message)
				require.NotNil(t, resp.Error)
				assert.Equal(t, tt.code, resp.Error.Code)
			}
		})
	}
}

func TestRoleRequired_Hierarchical(t *testing.T) {
	m := newAuth()
	r := gin.New()
	r.GET("/mod", m.JWTAuth(), m.RoleRequired(models.RoleModerator), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	assert.Equal(t, http.StatusForbidden, serve(r, http.MethodGet, "/mod", "Bearer user").Code)
	assert.Equal(t, http.StatusNoContent, serve(r, http.MethodGet, "/mod", "Bearer moderator").Code)
	assert.Equal(t, http.StatusNoContent, serve(r, http.MethodGet, "/mod", "Bearer admin").Code)
}

func TestOptionalAuth(t *testing.T) {
	m := newAuth()
	r := gin.New()
	r.GET("/file", m.OptionalAuth(), func(c *gin.Context) {
		if member := CurrentMember(c); member != nil {
			c.String(http.StatusOK, "member %d", member.ID)
			return
		}
		c.String(http.StatusOK, "anonymous")
	})

	assert.Equal(t, "anonymous", serve(r, http.MethodGet, "/file", "").Body.String())
	assert.Equal(t, "anonymous", serve(r, http.MethodGet, "/file", "Bearer expired").Body.String())
	assert.Equal(t, "anonymous", serve(r, http.MethodGet, "/file", "Bearer inactive").Body.String())
	assert.Equal(t, "member 2", serve(r, http.MethodGet, "/file", "Bearer moderator").Body.String())
}

func TestHandleAPIError_Mapping(t *testing.T) {
	tests := []struct {
		err     error
		status  int
		message string
	}{
		{apperrors.NewBadRequestError("Brak wymaganych danych"), http.StatusBadRequest, "Brak wymaganych danych"},
		{apperrors.NewUnauthorizedError("Konto nie zostało aktywowane"), http.StatusUnauthorized, "Konto nie zostało aktywowane"},
		{apperrors.Wrap(apperrors.ErrInvalidCredentials, "Nieprawidłowe dane logowania"), http.StatusUnauthorized, "Nieprawidłowe dane logowania"},
		{apperrors.Wrap(apperrors.ErrAccountDisabled, "Konto zablokowane permanentnie"), http.StatusUnauthorized, "Konto zablokowane permanentnie"},
		{apperrors.Wrap(apperrors.ErrAccountDisabled, "Aktywuj konto ponownie"), http.StatusUnauthorized, "Aktywuj konto ponownie"},
		{apperrors.NewForbiddenError("Brak uprawnień"), http.StatusForbidden, "Brak uprawnień"},
		{apperrors.Wrap(apperrors.ErrEventNotFound, "Wydarzenie nie zostało znalezione"), http.StatusNotFound, "Wydarzenie nie zostało znalezione"},
		{apperrors.ErrFileNotFound, http.StatusNotFound, "Plik nie został znaleziony"},
		{fmt.Errorf("lookup: %w", apperrors.ErrMemberNotFound), http.StatusNotFound, "Nie znaleziono użytkownika"},
		{apperrors.Wrap(apperrors.ErrLastAdmin, "Nie możesz pozbawić roli jedynego administratora."), http.StatusConflict, "Nie możesz pozbawić roli jedynego administratora."},
		{apperrors.Wrap(apperrors.ErrTechnologyInUse, "Nie można usunąć technologii używanej w projektach"), http.StatusConflict, "Nie można usunąć technologii używanej w projektach"},
		{apperrors.ErrEmailAlreadyExists, http.StatusConflict, "Konto z podanym adresem email już istnieje"},
		{apperrors.NewStorageError("Nie udało się zapisać pliku", errors.New("disk full")), http.StatusInternalServerError, "Nie udało się zapisać pliku"},
		{errors.New("boom"), http.StatusInternalServerError, "Wewnętrzny błąd serwera"},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			r := gin.New()
			r.GET("/", func(c *gin.Context) { HandleAPIError(c, tt.err) })

			rec := serve(r, http.MethodGet, "/", "")
			assert.Equal(t, tt.status, rec.Code)
			resp := decode(t, rec)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.message, resp.Message)
		})
	}
}

type signupBody struct {
	Email    string `json:"email" binding:"required,memberemail"`
	Password string `json:"password" binding:"required,strongpassword"`
}

func TestBindJSON_CustomRules(t *testing.T) {
	require.NoError(t, RegisterValidators())

	r := gin.New()
	r.POST("/", func(c *gin.Context) {
		var body signupBody
		if !BindJSON(c, &body, "Brak wymaganych danych") {
			return
		}
		c.Status(http.StatusNoContent)
	})

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusNoContent, post(`{"email":"jan@kolo.pl","password":"Haslo1234"}`).Code)

	rec := post(`{"email":"jan@kolo.pl","password":"haslo"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decode(t, rec)
	assert.Equal(t, validation.MsgWeakPassword, resp.Message)
	assert.Equal(t, "Password", resp.Error.Field)

	rec = post(`{"email":"nie-email","password":"Haslo1234"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, validation.MsgInvalidEmail, decode(t, rec).Message)

	rec = post(`{"email":"nie-email"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Brak wymaganych danych", decode(t, rec).Message)

	assert.Equal(t, http.StatusBadRequest, post(`{not json`).Code)
}

func TestRequestLogger_LevelsByStatus(t *testing.T) {
	var buf strings.Builder
	lgr := zerolog.New(&buf)

	r := gin.New()
	r.Use(RequestLogger(lgr))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	serve(r, http.MethodGet, "/ok?x=1", "")
	serve(r, http.MethodGet, "/missing", "")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"level":"info"`)
	assert.Contains(t, lines[0], `"path":"/ok?x=1"`)
	assert.Contains(t, lines[1], `"level":"warn"`)
	assert.Contains(t, lines[1], `"status":404`)
}
