package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/memberhub/internal/app/models/dto"
	"github.com/yigit/memberhub/internal/pkg/apperrors"
	"github.com/yigit/memberhub/internal/pkg/logger"
)

// errorMapping ties a sentinel to its status, code and fallback message
type errorMapping struct {
	target  error
	status  int
	code    dto.ErrorCode
	message string
}

// Checked in order; the first match wins.
var errorMappings = []errorMapping{
	{apperrors.ErrStorage, http.StatusInternalServerError, dto.ErrorCodeStorageError, "Błąd zapisu danych"},
	{apperrors.ErrBadRequest, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Nieprawidłowe żądanie"},
	{apperrors.ErrValidationFailed, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Błąd walidacji"},
	{apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Nieprawidłowe dane logowania"},
	{apperrors.ErrAccountInactive, http.StatusUnauthorized, dto.ErrorCodeAccountInactive, "Konto nie zostało aktywowane"},
	{apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token wygasł"},
	{apperrors.ErrTokenInvalid, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Nieprawidłowy token"},
	{apperrors.ErrAccountDisabled, http.StatusUnauthorized, dto.ErrorCodeAccountDisabled, "Konto zablokowane"},
	{apperrors.ErrUnauthorized, http.StatusUnauthorized, dto.ErrorCodeUnauthorized, "Wymagane uwierzytelnienie"},
	{apperrors.ErrPermissionDenied, http.StatusForbidden, dto.ErrorCodeForbidden, "Brak uprawnień"},
	{apperrors.ErrResourceNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Nie znaleziono zasobu"},
	{apperrors.ErrMemberNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Nie znaleziono użytkownika"},
	{apperrors.ErrEventNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Wydarzenie nie zostało znalezione"},
	{apperrors.ErrPostNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Post nie został znaleziony"},
	{apperrors.ErrProjectNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Projekt nie został znaleziony"},
	{apperrors.ErrFileNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Plik nie został znaleziony"},
	{apperrors.ErrTechnologyNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Technologia nie została znaleziona"},
	{apperrors.ErrEmailAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Konto z podanym adresem email już istnieje"},
	{apperrors.ErrTechnologyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Technologia o tej nazwie już istnieje"},
	{apperrors.ErrResourceAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Zasób już istnieje"},
	{apperrors.ErrEventPathTaken, http.StatusConflict, dto.ErrorCodeConflict, "Ścieżka wydarzenia jest zajęta"},
	{apperrors.ErrLastAdmin, http.StatusConflict, dto.ErrorCodeConflict, "Nie możesz pozbawić roli jedynego administratora."},
	{apperrors.ErrTechnologyInUse, http.StatusConflict, dto.ErrorCodeConflict, "Nie można usunąć technologii używanej w projektach"},
	{apperrors.ErrConflict, http.StatusConflict, dto.ErrorCodeConflict, "Konflikt danych"},
}

// HandleAPIError handles common API errors and returns appropriate responses
func HandleAPIError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	code := dto.ErrorCodeInternalServer
	message := "Wewnętrzny błąd serwera"

	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			status, code, message = m.status, m.code, m.message
			break
		}
	}
	if msg, ok := apperrors.Message(err); ok {
		message = msg
	}

	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Msg("Request failed")
	}

	c.AbortWithStatusJSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}
