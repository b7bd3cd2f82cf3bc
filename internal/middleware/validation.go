package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/yigit/memberhub/internal/app/models/dto"
	"github.com/yigit/memberhub/internal/pkg/validation"
)

// RegisterValidators adds the custom rules to gin's binding validator
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected binding validator engine")
	}
	return validation.RegisterRules(v)
}

// BindJSON binds the request body into obj and answers 400 on failure
func BindJSON(c *gin.Context, obj interface{}, message string) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message)
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			if msg, ok := ruleMessage(verrs); ok {
				errorDetail = dto.NewErrorDetail(dto.ErrorCodeValidationFailed, msg)
			}
			errorDetail = errorDetail.WithField(verrs[0].Field()).WithDetails(formatValidationErrors(verrs))
		} else {
			errorDetail = errorDetail.WithDetails(err.Error())
		}
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return false
	}
	return true
}

// ruleMessage returns the custom rule message for the first failure, unless a
// required field is missing.
func ruleMessage(verrs validator.ValidationErrors) (string, bool) {
	for _, e := range verrs {
		if e.Tag() == "required" {
			return "", false
		}
	}
	msg, ok := validation.RuleMessages[verrs[0].Tag()]
	return msg, ok
}

func formatValidationErrors(verrs validator.ValidationErrors) []string {
	out := make([]string, 0, len(verrs))
	for _, e := range verrs {
		out = append(out, formatValidationError(e))
	}
	return out
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "email", "memberemail":
		return e.Field() + " must be a valid email address"
	case "strongpassword":
		return e.Field() + " must have 8 characters, an uppercase letter and a digit"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
