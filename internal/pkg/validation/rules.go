package validation

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Validation rule patterns
var (
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`

	PasswordMinLength = 8

	DateLayout = "2006-01-02"
)

// Messages shown when a custom rule rejects a field
const (
	MsgInvalidEmail = "Niepoprawny format adresu email"
	MsgWeakPassword = "Hasło musi składać się z conajmniej 8 znaków, posiadać jedną wielką litere, oraz 1 numer"
)

// RuleMessages maps custom rule tags to their user-facing message.
var RuleMessages = map[string]string{
	"memberemail":    MsgInvalidEmail,
	"strongpassword": MsgWeakPassword,
}

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
}

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsValidEmail expects an already normalized address.
func IsValidEmail(email string) bool {
	return CompiledPatterns.Email.MatchString(email)
}

// IsStrongPassword requires the minimum length, an uppercase letter and a digit.
func IsStrongPassword(password string) bool {
	if len(password) < PasswordMinLength {
		return false
	}
	var upper, digit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return upper && digit
}

// RegisterRules adds the custom tags used in request DTOs to v.
//
//	strongpassword  see IsStrongPassword
//	memberemail     normalized address matching EmailPattern
func RegisterRules(v *validator.Validate) error {
	if err := v.RegisterValidation("strongpassword", func(fl validator.FieldLevel) bool {
		return IsStrongPassword(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.RegisterValidation("memberemail", func(fl validator.FieldLevel) bool {
		return IsValidEmail(NormalizeEmail(fl.Field().String()))
	})
}
