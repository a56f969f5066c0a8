package validator

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required":  "{field} is required",
		"gte":       "{field} must be greater than or equal to {param}",
		"lte":       "{field} must be less than or equal to {param}",
		"oneof":     "{field} must be one of {param}",
		"max":       "{field} must be at most {param} characters",
		"min":       "{field} must be at least {param} characters",
		"email":     "{field} must be a valid email address",
		"url":       "{field} must be a valid URL",
		"timezone":  "{field} must be a valid IANA timezone",
		"mimetypes": "{field} must be one of {param}",
	}

	passwordRules = []struct {
		pattern *regexp.Regexp
		message string
	}{
		{regexp.MustCompile(`[0-9]`), "Password must contain at least one number."},
		{regexp.MustCompile(`[a-z]`), "Password must contain at least one lowercase letter."},
		{regexp.MustCompile(`[A-Z]`), "Password must contain at least one uppercase letter."},
		{regexp.MustCompile(`[^a-zA-Z0-9]`), "Password must contain at least one special character."},
	}
)

const (
	passwordMinLength = 8
	anonymousField    = "value"
)

// passwordMessage returns the first rule the password breaks, or "" when it is acceptable.
func passwordMessage(password string) string {
	if utf8.RuneCountInString(password) < passwordMinLength {
		return "Password must be at least 8 characters."
	}

	for _, rule := range passwordRules {
		if !rule.pattern.MatchString(password) {
			return rule.message
		}
	}

	return ""
}

// message describes the first failed rule. Tags without a template fall back to
// the validator's own text.
func message(err error) string {
	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	for _, valErr := range valErrors {
		if valErr.Tag() == "password" {
			if str, ok := valErr.Value().(string); ok {
				return passwordMessage(str)
			}
		}

		template, ok := messages[valErr.Tag()]
		if !ok {
			continue
		}

		field := valErr.Field()
		if field == "" {
			field = anonymousField
		}

		return strings.NewReplacer("{field}", field, "{param}", valErr.Param()).Replace(template)
	}

	return valErrors.Error()
}
