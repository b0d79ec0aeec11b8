package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var messages = map[string]string{
	"required":         "{field} is required",
	"required_without": "{field} is required",
	"gte":              "{field} must be greater than or equal to {param}",
	"lte":              "{field} must be less than or equal to {param}",
	"min":              "{field} must be greater than or equal to {param}",
	"max":              "{field} must be less than or equal to {param}",
	"oneof":            "{field} must be one of {param}",
	"email":            "{field} must be a valid email address",
	"uuid":             "{field} must be a valid UUID",
	"date":             "{field} must be formatted as YYYY-MM-DD",
	"clock":            "{field} must be formatted as HH:MM or RFC3339",
}

// message renders the first validation error with a known template. Errors without a
// template fall back to the validator's own text.
func message(err error) string {
	var fieldErrors val.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err.Error()
	}

	for _, fieldErr := range fieldErrors {
		template, ok := messages[fieldErr.Tag()]
		if !ok {
			continue
		}

		return strings.NewReplacer("{field}", fieldErr.Field(), "{param}", fieldErr.Param()).Replace(template)
	}

	return fieldErrors.Error()
}
