package handlers

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// ParseValidationErrors converts validator errors into a field -> message map
// keyed by the JSON field name, suitable for the 400 response body.
func ParseValidationErrors(err error) map[string]string {
	violations := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldError := range validationErrors {
			violations[jsonFieldName(fieldError.Field())] = getErrorMessage(fieldError)
		}
	}

	return violations
}

// jsonFieldName lowercases the first letter of a struct field name to match
// the camelCase JSON tags on the request model.
func jsonFieldName(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}

func getErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return "Invalid email format"
	case "min":
		return fe.Field() + " must be at least " + fe.Param() + " characters"
	case "max":
		return fe.Field() + " must not exceed " + fe.Param() + " characters"
	default:
		return fe.Field() + " is invalid"
	}
}
