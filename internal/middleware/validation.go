package middleware

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// FormatValidationError creates a human-readable message from a
// go-playground/validator error, suitable for the details field of an
// error response.
func FormatValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	msg := ""
	for i, e := range verrs {
		if i > 0 {
			msg += "; "
		}
		msg += formatFieldError(e)
	}
	return msg
}

func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "gt":
		return e.Field() + " must be greater than " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
