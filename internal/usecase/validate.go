package usecase

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/validation"
)

// validateInput runs struct validation and turns failures into a
// Validation error pointing back at redirect.
func validateInput(v *validator.Validate, input any, redirect string) error {
	err := v.Struct(input)
	if err == nil {
		return nil
	}
	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return apperror.Internal(err)
	}
	messages := validation.FormatValidationErrors(err)
	return apperror.Validation(strings.Join(messages, " ")).
		WithDetails(messages).
		WithRedirect(redirect)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
