package usecase

import (
	"context"
	"errors"

	"murray-moving/pkg/utils"
)

var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrNotFound           = errors.New("not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError carries every failing field of a request.
type ValidationError struct {
	Errors []utils.FieldError
}

func (e *ValidationError) Error() string {
	return "validation failed: " + utils.FormatValidationErrors(e.Errors)
}

func validate(req any) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

// requireAdmin guards admin-only operations regardless of the caller's route.
func requireAdmin(ctx context.Context) error {
	if !utils.IsAdmin(ctx) {
		return ErrUnauthorized
	}
	return nil
}
