package api

import (
	"errors"
	"net/http"

	"github.com/gameforge/gameforge-api/internal/domain"
	"github.com/gameforge/gameforge-api/internal/service"
	"github.com/gameforge/gameforge-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes without
// leaking internal error types to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Input validation failures. domain.ErrValidation covers every
	// field-level sentinel in the domain package, ErrPromptEmpty included.
	case service.IsValidationError(err),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, store.ErrInvalidStatus):
		return http.StatusBadRequest

	// Nothing to serve
	case errors.Is(err, service.ErrNoApprovedItems):
		return http.StatusNotFound

	// A review can only reference an item the dashboard already listed, so
	// a missing item means pipeline state is broken, not caller error.
	case errors.Is(err, service.ErrItemNotFound):
		return http.StatusInternalServerError

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a client-safe message for the error. Internal
// detail stays in the logs.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Error()
	}

	switch {
	case errors.Is(err, domain.ErrPromptEmpty):
		return "Prompt cannot be empty"

	case errors.Is(err, service.ErrNoApprovedItems):
		return "No approved items found"

	case errors.Is(err, service.ErrItemNotFound):
		return "Item not found"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid item data"

	default:
		return "An unexpected error occurred"
	}
}
