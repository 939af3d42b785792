package service

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across service implementations. Callers check them
// with errors.Is and the API layer maps them to HTTP status codes.
var (
	// ErrNoApprovedItems indicates the catalog has no approved items to
	// serve. The API layer maps this to HTTP 404 Not Found.
	ErrNoApprovedItems = errors.New("no approved items available")

	// ErrItemNotFound indicates the referenced item does not exist.
	// The API layer maps this to HTTP 500 because moderation requests are
	// built from previously listed items.
	ErrItemNotFound = errors.New("item not found")
)

// ValidationError reports a rejected service input. It carries the offending
// field so handlers can surface a precise message to the caller.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError reports whether err is a service input validation
// failure.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
