package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. This is the generic form of the entity-specific not found
	// errors below.
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored. Check the wrapped error for specific validation details.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrInvalidStatus is returned when a status update targets a value
	// outside {APPROVED, REJECTED}.
	ErrInvalidStatus = errors.New("invalid target status")

	// ErrItemNotFound indicates that the requested (itemId, version) row
	// does not exist in the store.
	ErrItemNotFound = fmt.Errorf("%w: item", ErrNotFound)

	// ErrPromptNotFound indicates that the prompt configuration row has
	// never been written. Callers usually treat this as an empty template.
	ErrPromptNotFound = fmt.Errorf("%w: prompt config", ErrNotFound)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
