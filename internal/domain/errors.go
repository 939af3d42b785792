// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
)

// ErrValidation is the root of the validation error taxonomy. Every
// field-level sentinel in this package wraps it, so callers can classify
// any domain validation failure with a single errors.Is check.
var ErrValidation = errors.New("validation failed")

// ErrInvalidReviewStatus is returned when a review targets a status other
// than APPROVED or REJECTED.
var ErrInvalidReviewStatus = fmt.Errorf("%w: review status must be APPROVED or REJECTED", ErrValidation)
