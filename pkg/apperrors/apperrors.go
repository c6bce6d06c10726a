// Package apperrors defines the error categories the HTTP layer maps to
// status codes. Services wrap lower-level failures into one of these so
// handlers never inspect driver errors directly.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks a missing or malformed request field.
	ErrValidation = errors.New("validation error")
	// ErrUnauthorized marks a missing, invalid or expired token.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden marks an owner mismatch on a protected record.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound marks a missing record.
	ErrNotFound = errors.New("not found")
	// ErrConflict marks a uniqueness violation.
	ErrConflict = errors.New("conflict")
	// ErrUpstreamUnavailable marks an unreachable or timed-out vector or
	// text-generation service. Handlers degrade instead of returning 5xx.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)

// Validationf wraps ErrValidation with a message.
func Validationf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrValidation}, args...)...)
}

// Is reports whether err belongs to the given category.
func Is(err, category error) bool {
	return errors.Is(err, category)
}
