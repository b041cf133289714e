package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for use with errors.Is(). Adapters map these to
// transport statuses; nothing here knows about HTTP.
var (
	// ErrNotFound indicates the requested quote does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates a quote was rejected before it was stored.
	ErrValidation = errors.New("validation failed")
)

// NotFoundError reports a lookup that matched nothing.
// ID is the identifier as the caller supplied it, so it may not be numeric.
// An empty ID means there was nothing to choose from at all.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return "no " + e.Entity + " available"
	}

	return fmt.Sprintf("%s %q not found", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewNotFoundError creates a not found error for entity.
func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// ValidationError lists the fields that made a quote unacceptable.
type ValidationError struct {
	Fields  []string
	Message string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed: " + e.Message
	}

	return fmt.Sprintf("validation failed for %s: %s", strings.Join(e.Fields, ", "), e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a validation error for a single field.
func NewValidationError(field, message string) error {
	if field == "" {
		return &ValidationError{Message: message}
	}

	return &ValidationError{Fields: []string{field}, Message: message}
}

// newMissingFieldsError reports every empty required field at once.
func newMissingFieldsError(fields ...string) error {
	return &ValidationError{Fields: fields, Message: "must not be empty"}
}

// IsNotFound reports whether err is, or wraps, ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation reports whether err is, or wraps, ErrValidation.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}
