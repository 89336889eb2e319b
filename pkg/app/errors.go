package app

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation matches every *ValidationError.
	ErrValidation = errors.New("app: validation failed")
	// ErrNotFound matches every *NotFoundError.
	ErrNotFound = errors.New("app: not found")
	// ErrNoStore is returned when a Service has no store configured.
	ErrNoStore = errors.New("app: no store configured")
)

// ValidationError reports a rejected field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("app: %s %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NotFoundError reports an id missing from its collection.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("app: %s %q not found", e.Kind, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func required(field string) error {
	return &ValidationError{Field: field, Reason: "is required"}
}
