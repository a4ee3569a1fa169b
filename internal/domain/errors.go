package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")

	// ErrStorageUnavailable means the backing store is not configured or not
	// reachable at all. It is raised before any query is attempted.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrSchemaNotProvisioned means the store answered but a table is missing.
	ErrSchemaNotProvisioned = errors.New("schema not provisioned")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	parts := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return fmt.Sprintf("validation: %d errors (%s)", len(e.Errors), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// SchemaError reports a relation the store does not know about, together with
// the migration that creates it.
type SchemaError struct {
	Relation  string
	Migration string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("relation %q does not exist (run migration %s)", e.Relation, e.Migration)
}

func (e *SchemaError) Unwrap() error { return ErrSchemaNotProvisioned }
