package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound         = errors.New("not found")
	ErrAlreadyExists    = errors.New("already exists")
	ErrValidation       = errors.New("validation error")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrConflict         = errors.New("conflict")
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrUpstream         = errors.New("upstream service failed")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
// It is produced before any store call is made.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
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

// QueryError reports a failed read or join against the store.
type QueryError struct {
	Entity string
	Op     string
	Err    error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query %s %s: %v", e.Entity, e.Op, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

// NewQueryError wraps err unless it already is a QueryError. Returns nil for nil.
func NewQueryError(entity, op string, err error) error {
	if err == nil {
		return nil
	}
	var qe *QueryError
	if errors.As(err, &qe) {
		return err
	}
	return &QueryError{Entity: entity, Op: op, Err: err}
}

// WriteError reports a failed create, update or delete.
type WriteError struct {
	Entity string
	Op     string
	ID     uuid.UUID
	Err    error
}

func (e *WriteError) Error() string {
	if e.ID == uuid.Nil {
		return fmt.Sprintf("write %s %s: %v", e.Entity, e.Op, e.Err)
	}
	return fmt.Sprintf("write %s %s %s: %v", e.Entity, e.Op, e.ID, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// NewWriteError wraps err unless it already is a WriteError. Returns nil for nil.
func NewWriteError(entity, op string, id uuid.UUID, err error) error {
	if err == nil {
		return nil
	}
	var we *WriteError
	if errors.As(err, &we) {
		return err
	}
	return &WriteError{Entity: entity, Op: op, ID: id, Err: err}
}

// IsStoreError reports whether err came from the store (read or write side).
func IsStoreError(err error) bool {
	var qe *QueryError
	var we *WriteError
	return errors.As(err, &qe) || errors.As(err, &we)
}
