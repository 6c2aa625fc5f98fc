package config

import (
	"errors"
	"fmt"
)

var (
	// ErrTypeMismatch indicates the value type doesn't match the expected type.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrValidationFailed indicates a value is out of range.
	ErrValidationFailed = errors.New("validation failed")
)

// TypeError describes a setting whose value has the wrong type.
type TypeError struct {
	Path     string
	Expected string
	Actual   string
}

// Error implements the error interface.
func (e *TypeError) Error() string {
	return fmt.Sprintf("%s: expected %s, got %s", e.Path, e.Expected, e.Actual)
}

// Unwrap returns ErrTypeMismatch.
func (e *TypeError) Unwrap() error {
	return ErrTypeMismatch
}

// ValidationError describes a setting whose value is not allowed.
type ValidationError struct {
	Path    string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got %v)", e.Path, e.Message, e.Value)
}

// Unwrap returns ErrValidationFailed.
func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}
