package domain

import (
	"errors"
	"fmt"
)

var (
	ErrTypeMismatch       = errors.New("type mismatch")
	ErrInvalidPrice       = errors.New("price must not be negative")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoCurrentUser      = errors.New("no authenticated user")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrProductNotFound    = errors.New("product not found")
)

// TypeMismatchError reports a value of the wrong kind for a field.
// It matches ErrTypeMismatch under errors.Is.
type TypeMismatchError struct {
	Field    string
	Expected string
	Actual   string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: %s expected %s, got %s", ErrTypeMismatch, e.Field, e.Expected, e.Actual)
}

func (e *TypeMismatchError) Unwrap() error { return ErrTypeMismatch }

// NewTypeMismatch builds a *TypeMismatchError for field.
func NewTypeMismatch(field, expected, actual string) error {
	return &TypeMismatchError{Field: field, Expected: expected, Actual: actual}
}
