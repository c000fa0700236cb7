package models

import (
	"errors"
	"strings"
)

// ErrEmptyName is returned when a required name is missing or blank
var ErrEmptyName = errors.New("name cannot be empty")

// ErrNameTooLong is returned when a name exceeds MaxNameLength
var ErrNameTooLong = errors.New("name cannot exceed 100 characters")

// FieldError reports that a single request field failed validation
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// ValidateName checks a topping or pizza name, trimming surrounding whitespace
func ValidateName(name string) error {
	trimmed := []rune(strings.TrimSpace(name))
	if len(trimmed) == 0 {
		return &FieldError{Field: "name", Err: ErrEmptyName}
	}
	if len(trimmed) > MaxNameLength {
		return &FieldError{Field: "name", Err: ErrNameTooLong}
	}
	return nil
}
