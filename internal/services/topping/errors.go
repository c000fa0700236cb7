package topping

import (
	"errors"
	"fmt"
)

// Topping-related errors
var (
	// Validation errors
	ErrInvalidToppingID = errors.New("invalid topping ID")

	// Business logic errors
	ErrToppingNotFound = errors.New("topping not found")
	ErrDuplicateName   = errors.New("topping already exists")
)

// DuplicateNameError carries the name that collided with an existing topping
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("topping %q already exists", e.Name)
}

func (e *DuplicateNameError) Unwrap() error {
	return ErrDuplicateName
}
