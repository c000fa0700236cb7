package pizza

import (
	"errors"
	"fmt"
)

// Pizza-related errors
var (
	// Validation errors
	ErrInvalidPizzaID = errors.New("invalid pizza ID")

	// Business logic errors
	ErrPizzaNotFound   = errors.New("pizza not found")
	ErrDuplicateName   = errors.New("pizza already exists")
	ErrToppingNotFound = errors.New("topping not found")
)

// DuplicateNameError carries the name that collided with an existing pizza
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("pizza %q already exists", e.Name)
}

func (e *DuplicateNameError) Unwrap() error {
	return ErrDuplicateName
}

// MissingToppingError names the first referenced topping that does not exist
type MissingToppingError struct {
	ToppingID int
}

func (e *MissingToppingError) Error() string {
	return fmt.Sprintf("topping with ID %d not found", e.ToppingID)
}

func (e *MissingToppingError) Unwrap() error {
	return ErrToppingNotFound
}
