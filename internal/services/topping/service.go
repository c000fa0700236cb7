package topping

import (
	"context"
	"errors"
	"fmt"

	"github.com/thenoetrevino/pizzeria/internal/database"
	"github.com/thenoetrevino/pizzeria/internal/models"
)

// Service defines all topping-related business operations
type Service interface {
	// Read operations
	ListToppings(ctx context.Context) ([]*models.Topping, error)

	// Write operations
	CreateTopping(ctx context.Context, req CreateToppingRequest) (*models.Topping, error)
	UpdateTopping(ctx context.Context, req UpdateToppingRequest) error
	DeleteTopping(ctx context.Context, id int) error
}

// CreateToppingRequest encapsulates data for creating a topping
type CreateToppingRequest struct {
	Name string
}

// UpdateToppingRequest encapsulates data for renaming a topping
type UpdateToppingRequest struct {
	ID   int
	Name string
}

// service implements Service interface
type service struct {
	repo database.ToppingRepository
}

// NewService creates a new topping service
func NewService(repo database.ToppingRepository) Service {
	return &service{repo: repo}
}

// ListToppings retrieves every topping
func (s *service) ListToppings(ctx context.Context) ([]*models.Topping, error) {
	return s.repo.GetAllToppings(ctx)
}

// CreateTopping creates a new topping. The name is stored as given; the
// duplicate check ignores case and surrounding whitespace.
func (s *service) CreateTopping(ctx context.Context, req CreateToppingRequest) (*models.Topping, error) {
	if err := models.ValidateName(req.Name); err != nil {
		return nil, err
	}

	if err := s.checkDuplicate(ctx, req.Name, 0); err != nil {
		return nil, err
	}

	topping, err := s.repo.CreateTopping(ctx, req.Name)
	if err != nil {
		return nil, s.translate(err, req.Name)
	}
	return topping, nil
}

// UpdateTopping renames an existing topping
func (s *service) UpdateTopping(ctx context.Context, req UpdateToppingRequest) error {
	if req.ID <= 0 {
		return ErrInvalidToppingID
	}
	if err := models.ValidateName(req.Name); err != nil {
		return err
	}

	if _, err := s.repo.GetToppingByID(ctx, req.ID); err != nil {
		return s.translate(err, req.Name)
	}

	if err := s.checkDuplicate(ctx, req.Name, req.ID); err != nil {
		return err
	}

	if err := s.repo.UpdateTopping(ctx, req.ID, req.Name); err != nil {
		return s.translate(err, req.Name)
	}
	return nil
}

// DeleteTopping deletes a topping and detaches it from every pizza
func (s *service) DeleteTopping(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidToppingID
	}
	if err := s.repo.DeleteTopping(ctx, id); err != nil {
		return s.translate(err, "")
	}
	return nil
}

// checkDuplicate fails when another topping already uses the normalized name
func (s *service) checkDuplicate(ctx context.Context, name string, excludeID int) error {
	existing, err := s.repo.FindToppingByName(ctx, name, excludeID)
	if err != nil {
		return fmt.Errorf("failed to check for duplicate topping: %w", err)
	}
	if existing != nil {
		return &DuplicateNameError{Name: name}
	}
	return nil
}

// translate maps repository errors onto the service's errors
func (s *service) translate(err error, name string) error {
	switch {
	case errors.Is(err, database.ErrNotFound):
		return ErrToppingNotFound
	case errors.Is(err, database.ErrDuplicateName):
		// Lost a race with a concurrent insert; the unique index caught it
		return &DuplicateNameError{Name: name}
	default:
		return err
	}
}
