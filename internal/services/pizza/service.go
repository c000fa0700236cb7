package pizza

import (
	"context"
	"errors"
	"fmt"

	"github.com/thenoetrevino/pizzeria/internal/database"
	"github.com/thenoetrevino/pizzeria/internal/models"
)

// Service defines all pizza-related business operations
type Service interface {
	ListPizzas(ctx context.Context) ([]*models.Pizza, error)
	CreatePizza(ctx context.Context, req CreatePizzaRequest) (*models.Pizza, error)
	UpdatePizza(ctx context.Context, req UpdatePizzaRequest) error
	DeletePizza(ctx context.Context, id int) error
}

// CreatePizzaRequest encapsulates data for creating a pizza
type CreatePizzaRequest struct {
	Name       string
	ToppingIDs []int
}

// UpdatePizzaRequest replaces a pizza's name and topping set
type UpdatePizzaRequest struct {
	ID         int
	Name       string
	ToppingIDs []int
}

type service struct {
	repo database.DataStore
}

// NewService creates a new pizza service
func NewService(repo database.DataStore) Service {
	return &service{repo: repo}
}

func (s *service) ListPizzas(ctx context.Context) ([]*models.Pizza, error) {
	return s.repo.GetAllPizzas(ctx)
}

// CreatePizza validates the name, rejects duplicates and unknown toppings, then stores the pizza
func (s *service) CreatePizza(ctx context.Context, req CreatePizzaRequest) (*models.Pizza, error) {
	if err := models.ValidateName(req.Name); err != nil {
		return nil, err
	}
	if err := s.checkDuplicate(ctx, req.Name, 0); err != nil {
		return nil, err
	}
	if err := s.checkToppings(ctx, req.ToppingIDs); err != nil {
		return nil, err
	}

	pizza, err := s.repo.CreatePizza(ctx, req.Name, req.ToppingIDs)
	if err != nil {
		return nil, s.translate(err, req.Name)
	}
	return pizza, nil
}

// UpdatePizza renames a pizza and replaces its toppings
func (s *service) UpdatePizza(ctx context.Context, req UpdatePizzaRequest) error {
	if req.ID <= 0 {
		return ErrInvalidPizzaID
	}
	if _, err := s.repo.GetPizzaByID(ctx, req.ID); err != nil {
		return s.translate(err, req.Name)
	}
	if err := models.ValidateName(req.Name); err != nil {
		return err
	}
	if err := s.checkDuplicate(ctx, req.Name, req.ID); err != nil {
		return err
	}
	if err := s.checkToppings(ctx, req.ToppingIDs); err != nil {
		return err
	}

	if err := s.repo.UpdatePizza(ctx, req.ID, req.Name, req.ToppingIDs); err != nil {
		return s.translate(err, req.Name)
	}
	return nil
}

func (s *service) DeletePizza(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidPizzaID
	}
	if err := s.repo.DeletePizza(ctx, id); err != nil {
		return s.translate(err, "")
	}
	return nil
}

func (s *service) checkDuplicate(ctx context.Context, name string, excludeID int) error {
	existing, err := s.repo.FindPizzaByName(ctx, name, excludeID)
	if err != nil {
		return fmt.Errorf("failed to check for duplicate pizza: %w", err)
	}
	if existing != nil {
		return &DuplicateNameError{Name: name}
	}
	return nil
}

// checkToppings reports the first topping ID that does not exist
func (s *service) checkToppings(ctx context.Context, ids []int) error {
	for _, id := range ids {
		if _, err := s.repo.GetToppingByID(ctx, id); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return &MissingToppingError{ToppingID: id}
			}
			return fmt.Errorf("failed to check topping %d: %w", id, err)
		}
	}
	return nil
}

func (s *service) translate(err error, name string) error {
	switch {
	case errors.Is(err, database.ErrNotFound):
		return ErrPizzaNotFound
	case errors.Is(err, database.ErrDuplicateName):
		return &DuplicateNameError{Name: name}
	default:
		return err
	}
}
