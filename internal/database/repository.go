package database

import (
	"context"
	"database/sql"

	"github.com/thenoetrevino/pizzeria/internal/models"
)

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*ToppingRepo
	*PizzaRepo
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		ToppingRepo: &ToppingRepo{db: db},
		PizzaRepo:   &PizzaRepo{db: db},
	}
}

// Wrapper methods for ToppingRepo
func (r *Repository) CreateTopping(ctx context.Context, name string) (*models.Topping, error) {
	return r.ToppingRepo.Create(ctx, name)
}

func (r *Repository) GetAllToppings(ctx context.Context) ([]*models.Topping, error) {
	return r.ToppingRepo.GetAll(ctx)
}

func (r *Repository) GetToppingByID(ctx context.Context, id int) (*models.Topping, error) {
	return r.ToppingRepo.GetByID(ctx, id)
}

func (r *Repository) FindToppingByName(ctx context.Context, name string, excludeID int) (*models.Topping, error) {
	return r.ToppingRepo.FindByName(ctx, name, excludeID)
}

func (r *Repository) UpdateTopping(ctx context.Context, id int, name string) error {
	return r.ToppingRepo.Update(ctx, id, name)
}

func (r *Repository) DeleteTopping(ctx context.Context, id int) error {
	return r.ToppingRepo.Delete(ctx, id)
}

// Wrapper methods for PizzaRepo
func (r *Repository) CreatePizza(ctx context.Context, name string, toppingIDs []int) (*models.Pizza, error) {
	return r.PizzaRepo.Create(ctx, name, toppingIDs)
}

func (r *Repository) GetAllPizzas(ctx context.Context) ([]*models.Pizza, error) {
	return r.PizzaRepo.GetAll(ctx)
}

func (r *Repository) GetPizzaByID(ctx context.Context, id int) (*models.Pizza, error) {
	return r.PizzaRepo.GetByID(ctx, id)
}

func (r *Repository) FindPizzaByName(ctx context.Context, name string, excludeID int) (*models.Pizza, error) {
	return r.PizzaRepo.FindByName(ctx, name, excludeID)
}

func (r *Repository) UpdatePizza(ctx context.Context, id int, name string, toppingIDs []int) error {
	return r.PizzaRepo.Update(ctx, id, name, toppingIDs)
}

func (r *Repository) DeletePizza(ctx context.Context, id int) error {
	return r.PizzaRepo.Delete(ctx, id)
}
