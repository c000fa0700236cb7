package database

import (
	"context"

	"github.com/thenoetrevino/pizzeria/internal/models"
)

// ToppingRepository is the data access the topping service needs
type ToppingRepository interface {
	CreateTopping(ctx context.Context, name string) (*models.Topping, error)
	GetAllToppings(ctx context.Context) ([]*models.Topping, error)
	GetToppingByID(ctx context.Context, id int) (*models.Topping, error)
	FindToppingByName(ctx context.Context, name string, excludeID int) (*models.Topping, error)
	UpdateTopping(ctx context.Context, id int, name string) error
	DeleteTopping(ctx context.Context, id int) error
}

// PizzaRepository is the data access the pizza service needs
type PizzaRepository interface {
	CreatePizza(ctx context.Context, name string, toppingIDs []int) (*models.Pizza, error)
	GetAllPizzas(ctx context.Context) ([]*models.Pizza, error)
	GetPizzaByID(ctx context.Context, id int) (*models.Pizza, error)
	FindPizzaByName(ctx context.Context, name string, excludeID int) (*models.Pizza, error)
	UpdatePizza(ctx context.Context, id int, name string, toppingIDs []int) error
	DeletePizza(ctx context.Context, id int) error
}

// DataStore defines the unified interface for all data operations.
// Consumers can depend on the smaller interfaces for clearer dependencies.
type DataStore interface {
	ToppingRepository
	PizzaRepository
}

var _ DataStore = (*Repository)(nil)
