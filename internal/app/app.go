package app

import (
	"log/slog"

	"github.com/thenoetrevino/pizzeria/internal/database"
	pizzaservice "github.com/thenoetrevino/pizzeria/internal/services/pizza"
	toppingservice "github.com/thenoetrevino/pizzeria/internal/services/topping"
)

// App holds all application services and provides dependency injection.
// This is the main application container shared by the API server and tests.
type App struct {
	// Repository layer (direct database access)
	repo database.DataStore

	logger *slog.Logger

	// Service layer (business logic)
	ToppingService toppingservice.Service
	PizzaService   pizzaservice.Service
}

// New creates a new App with all services initialized.
func New(repo database.DataStore, opts ...Option) *App {
	cfg := appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &App{
		repo:           repo,
		logger:         cfg.logger,
		ToppingService: toppingservice.NewService(repo),
		PizzaService:   pizzaservice.NewService(repo),
	}
}

// Repo returns the underlying repository for direct database access.
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Logger returns the application logger
func (a *App) Logger() *slog.Logger {
	return a.logger
}
