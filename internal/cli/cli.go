// Package cli holds the pieces shared by the pizzeria subcommands: the API
// handle carried through the command context and the output formatter.
package cli

import (
	"context"
	"errors"

	"github.com/thenoetrevino/pizzeria/internal/client"
	"github.com/thenoetrevino/pizzeria/internal/models"
)

// ToppingAPI is the part of the topping API the subcommands use
type ToppingAPI interface {
	client.ToppingCreator
	client.ToppingLister
	UpdateTopping(ctx context.Context, id int, name string) error
	DeleteTopping(ctx context.Context, id int) error
}

var _ ToppingAPI = (*client.Client)(nil)

// CLI represents the CLI application context
type CLI struct {
	API     ToppingAPI
	BaseURL string
}

// NewCLI builds a CLI talking to the API at baseURL
func NewCLI(baseURL string) *CLI {
	c := client.New(baseURL)
	return &CLI{API: c, BaseURL: c.BaseURL()}
}

type cliKey struct{}

// WithCLI returns a context carrying c
func WithCLI(ctx context.Context, c *CLI) context.Context {
	return context.WithValue(ctx, cliKey{}, c)
}

// ErrNoCLI is returned when a command runs without a CLI in its context
var ErrNoCLI = errors.New("cli not initialized")

// GetCLIFromContext returns the CLI stored by WithCLI
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		return nil, ErrNoCLI
	}
	c, ok := ctx.Value(cliKey{}).(*CLI)
	if !ok || c == nil {
		return nil, ErrNoCLI
	}
	return c, nil
}

// ToppingView is the JSON shape of a topping in command output
type ToppingView struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// GetID lets quiet mode print the ID
func (v ToppingView) GetID() int {
	return v.ID
}

// ToppingViews converts API toppings for output
func ToppingViews(toppings []*models.Topping) []ToppingView {
	views := make([]ToppingView, 0, len(toppings))
	for _, t := range toppings {
		views = append(views, ToppingView{ID: t.ID, Name: t.Name})
	}
	return views
}
