package database

import (
	"context"
	"database/sql"
	"fmt"
)

// schema is applied in order on every start; each statement is idempotent
var schema = []string{
	`CREATE TABLE IF NOT EXISTS toppings (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		name_key TEXT NOT NULL
	)`,
	// name_key is NameKey(name), so names are unique ignoring case and surrounding whitespace
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_toppings_name_key
		ON toppings(name_key)`,
	`CREATE TABLE IF NOT EXISTS pizzas (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		name_key TEXT NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_pizzas_name_key
		ON pizzas(name_key)`,
	`CREATE TABLE IF NOT EXISTS pizza_toppings (
		pizza_id INTEGER NOT NULL,
		topping_id INTEGER NOT NULL,
		PRIMARY KEY (pizza_id, topping_id),
		FOREIGN KEY (pizza_id) REFERENCES pizzas(id) ON DELETE CASCADE,
		FOREIGN KEY (topping_id) REFERENCES toppings(id) ON DELETE CASCADE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_pizza_toppings_topping
		ON pizza_toppings(topping_id)`,
}

// runMigrations creates the database schema if needed
func runMigrations(ctx context.Context, db *sql.DB) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
