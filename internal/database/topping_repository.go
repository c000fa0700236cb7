package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/pizzeria/internal/models"
)

// ToppingRepo handles pure data access for toppings
// No business logic, no validation - just database operations
type ToppingRepo struct {
	db *sql.DB
}

// Create inserts a new topping
func (r *ToppingRepo) Create(ctx context.Context, name string) (*models.Topping, error) {
	result, err := r.db.ExecContext(ctx, "INSERT INTO toppings (name, name_key) VALUES (?, ?)", name, NameKey(name))
	if err != nil {
		return nil, fmt.Errorf("failed to create topping: %w", translateError(err))
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get topping ID: %w", err)
	}
	return &models.Topping{ID: int(id), Name: name}, nil
}

// GetAll retrieves every topping ordered by ID
func (r *ToppingRepo) GetAll(ctx context.Context) ([]*models.Topping, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, name FROM toppings ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query toppings: %w", err)
	}
	defer rows.Close()

	toppings := make([]*models.Topping, 0)
	for rows.Next() {
		t := &models.Topping{}
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("failed to scan topping: %w", err)
		}
		toppings = append(toppings, t)
	}
	return toppings, rows.Err()
}

// GetByID retrieves a single topping
func (r *ToppingRepo) GetByID(ctx context.Context, id int) (*models.Topping, error) {
	t := &models.Topping{}
	err := r.db.QueryRowContext(ctx, "SELECT id, name FROM toppings WHERE id = ?", id).Scan(&t.ID, &t.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to get topping %d: %w", id, translateError(err))
	}
	return t, nil
}

// FindByName looks a topping up by its normalized name, ignoring excludeID.
// Returns nil with no error when nothing matches.
func (r *ToppingRepo) FindByName(ctx context.Context, name string, excludeID int) (*models.Topping, error) {
	t := &models.Topping{}
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name FROM toppings WHERE name_key = ? AND id != ? LIMIT 1",
		NameKey(name), excludeID,
	).Scan(&t.ID, &t.Name)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up topping %q: %w", name, err)
	}
	return t, nil
}

// Update renames a topping
func (r *ToppingRepo) Update(ctx context.Context, id int, name string) error {
	result, err := r.db.ExecContext(ctx, "UPDATE toppings SET name = ?, name_key = ? WHERE id = ?", name, NameKey(name), id)
	if err != nil {
		return fmt.Errorf("failed to update topping %d: %w", id, translateError(err))
	}
	if err := requireAffected(result); err != nil {
		return fmt.Errorf("failed to update topping %d: %w", id, err)
	}
	return nil
}

// Delete removes a topping; pizza associations go with it
func (r *ToppingRepo) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM toppings WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete topping %d: %w", id, err)
	}
	if err := requireAffected(result); err != nil {
		return fmt.Errorf("failed to delete topping %d: %w", id, err)
	}
	return nil
}
