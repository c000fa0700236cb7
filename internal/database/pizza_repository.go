package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/pizzeria/internal/models"
)

// PizzaRepo handles pure data access for pizzas and their topping associations
type PizzaRepo struct {
	db *sql.DB
}

// Create inserts a pizza together with its toppings in one transaction
func (r *PizzaRepo) Create(ctx context.Context, name string, toppingIDs []int) (*models.Pizza, error) {
	var pizzaID int64
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, "INSERT INTO pizzas (name, name_key) VALUES (?, ?)", name, NameKey(name))
		if err != nil {
			return translateError(err)
		}
		pizzaID, err = result.LastInsertId()
		if err != nil {
			return err
		}
		return insertPizzaToppings(ctx, tx, int(pizzaID), toppingIDs)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create pizza: %w", err)
	}
	return r.GetByID(ctx, int(pizzaID))
}

// GetAll retrieves every pizza with its toppings, ordered by ID
func (r *PizzaRepo) GetAll(ctx context.Context) ([]*models.Pizza, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, name FROM pizzas ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query pizzas: %w", err)
	}

	pizzas := make([]*models.Pizza, 0)
	byID := make(map[int]*models.Pizza)
	for rows.Next() {
		p := &models.Pizza{Toppings: []*models.Topping{}}
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan pizza: %w", err)
		}
		pizzas = append(pizzas, p)
		byID[p.ID] = p
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("failed to iterate pizzas: %w", err)
	}
	rows.Close()

	// Single connection pool: the first result set must be closed before the next query
	links, err := r.db.QueryContext(ctx, `
		SELECT pt.pizza_id, t.id, t.name
		FROM pizza_toppings pt
		INNER JOIN toppings t ON t.id = pt.topping_id
		ORDER BY pt.pizza_id, t.id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query pizza toppings: %w", err)
	}
	defer links.Close()

	for links.Next() {
		var pizzaID int
		t := &models.Topping{}
		if err := links.Scan(&pizzaID, &t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("failed to scan pizza topping: %w", err)
		}
		if p, ok := byID[pizzaID]; ok {
			p.Toppings = append(p.Toppings, t)
		}
	}
	return pizzas, links.Err()
}

// GetByID retrieves a single pizza with its toppings
func (r *PizzaRepo) GetByID(ctx context.Context, id int) (*models.Pizza, error) {
	p := &models.Pizza{Toppings: []*models.Topping{}}
	err := r.db.QueryRowContext(ctx, "SELECT id, name FROM pizzas WHERE id = ?", id).Scan(&p.ID, &p.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to get pizza %d: %w", id, translateError(err))
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT t.id, t.name
		FROM pizza_toppings pt
		INNER JOIN toppings t ON t.id = pt.topping_id
		WHERE pt.pizza_id = ?
		ORDER BY t.id`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get toppings for pizza %d: %w", id, err)
	}
	defer rows.Close()

	for rows.Next() {
		t := &models.Topping{}
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("failed to scan topping: %w", err)
		}
		p.Toppings = append(p.Toppings, t)
	}
	return p, rows.Err()
}

// FindByName looks a pizza up by its normalized name, ignoring excludeID.
// Returns nil with no error when nothing matches.
func (r *PizzaRepo) FindByName(ctx context.Context, name string, excludeID int) (*models.Pizza, error) {
	var id int
	err := r.db.QueryRowContext(ctx,
		"SELECT id FROM pizzas WHERE name_key = ? AND id != ? LIMIT 1",
		NameKey(name), excludeID,
	).Scan(&id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up pizza %q: %w", name, err)
	}
	return r.GetByID(ctx, id)
}

// Update renames a pizza and replaces its topping set
func (r *PizzaRepo) Update(ctx context.Context, id int, name string, toppingIDs []int) error {
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, "UPDATE pizzas SET name = ?, name_key = ? WHERE id = ?", name, NameKey(name), id)
		if err != nil {
			return translateError(err)
		}
		if err := requireAffected(result); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM pizza_toppings WHERE pizza_id = ?", id); err != nil {
			return err
		}
		return insertPizzaToppings(ctx, tx, id, toppingIDs)
	})
	if err != nil {
		return fmt.Errorf("failed to update pizza %d: %w", id, err)
	}
	return nil
}

// Delete removes a pizza and its topping associations
func (r *PizzaRepo) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM pizzas WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete pizza %d: %w", id, err)
	}
	if err := requireAffected(result); err != nil {
		return fmt.Errorf("failed to delete pizza %d: %w", id, err)
	}
	return nil
}

func insertPizzaToppings(ctx context.Context, tx *sql.Tx, pizzaID int, toppingIDs []int) error {
	for _, toppingID := range toppingIDs {
		_, err := tx.ExecContext(ctx,
			"INSERT OR IGNORE INTO pizza_toppings (pizza_id, topping_id) VALUES (?, ?)",
			pizzaID, toppingID,
		)
		if err != nil {
			return fmt.Errorf("failed to add topping %d to pizza %d: %w", toppingID, pizzaID, err)
		}
	}
	return nil
}
