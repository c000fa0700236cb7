package testutil

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/pizzeria/internal/database"
)

// SetupTestDB creates a migrated SQLite database in the test's temp dir.
// The connection is closed automatically via t.Cleanup().
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.InitDB(context.Background(), filepath.Join(t.TempDir(), "pizzeria-test.db"))
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

// SetupTestRepo returns a repository over a fresh test database
func SetupTestRepo(t *testing.T) *database.Repository {
	t.Helper()
	return database.NewRepository(SetupTestDB(t))
}

// CreateTestTopping inserts a topping directly and returns its ID
func CreateTestTopping(t *testing.T, repo *database.Repository, name string) int {
	t.Helper()
	topping, err := repo.CreateTopping(context.Background(), name)
	if err != nil {
		t.Fatalf("Failed to create test topping %q: %v", name, err)
	}
	return topping.ID
}
