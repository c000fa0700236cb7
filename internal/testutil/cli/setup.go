// Package clitest starts a real topping API for command tests.
// It lives apart from testutil because it imports the api package, whose own
// tests import testutil.
package clitest

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/thenoetrevino/pizzeria/internal/api"
	"github.com/thenoetrevino/pizzeria/internal/app"
	"github.com/thenoetrevino/pizzeria/internal/database"
	"github.com/thenoetrevino/pizzeria/internal/testutil"
)

// SetupAPI serves a fresh database over HTTP and returns the base URL and the
// repository behind it. Cleanup is automatic.
func SetupAPI(t *testing.T) (string, *database.Repository) {
	t.Helper()

	repo := testutil.SetupTestRepo(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	server, err := api.NewServer("127.0.0.1:0", app.New(repo, app.WithLogger(logger)), api.WithLogger(logger))
	if err != nil {
		t.Fatalf("Failed to create test API: %v", err)
	}
	t.Cleanup(func() {
		if err := server.Shutdown(); err != nil {
			t.Logf("Failed to shut down test API: %v", err)
		}
	})

	srv := httptest.NewServer(server.Handler())
	t.Cleanup(srv.Close)

	return srv.URL, repo
}
