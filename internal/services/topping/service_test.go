package topping

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/thenoetrevino/pizzeria/internal/models"
	"github.com/thenoetrevino/pizzeria/internal/testutil"
)

func TestCreateTopping(t *testing.T) {
	t.Parallel()

	svc := NewService(testutil.SetupTestRepo(t))

	result, err := svc.CreateTopping(context.Background(), CreateToppingRequest{Name: "Pepperoni"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if result == nil {
		t.Fatal("Expected topping result, got nil")
	}
	if result.Name != "Pepperoni" {
		t.Errorf("Expected name 'Pepperoni', got '%s'", result.Name)
	}
	if result.ID <= 0 {
		t.Errorf("Expected positive ID, got %d", result.ID)
	}
}

func TestCreateTopping_StoresNameAsGiven(t *testing.T) {
	t.Parallel()

	svc := NewService(testutil.SetupTestRepo(t))
	ctx := context.Background()

	if _, err := svc.CreateTopping(ctx, CreateToppingRequest{Name: " Sun-dried Tomato "}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	toppings, err := svc.ListToppings(ctx)
	if err != nil {
		t.Fatalf("Failed to list toppings: %v", err)
	}
	if len(toppings) != 1 || toppings[0].Name != " Sun-dried Tomato " {
		t.Errorf("Expected the untrimmed name to be stored, got %+v", toppings)
	}
}

func TestCreateTopping_Validation(t *testing.T) {
	t.Parallel()

	svc := NewService(testutil.SetupTestRepo(t))

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty name", "", models.ErrEmptyName},
		{"blank name", "   ", models.ErrEmptyName},
		{"name too long", strings.Repeat("a", models.MaxNameLength+1), models.ErrNameTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateTopping(context.Background(), CreateToppingRequest{Name: tt.input})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
			var fieldErr *models.FieldError
			if !errors.As(err, &fieldErr) || fieldErr.Field != "name" {
				t.Errorf("Expected a FieldError on 'name', got %#v", err)
			}
		})
	}
}

func TestCreateTopping_Duplicate(t *testing.T) {
	t.Parallel()

	svc := NewService(testutil.SetupTestRepo(t))
	ctx := context.Background()

	if _, err := svc.CreateTopping(ctx, CreateToppingRequest{Name: "Olives"}); err != nil {
		t.Fatalf("Failed to create topping: %v", err)
	}

	for _, name := range []string{"Olives", "olives", "  OLIVES  "} {
		_, err := svc.CreateTopping(ctx, CreateToppingRequest{Name: name})
		if !errors.Is(err, ErrDuplicateName) {
			t.Errorf("%q: expected ErrDuplicateName, got %v", name, err)
			continue
		}
		var dupErr *DuplicateNameError
		if !errors.As(err, &dupErr) || dupErr.Name != name {
			t.Errorf("%q: expected DuplicateNameError carrying the submitted name, got %#v", name, err)
		}
	}
}

func TestCreateTopping_DuplicateBeyondASCII(t *testing.T) {
	t.Parallel()

	tests := []struct {
		existing string
		created  string
	}{
		{"Olives\t", "olives"},
		{"Olives\u00a0", "olives"},
		{"JALAPEÑO", "jalapeño"},
	}

	for _, tt := range tests {
		svc := NewService(testutil.SetupTestRepo(t))
		ctx := context.Background()

		if _, err := svc.CreateTopping(ctx, CreateToppingRequest{Name: tt.existing}); err != nil {
			t.Fatalf("Failed to create topping %q: %v", tt.existing, err)
		}
		_, err := svc.CreateTopping(ctx, CreateToppingRequest{Name: tt.created})
		if !errors.Is(err, ErrDuplicateName) {
			t.Errorf("%q after %q: expected ErrDuplicateName, got %v", tt.created, tt.existing, err)
		}
	}
}

func TestUpdateTopping(t *testing.T) {
	t.Parallel()

	repo := testutil.SetupTestRepo(t)
	svc := NewService(repo)
	ctx := context.Background()
	olivesID := testutil.CreateTestTopping(t, repo, "Olives")
	hamID := testutil.CreateTestTopping(t, repo, "Ham")

	if err := svc.UpdateTopping(ctx, UpdateToppingRequest{ID: olivesID, Name: "Black Olives"}); err != nil {
		t.Fatalf("Expected rename to succeed, got %v", err)
	}
	// Renaming to a case variant of itself is not a duplicate
	if err := svc.UpdateTopping(ctx, UpdateToppingRequest{ID: hamID, Name: "HAM"}); err != nil {
		t.Fatalf("Expected self-case rename to succeed, got %v", err)
	}

	err := svc.UpdateTopping(ctx, UpdateToppingRequest{ID: hamID, Name: "black olives"})
	if !errors.Is(err, ErrDuplicateName) {
		t.Errorf("Expected ErrDuplicateName, got %v", err)
	}
}

func TestUpdateTopping_NotFoundBeforeValidation(t *testing.T) {
	t.Parallel()

	svc := NewService(testutil.SetupTestRepo(t))

	if err := svc.UpdateTopping(context.Background(), UpdateToppingRequest{ID: 999, Name: "Ghost"}); !errors.Is(err, ErrToppingNotFound) {
		t.Errorf("Expected ErrToppingNotFound, got %v", err)
	}
	if err := svc.UpdateTopping(context.Background(), UpdateToppingRequest{ID: 0, Name: "Ghost"}); !errors.Is(err, ErrInvalidToppingID) {
		t.Errorf("Expected ErrInvalidToppingID, got %v", err)
	}
}

func TestDeleteTopping(t *testing.T) {
	t.Parallel()

	repo := testutil.SetupTestRepo(t)
	svc := NewService(repo)
	ctx := context.Background()
	id := testutil.CreateTestTopping(t, repo, "Anchovies")

	if err := svc.DeleteTopping(ctx, id); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if err := svc.DeleteTopping(ctx, id); !errors.Is(err, ErrToppingNotFound) {
		t.Errorf("Expected ErrToppingNotFound on second delete, got %v", err)
	}
	if err := svc.DeleteTopping(ctx, -1); !errors.Is(err, ErrInvalidToppingID) {
		t.Errorf("Expected ErrInvalidToppingID, got %v", err)
	}
}
