package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTopping(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodPost, "/toppings", map[string]string{"name": "Pepperoni"})
	require.Equal(t, http.StatusCreated, rec.Code)

	var msg map[string]string
	decodeBody(t, rec, &msg)
	assert.Equal(t, "New Topping added successfully", msg["message"])

	rec = do(t, s, http.MethodGet, "/toppings", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var toppings []toppingResponse
	decodeBody(t, rec, &toppings)
	require.Len(t, toppings, 1)
	assert.Equal(t, "Pepperoni", toppings[0].Name)
	assert.Positive(t, toppings[0].ToppingID)
}

func TestCreateTopping_Duplicate(t *testing.T) {
	s := newTestServer(t)

	require.Equal(t, http.StatusCreated, do(t, s, http.MethodPost, "/toppings", map[string]string{"name": "Olives"}).Code)

	rec := do(t, s, http.MethodPost, "/toppings", map[string]string{"name": "olives"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body errorResponse
	decodeBody(t, rec, &body)
	assert.Equal(t, "Topping 'olives' already exists.", body.Error)
}

func TestCreateTopping_BadRequests(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name      string
		body      any
		wantField string
		wantError string
	}{
		{"missing name", map[string]string{}, "Missing data for required field.", ""},
		{"blank name", map[string]string{"name": "  "}, "Missing data for required field.", ""},
		{"name too long", map[string]string{"name": strings.Repeat("x", 101)}, "Longer than maximum length 100.", ""},
		{"malformed JSON", `{"name": `, "", "invalid JSON body"},
		{"empty body", "", "", "invalid JSON body"},
		{"wrong type", `{"name": 5}`, "", "invalid JSON body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, http.MethodPost, "/toppings", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var body map[string]any
			decodeBody(t, rec, &body)
			if tt.wantField != "" {
				assert.Equal(t, []any{tt.wantField}, body["name"])
				assert.NotContains(t, body, "error")
			} else {
				assert.Equal(t, tt.wantError, body["error"])
			}
		})
	}
}

func TestUpdateTopping(t *testing.T) {
	s := newTestServer(t)
	require.Equal(t, http.StatusCreated, do(t, s, http.MethodPost, "/toppings", map[string]string{"name": "Ham"}).Code)
	require.Equal(t, http.StatusCreated, do(t, s, http.MethodPost, "/toppings", map[string]string{"name": "Bacon"}).Code)

	rec := do(t, s, http.MethodPut, "/toppings/1", map[string]string{"name": "Prosciutto"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, s, http.MethodPut, "/toppings/2", map[string]string{"name": "PROSCIUTTO"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, s, http.MethodPut, "/toppings/99", map[string]string{"name": "Ghost"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	var body errorResponse
	decodeBody(t, rec, &body)
	assert.Equal(t, "Topping not found", body.Error)
}

func TestDeleteTopping(t *testing.T) {
	s := newTestServer(t)
	require.Equal(t, http.StatusCreated, do(t, s, http.MethodPost, "/toppings", map[string]string{"name": "Capers"}).Code)

	rec := do(t, s, http.MethodDelete, "/toppings/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var msg messageResponse
	decodeBody(t, rec, &msg)
	assert.Equal(t, "Topping removed successfully", msg.Message)

	rec = do(t, s, http.MethodDelete, "/toppings/1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Non-numeric IDs never reach the handler
	rec = do(t, s, http.MethodDelete, "/toppings/abc", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
