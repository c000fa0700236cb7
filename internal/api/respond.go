package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/thenoetrevino/pizzeria/internal/models"
	pizzaservice "github.com/thenoetrevino/pizzeria/internal/services/pizza"
	toppingservice "github.com/thenoetrevino/pizzeria/internal/services/topping"
)

// Validation messages mirror the field-keyed error bodies clients already parse
const (
	msgMissingField = "Missing data for required field."
	msgTooLong      = "Longer than maximum length 100."
	msgInvalidJSON  = "invalid JSON body"
	msgInternal     = "internal server error"
)

// errorResponse is the body of every non-validation failure
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse is the body of successful writes
type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, messageResponse{Message: message})
}

// writeFieldErrors writes a 400 keyed by field name
func writeFieldErrors(w http.ResponseWriter, fields map[string][]string) {
	writeJSON(w, http.StatusBadRequest, fields)
}

// decodeJSON reads a JSON body into v, rejecting empty and trailing content
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("unexpected data after JSON body")
	}
	return nil
}

// pathID reads the numeric {id} route parameter
func pathID(r *http.Request) int {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return 0
	}
	return id
}

// writeServiceError maps service errors onto HTTP responses
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		fieldErr         *models.FieldError
		toppingDuplicate *toppingservice.DuplicateNameError
		pizzaDuplicate   *pizzaservice.DuplicateNameError
		missingTopping   *pizzaservice.MissingToppingError
	)

	switch {
	case errors.As(err, &fieldErr):
		writeFieldErrors(w, map[string][]string{fieldErr.Field: {fieldMessage(fieldErr.Err)}})
	case errors.As(err, &toppingDuplicate):
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Topping '%s' already exists.", toppingDuplicate.Name))
	case errors.As(err, &pizzaDuplicate):
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Pizza '%s' already exists.", pizzaDuplicate.Name))
	case errors.As(err, &missingTopping):
		writeError(w, http.StatusNotFound, fmt.Sprintf("Topping with ID %d not found", missingTopping.ToppingID))
	case errors.Is(err, toppingservice.ErrToppingNotFound), errors.Is(err, toppingservice.ErrInvalidToppingID):
		writeError(w, http.StatusNotFound, "Topping not found")
	case errors.Is(err, pizzaservice.ErrPizzaNotFound), errors.Is(err, pizzaservice.ErrInvalidPizzaID):
		writeError(w, http.StatusNotFound, "Pizza not found")
	default:
		s.logger.ErrorContext(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, msgInternal)
	}
}

func fieldMessage(err error) string {
	switch {
	case errors.Is(err, models.ErrNameTooLong):
		return msgTooLong
	case errors.Is(err, models.ErrEmptyName):
		return msgMissingField
	default:
		return err.Error()
	}
}
