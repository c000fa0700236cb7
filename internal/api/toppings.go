package api

import (
	"net/http"

	"github.com/thenoetrevino/pizzeria/internal/models"
	toppingservice "github.com/thenoetrevino/pizzeria/internal/services/topping"
)

// toppingResponse is the wire shape of a topping
type toppingResponse struct {
	ToppingID int    `json:"topping_id"`
	Name      string `json:"name"`
}

// toppingRequest is the body of topping create and update calls.
// Name is a pointer so a missing field can be told apart from an empty one.
type toppingRequest struct {
	Name *string `json:"name"`
}

func toToppingResponse(t *models.Topping) toppingResponse {
	return toppingResponse{ToppingID: t.ID, Name: t.Name}
}

func (s *Server) listToppings(w http.ResponseWriter, r *http.Request) {
	toppings, err := s.app.ToppingService.ListToppings(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	resp := make([]toppingResponse, len(toppings))
	for i, t := range toppings {
		resp[i] = toToppingResponse(t)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) createTopping(w http.ResponseWriter, r *http.Request) {
	name, ok := readToppingName(w, r)
	if !ok {
		return
	}

	if _, err := s.app.ToppingService.CreateTopping(r.Context(), toppingservice.CreateToppingRequest{Name: name}); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	s.metrics.IncToppingsCreated()
	writeMessage(w, http.StatusCreated, "New Topping added successfully")
}

func (s *Server) updateTopping(w http.ResponseWriter, r *http.Request) {
	name, ok := readToppingName(w, r)
	if !ok {
		return
	}

	err := s.app.ToppingService.UpdateTopping(r.Context(), toppingservice.UpdateToppingRequest{
		ID:   pathID(r),
		Name: name,
	})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Topping updated successfully")
}

func (s *Server) deleteTopping(w http.ResponseWriter, r *http.Request) {
	if err := s.app.ToppingService.DeleteTopping(r.Context(), pathID(r)); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Topping removed successfully")
}

// readToppingName decodes a topping body, writing the 400 itself on failure
func readToppingName(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req toppingRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidJSON)
		return "", false
	}
	if req.Name == nil {
		writeFieldErrors(w, map[string][]string{"name": {msgMissingField}})
		return "", false
	}
	return *req.Name, true
}
