package api

import (
	"net/http"

	"github.com/thenoetrevino/pizzeria/internal/models"
	pizzaservice "github.com/thenoetrevino/pizzeria/internal/services/pizza"
)

type pizzaResponse struct {
	PizzaID  int               `json:"pizza_id"`
	Name     string            `json:"name"`
	Toppings []toppingResponse `json:"toppings"`
}

// toppingReference points at an existing topping inside a pizza body
type toppingReference struct {
	ToppingID *int `json:"topping_id"`
}

type pizzaRequest struct {
	Name     *string            `json:"name"`
	Toppings []toppingReference `json:"toppings"`
}

func toPizzaResponse(p *models.Pizza) pizzaResponse {
	toppings := make([]toppingResponse, len(p.Toppings))
	for i, t := range p.Toppings {
		toppings[i] = toToppingResponse(t)
	}
	return pizzaResponse{PizzaID: p.ID, Name: p.Name, Toppings: toppings}
}

func (s *Server) listPizzas(w http.ResponseWriter, r *http.Request) {
	pizzas, err := s.app.PizzaService.ListPizzas(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	resp := make([]pizzaResponse, len(pizzas))
	for i, p := range pizzas {
		resp[i] = toPizzaResponse(p)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) createPizza(w http.ResponseWriter, r *http.Request) {
	name, toppingIDs, ok := readPizza(w, r)
	if !ok {
		return
	}

	_, err := s.app.PizzaService.CreatePizza(r.Context(), pizzaservice.CreatePizzaRequest{
		Name:       name,
		ToppingIDs: toppingIDs,
	})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	s.metrics.IncPizzasCreated()
	writeMessage(w, http.StatusCreated, "New Pizza added successfully")
}

func (s *Server) updatePizza(w http.ResponseWriter, r *http.Request) {
	name, toppingIDs, ok := readPizza(w, r)
	if !ok {
		return
	}

	err := s.app.PizzaService.UpdatePizza(r.Context(), pizzaservice.UpdatePizzaRequest{
		ID:         pathID(r),
		Name:       name,
		ToppingIDs: toppingIDs,
	})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Pizza updated successfully")
}

func (s *Server) deletePizza(w http.ResponseWriter, r *http.Request) {
	if err := s.app.PizzaService.DeletePizza(r.Context(), pathID(r)); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Pizza removed successfully")
}

// readPizza decodes a pizza body, writing the 400 itself on failure
func readPizza(w http.ResponseWriter, r *http.Request) (string, []int, bool) {
	var req pizzaRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidJSON)
		return "", nil, false
	}

	fields := make(map[string][]string)
	if req.Name == nil {
		fields["name"] = []string{msgMissingField}
	}
	ids := make([]int, 0, len(req.Toppings))
	for _, ref := range req.Toppings {
		if ref.ToppingID == nil {
			fields["toppings"] = []string{"topping_id: " + msgMissingField}
			break
		}
		ids = append(ids, *ref.ToppingID)
	}
	if len(fields) > 0 {
		writeFieldErrors(w, fields)
		return "", nil, false
	}
	return *req.Name, ids, true
}
