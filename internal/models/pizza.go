package models

// Pizza is a named combination of toppings
type Pizza struct {
	ID       int
	Name     string
	Toppings []*Topping // Ordered by topping ID
}

// ToppingIDs returns the IDs of the pizza's toppings in order
func (p *Pizza) ToppingIDs() []int {
	ids := make([]int, len(p.Toppings))
	for i, t := range p.Toppings {
		ids[i] = t.ID
	}
	return ids
}
