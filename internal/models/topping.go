package models

// MaxNameLength is the longest name a topping or pizza may carry
const MaxNameLength = 100

// Topping is a single ingredient that can be put on a pizza
type Topping struct {
	ID   int    // Unique identifier for the topping
	Name string // Display name, unique ignoring case and surrounding spaces
}
