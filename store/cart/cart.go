// Package cart holds the cart state partition. Transitions are pure: they
// change the in-memory state and recompute the total, nothing else.
// Persisting the lines is the caller's job after each transition.
package cart

import (
	cartEntity "storefront/model/entity/cart"
	productEntity "storefront/model/entity/product"
)

// State is the cart partition. Total is always the sum over Items and is only
// written by the transitions below.
type State struct {
	Items []cartEntity.Line `json:"items"`
	Total float64           `json:"total"`
}

// EmptyState returns a cart with no lines.
func EmptyState() *State {
	return &State{Items: []cartEntity.Line{}}
}

// New rehydrates a cart from persisted lines. Lines with a non-positive
// quantity are dropped and repeated ids are folded into the first line.
func New(lines []cartEntity.Line) *State {
	s := EmptyState()
	for _, l := range lines {
		if l.Quantity <= 0 {
			continue
		}
		if i := s.index(l.ID); i >= 0 {
			s.Items[i].Quantity += l.Quantity
			continue
		}
		s.Items = append(s.Items, l)
	}
	s.recalculate()
	return s
}

// Add appends a line with quantity 1, or increments the existing line for the
// product id. An existing line keeps the product fields captured when it was
// first added.
func (s *State) Add(p productEntity.Product) {
	if i := s.index(p.ID); i >= 0 {
		s.Items[i].Quantity++
	} else {
		s.Items = append(s.Items, cartEntity.Line{Product: p, Quantity: 1})
	}
	s.recalculate()
}

// UpdateQuantity sets the quantity of an existing line, clamped at zero. A
// line that ends at zero is removed. Unknown ids are ignored.
func (s *State) UpdateQuantity(id string, quantity int) {
	if i := s.index(id); i >= 0 {
		s.Items[i].Quantity = max(0, quantity)
		if s.Items[i].Quantity == 0 {
			s.Items = append(s.Items[:i], s.Items[i+1:]...)
		}
	}
	s.recalculate()
}

// Remove drops the line for id if present.
func (s *State) Remove(id string) {
	if i := s.index(id); i >= 0 {
		s.Items = append(s.Items[:i], s.Items[i+1:]...)
	}
	s.recalculate()
}

// Clear empties the cart.
func (s *State) Clear() {
	s.Items = []cartEntity.Line{}
	s.recalculate()
}

// Line returns the line for id.
func (s *State) Line(id string) (cartEntity.Line, bool) {
	if i := s.index(id); i >= 0 {
		return s.Items[i], true
	}
	return cartEntity.Line{}, false
}

// Count returns the number of units across all lines.
func (s *State) Count() int {
	n := 0
	for _, l := range s.Items {
		n += l.Quantity
	}
	return n
}

// Lines returns a copy of the lines in insertion order.
func (s *State) Lines() []cartEntity.Line {
	out := make([]cartEntity.Line, len(s.Items))
	copy(out, s.Items)
	return out
}

// Snapshot returns a deep copy of the state.
func (s *State) Snapshot() State {
	return State{Items: s.Lines(), Total: s.Total}
}

// CalculateTotal sums price × quantity over lines.
func CalculateTotal(lines []cartEntity.Line) float64 {
	var total float64
	for _, l := range lines {
		total += l.Subtotal()
	}
	return total
}

func (s *State) recalculate() {
	s.Total = CalculateTotal(s.Items)
}

func (s *State) index(id string) int {
	for i := range s.Items {
		if s.Items[i].ID == id {
			return i
		}
	}
	return -1
}
