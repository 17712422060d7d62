// Package filter holds the user-selected listing constraints. Fields are
// independent: setting one never clears another.
package filter

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
)

type SortBy string

const (
	SortNone  SortBy = "none"
	SortName  SortBy = "name"
	SortPrice SortBy = "price"
)

type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

var (
	ErrInvalidSortBy    = errors.New("invalid sort key")
	ErrInvalidSortOrder = errors.New("invalid sort order")
	ErrInvalidPreset    = errors.New("invalid sort preset")
)

// PriceRange is inclusive on both ends. Max is +Inf when unbounded.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether price lies within the range.
func (r PriceRange) Contains(price float64) bool {
	return price >= r.Min && price <= r.Max
}

// Unbounded reports whether the range has no upper limit.
func (r PriceRange) Unbounded() bool {
	return math.IsInf(r.Max, 1)
}

type priceRangeJSON struct {
	Min float64  `json:"min"`
	Max *float64 `json:"max"`
}

// MarshalJSON writes an unbounded Max as null.
func (r PriceRange) MarshalJSON() ([]byte, error) {
	out := priceRangeJSON{Min: r.Min}
	if !r.Unbounded() {
		out.Max = &r.Max
	}
	return json.Marshal(out)
}

// UnmarshalJSON reads a null or missing Max as unbounded.
func (r *PriceRange) UnmarshalJSON(data []byte) error {
	var in priceRangeJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	r.Min = in.Min
	r.Max = math.Inf(1)
	if in.Max != nil {
		r.Max = *in.Max
	}
	return nil
}

// DefaultPriceRange is [0, +Inf].
func DefaultPriceRange() PriceRange {
	return PriceRange{Min: 0, Max: math.Inf(1)}
}

type State struct {
	Category   string     `json:"category"`
	Brand      string     `json:"brand"`
	Model      string     `json:"model"`
	PriceRange PriceRange `json:"priceRange"`
	SortBy     SortBy     `json:"sortBy"`
	SortOrder  SortOrder  `json:"sortOrder"`
}

// DefaultState returns the state every reset goes back to.
func DefaultState() *State {
	return &State{
		PriceRange: DefaultPriceRange(),
		SortBy:     SortNone,
		SortOrder:  OrderAsc,
	}
}

func (s *State) SetCategory(category string) { s.Category = category }
func (s *State) SetBrand(brand string)       { s.Brand = brand }
func (s *State) SetModel(model string)       { s.Model = model }
func (s *State) SetPriceRange(r PriceRange)  { s.PriceRange = r }
func (s *State) SetSortBy(by SortBy)         { s.SortBy = by }
func (s *State) SetSortOrder(o SortOrder)    { s.SortOrder = o }

// Reset restores every field to its default.
func (s *State) Reset() {
	*s = *DefaultState()
}

// ParseSortBy accepts none, name or price (case-insensitive). Empty means none.
func ParseSortBy(v string) (SortBy, error) {
	switch SortBy(strings.ToLower(strings.TrimSpace(v))) {
	case "", SortNone:
		return SortNone, nil
	case SortName:
		return SortName, nil
	case SortPrice:
		return SortPrice, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSortBy, v)
}

// ParseSortOrder accepts asc or desc (case-insensitive). Empty means asc.
func ParseSortOrder(v string) (SortOrder, error) {
	switch SortOrder(strings.ToLower(strings.TrimSpace(v))) {
	case "", OrderAsc:
		return OrderAsc, nil
	case OrderDesc:
		return OrderDesc, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSortOrder, v)
}

// Preset is one of the listing's sort choices.
type Preset struct {
	Name  string
	Label string
	By    SortBy
	Order SortOrder
}

// Presets lists the sort choices offered by the listing views.
var Presets = []Preset{
	{Name: "old-to-new", Label: "Old to new", By: SortNone, Order: OrderAsc},
	{Name: "new-to-old", Label: "New to old", By: SortNone, Order: OrderDesc},
	{Name: "price-desc", Label: "Price high to low", By: SortPrice, Order: OrderDesc},
	{Name: "price-asc", Label: "Price low to high", By: SortPrice, Order: OrderAsc},
}

// PresetByName finds a preset by its Name.
func PresetByName(name string) (Preset, bool) {
	for _, p := range Presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// ApplyPreset sets sort key and order from a named preset.
func (s *State) ApplyPreset(name string) error {
	p, ok := PresetByName(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidPreset, name)
	}
	s.SortBy = p.By
	s.SortOrder = p.Order
	return nil
}

// ActivePreset returns the preset matching the current sort, if any.
func (s State) ActivePreset() (Preset, bool) {
	for _, p := range Presets {
		if p.By == s.SortBy && p.Order == s.SortOrder {
			return p, true
		}
	}
	return Preset{}, false
}
