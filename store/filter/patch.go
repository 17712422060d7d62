package filter

import "fmt"

// Patch names the fields to change; nil fields are left alone. Preset is
// applied after SortBy and SortOrder, so it wins over them.
type Patch struct {
	Category   *string     `json:"category"`
	Brand      *string     `json:"brand"`
	Model      *string     `json:"model"`
	PriceRange *PriceRange `json:"priceRange"`
	SortBy     *string     `json:"sortBy"`
	SortOrder  *string     `json:"sortOrder"`
	Preset     *string     `json:"preset"`
}

// Compile validates every field and returns the update to run against a
// State. Nothing is applied when an error is returned.
func (p Patch) Compile() (func(s *State), error) {
	var (
		by     SortBy
		order  SortOrder
		preset Preset
		err    error
	)
	if p.SortBy != nil {
		if by, err = ParseSortBy(*p.SortBy); err != nil {
			return nil, err
		}
	}
	if p.SortOrder != nil {
		if order, err = ParseSortOrder(*p.SortOrder); err != nil {
			return nil, err
		}
	}
	if p.Preset != nil {
		var ok bool
		if preset, ok = PresetByName(*p.Preset); !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPreset, *p.Preset)
		}
	}

	return func(s *State) {
		if p.Category != nil {
			s.SetCategory(*p.Category)
		}
		if p.Brand != nil {
			s.SetBrand(*p.Brand)
		}
		if p.Model != nil {
			s.SetModel(*p.Model)
		}
		if p.PriceRange != nil {
			s.SetPriceRange(*p.PriceRange)
		}
		if p.SortBy != nil {
			s.SetSortBy(by)
		}
		if p.SortOrder != nil {
			s.SetSortOrder(order)
		}
		if p.Preset != nil {
			s.SetSortBy(preset.By)
			s.SetSortOrder(preset.Order)
		}
	}, nil
}
