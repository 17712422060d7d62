package storefront

import "storefront/store/filter"

// Filters returns a copy of the filter partition.
func (s *Storefront) Filters() filter.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.filters
}

// UpdateFilters applies fn to the filter partition as one transition.
func (s *Storefront) UpdateFilters(fn func(f *filter.State)) filter.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.filters)
	return *s.filters
}

func (s *Storefront) SetCategory(v string) filter.State {
	return s.UpdateFilters(func(f *filter.State) { f.SetCategory(v) })
}

func (s *Storefront) SetBrand(v string) filter.State {
	return s.UpdateFilters(func(f *filter.State) { f.SetBrand(v) })
}

func (s *Storefront) SetModel(v string) filter.State {
	return s.UpdateFilters(func(f *filter.State) { f.SetModel(v) })
}

func (s *Storefront) SetPriceRange(r filter.PriceRange) filter.State {
	return s.UpdateFilters(func(f *filter.State) { f.SetPriceRange(r) })
}

func (s *Storefront) SetSortBy(by filter.SortBy) filter.State {
	return s.UpdateFilters(func(f *filter.State) { f.SetSortBy(by) })
}

func (s *Storefront) SetSortOrder(o filter.SortOrder) filter.State {
	return s.UpdateFilters(func(f *filter.State) { f.SetSortOrder(o) })
}

// ApplySortPreset sets sort key and order from a named preset.
func (s *Storefront) ApplySortPreset(name string) (filter.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := s.filters.ApplyPreset(name)
	return *s.filters, err
}

func (s *Storefront) ResetFilters() filter.State {
	return s.UpdateFilters(func(f *filter.State) { f.Reset() })
}
