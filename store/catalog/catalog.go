// Package catalog holds the fetched product snapshot together with its
// derived facets, the free-text search and the page cursor.
package catalog

import (
	"sort"
	"strings"

	productEntity "storefront/model/entity/product"
)

type Status string

const (
	StatusIdle      Status = "idle"
	StatusLoading   Status = "loading"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

const (
	DefaultPageSize = 12
	// DefaultFetchError is recorded when a failed fetch carries no message.
	DefaultFetchError = "Failed to fetch products"
)

type State struct {
	Items            []productEntity.Product `json:"items"`
	Status           Status                  `json:"status"`
	Error            string                  `json:"error,omitempty"`
	Brands           []string                `json:"brands"`
	Models           []string                `json:"models"`
	FilteredBrands   []string                `json:"filteredBrands"`
	FilteredModels   []string                `json:"filteredModels"`
	SearchQuery      string                  `json:"searchQuery"`
	CurrentPage      int                     `json:"currentPage"`
	PageSize         int                     `json:"pageSize"`
	BrandSearchQuery string                  `json:"brandSearchQuery"`
	ModelSearchQuery string                  `json:"modelSearchQuery"`
}

// NewState returns an idle catalog. pageSize <= 0 selects DefaultPageSize.
func NewState(pageSize int) *State {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &State{
		Items:          []productEntity.Product{},
		Status:         StatusIdle,
		Brands:         []string{},
		Models:         []string{},
		FilteredBrands: []string{},
		FilteredModels: []string{},
		CurrentPage:    1,
		PageSize:       pageSize,
	}
}

// RequestFetch marks a fetch as in flight. It does not check the current
// status; callers only invoke it while the catalog is idle or failed.
func (s *State) RequestFetch() {
	s.Status = StatusLoading
}

// CanFetch reports whether a new fetch may be requested.
func (s *State) CanFetch() bool {
	return s.Status == StatusIdle || s.Status == StatusFailed
}

// FetchSucceeded replaces the snapshot and recomputes the facets. The
// filtered facet lists are reset to the full lists even if a facet search
// substring is set.
func (s *State) FetchSucceeded(items []productEntity.Product) {
	s.Status = StatusSucceeded
	s.Error = ""
	s.Items = make([]productEntity.Product, len(items))
	copy(s.Items, items)

	s.Brands = distinctSorted(items, func(p productEntity.Product) string { return p.Brand })
	s.Models = distinctSorted(items, func(p productEntity.Product) string { return p.Model })
	s.FilteredBrands = append([]string{}, s.Brands...)
	s.FilteredModels = append([]string{}, s.Models...)
}

// FetchFailed records the failure message, or DefaultFetchError when empty.
func (s *State) FetchFailed(message string) {
	s.Status = StatusFailed
	if message == "" {
		message = DefaultFetchError
	}
	s.Error = message
}

// SetSearchQuery sets the free-text query and goes back to the first page.
func (s *State) SetSearchQuery(q string) {
	s.SearchQuery = q
	s.CurrentPage = 1
}

// SetCurrentPage stores the page cursor as given.
func (s *State) SetCurrentPage(n int) {
	s.CurrentPage = n
}

func (s *State) SetBrandSearchQuery(q string) {
	s.BrandSearchQuery = q
	s.FilteredBrands = matchFacets(s.Brands, q)
}

func (s *State) SetModelSearchQuery(q string) {
	s.ModelSearchQuery = q
	s.FilteredModels = matchFacets(s.Models, q)
}

// Product looks up id in the current snapshot.
func (s *State) Product(id string) (productEntity.Product, bool) {
	for _, p := range s.Items {
		if p.ID == id {
			return p, true
		}
	}
	return productEntity.Product{}, false
}

// Snapshot returns a copy that shares no slices with s.
func (s *State) Snapshot() State {
	out := *s
	out.Items = append([]productEntity.Product{}, s.Items...)
	out.Brands = append([]string{}, s.Brands...)
	out.Models = append([]string{}, s.Models...)
	out.FilteredBrands = append([]string{}, s.FilteredBrands...)
	out.FilteredModels = append([]string{}, s.FilteredModels...)
	return out
}

func distinctSorted(items []productEntity.Product, field func(productEntity.Product) string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, p := range items {
		v := field(p)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func matchFacets(facets []string, q string) []string {
	needle := strings.ToLower(q)
	out := make([]string, 0, len(facets))
	for _, f := range facets {
		if strings.Contains(strings.ToLower(f), needle) {
			out = append(out, f)
		}
	}
	return out
}
