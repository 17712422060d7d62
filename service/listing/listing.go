// Package listing derives the visible product page from the catalog and
// filter partitions. Nothing here is stored; Build is recomputed on every read.
package listing

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	productEntity "storefront/model/entity/product"
	"storefront/store/catalog"
	"storefront/store/filter"
)

// Page is the visible slice of the filtered and sorted catalog.
type Page struct {
	Items       []productEntity.Product `json:"items"`
	TotalItems  int                     `json:"totalItems"`
	TotalPages  int                     `json:"totalPages"`
	CurrentPage int                     `json:"currentPage"`
	PageSize    int                     `json:"pageSize"`
}

// HasPrev reports whether a page before the current one exists.
func (p Page) HasPrev() bool { return p.CurrentPage > 1 }

// HasNext reports whether a page after the current one exists.
func (p Page) HasNext() bool { return p.CurrentPage < p.TotalPages }

// Pages returns 1..TotalPages for page links.
func (p Page) Pages() []int {
	out := make([]int, p.TotalPages)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

// Lister builds pages with names collated for one locale.
type Lister struct {
	tag language.Tag
}

// New returns a Lister for the BCP 47 locale, falling back to Turkish when it
// does not parse.
func New(locale string) *Lister {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Turkish
	}
	return &Lister{tag: tag}
}

// Build filters, sorts and paginates the catalog snapshot.
func (l *Lister) Build(c catalog.State, f filter.State) Page {
	matched := Filter(c.Items, c.SearchQuery, f)
	l.Sort(matched, f.SortBy, f.SortOrder)
	return Page{
		Items:       paginate(matched, c.CurrentPage, c.PageSize),
		TotalItems:  len(matched),
		TotalPages:  TotalPages(len(matched), c.PageSize),
		CurrentPage: c.CurrentPage,
		PageSize:    c.PageSize,
	}
}

// Filter keeps the products matching the query and every set constraint. The
// query matches name, brand, model or description, case-insensitively.
func Filter(items []productEntity.Product, query string, f filter.State) []productEntity.Product {
	needle := strings.ToLower(query)
	out := make([]productEntity.Product, 0, len(items))
	for _, p := range items {
		if needle != "" && !matchesQuery(p, needle) {
			continue
		}
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.Brand != "" && p.Brand != f.Brand {
			continue
		}
		if f.Model != "" && p.Model != f.Model {
			continue
		}
		if !f.PriceRange.Contains(p.Price) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesQuery(p productEntity.Product, needle string) bool {
	for _, field := range []string{p.Name, p.Brand, p.Model, p.Description} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// Sort orders items in place. SortNone keeps the existing order.
func (l *Lister) Sort(items []productEntity.Product, by filter.SortBy, order filter.SortOrder) {
	factor := 1
	if order == filter.OrderDesc {
		factor = -1
	}
	switch by {
	case filter.SortPrice:
		sort.SliceStable(items, func(i, j int) bool {
			if factor > 0 {
				return items[i].Price < items[j].Price
			}
			return items[i].Price > items[j].Price
		})
	case filter.SortName:
		// Collators are not safe for concurrent use, so each sort gets its own.
		col := collate.New(l.tag)
		sort.SliceStable(items, func(i, j int) bool {
			return col.CompareString(items[i].Name, items[j].Name)*factor < 0
		})
	}
}
