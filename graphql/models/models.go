package models

import gql "github.com/graph-gophers/graphql-go"

type Product struct {
	ID             gql.ID
	Name           string
	Price          float64
	FormattedPrice string
	Image          string
	Description    string
	Category       string
	Brand          string
	Model          string
}

type ProductPage struct {
	Items       []*Product
	TotalItems  int32
	TotalPages  int32
	CurrentPage int32
	PageSize    int32
	HasPrev     bool
	HasNext     bool
}

type Facets struct {
	Brands           []string
	Models           []string
	BrandSearchQuery string
	ModelSearchQuery string
	FilteredBrands   []string
	FilteredModels   []string
}

type PriceRange struct {
	Min float64
	Max *float64
}

type Filters struct {
	Category   string
	Brand      string
	Model      string
	PriceRange *PriceRange
	SortBy     string
	SortOrder  string
	Preset     *string
}

type SortPreset struct {
	Name  string
	Label string
}

type CartLine struct {
	Product           *Product
	Quantity          int32
	Subtotal          float64
	FormattedSubtotal string
}

type Cart struct {
	Items          []*CartLine
	Count          int32
	Total          float64
	FormattedTotal string
}

type CatalogStatus struct {
	Status       string
	Error        *string
	ProductCount int32
	SearchQuery  string
	CurrentPage  int32
	PageSize     int32
}
