package storefront

import (
	"storefront/core/money"
	productEntity "storefront/model/entity/product"
	"storefront/service/listing"
	"storefront/store/cart"
	"storefront/store/catalog"
	"storefront/store/filter"
)

type ProductResponse struct {
	productEntity.Product
	FormattedPrice string `json:"formattedPrice"`
}

type PageResponse struct {
	Items       []ProductResponse `json:"items"`
	TotalItems  int               `json:"totalItems"`
	TotalPages  int               `json:"totalPages"`
	CurrentPage int               `json:"currentPage"`
	PageSize    int               `json:"pageSize"`
	Status      catalog.Status    `json:"status"`
	Error       string            `json:"error,omitempty"`
	SearchQuery string            `json:"searchQuery"`
	Filters     filter.State      `json:"filters"`
}

type CatalogResponse struct {
	Status           catalog.Status `json:"status"`
	Error            string         `json:"error,omitempty"`
	ProductCount     int            `json:"productCount"`
	SearchQuery      string         `json:"searchQuery"`
	CurrentPage      int            `json:"currentPage"`
	PageSize         int            `json:"pageSize"`
	Brands           []string       `json:"brands"`
	Models           []string       `json:"models"`
	BrandSearchQuery string         `json:"brandSearchQuery"`
	ModelSearchQuery string         `json:"modelSearchQuery"`
	FilteredBrands   []string       `json:"filteredBrands"`
	FilteredModels   []string       `json:"filteredModels"`
}

type CartLineResponse struct {
	ProductResponse
	Quantity          int     `json:"quantity"`
	Subtotal          float64 `json:"subtotal"`
	FormattedSubtotal string  `json:"formattedSubtotal"`
}

type CartResponse struct {
	Items          []CartLineResponse `json:"items"`
	Count          int                `json:"count"`
	Total          float64            `json:"total"`
	FormattedTotal string             `json:"formattedTotal"`
}

func toProduct(f *money.Formatter, p productEntity.Product) ProductResponse {
	return ProductResponse{Product: p, FormattedPrice: f.Price(p.Price)}
}

func toPage(f *money.Formatter, page listing.Page, c catalog.State, fs filter.State) PageResponse {
	items := make([]ProductResponse, len(page.Items))
	for i, p := range page.Items {
		items[i] = toProduct(f, p)
	}
	return PageResponse{
		Items:       items,
		TotalItems:  page.TotalItems,
		TotalPages:  page.TotalPages,
		CurrentPage: page.CurrentPage,
		PageSize:    page.PageSize,
		Status:      c.Status,
		Error:       c.Error,
		SearchQuery: c.SearchQuery,
		Filters:     fs,
	}
}

func toCatalog(c catalog.State) CatalogResponse {
	return CatalogResponse{
		Status:           c.Status,
		Error:            c.Error,
		ProductCount:     len(c.Items),
		SearchQuery:      c.SearchQuery,
		CurrentPage:      c.CurrentPage,
		PageSize:         c.PageSize,
		Brands:           c.Brands,
		Models:           c.Models,
		BrandSearchQuery: c.BrandSearchQuery,
		ModelSearchQuery: c.ModelSearchQuery,
		FilteredBrands:   c.FilteredBrands,
		FilteredModels:   c.FilteredModels,
	}
}

func toCart(f *money.Formatter, s cart.State) CartResponse {
	items := make([]CartLineResponse, len(s.Items))
	for i, l := range s.Items {
		items[i] = CartLineResponse{
			ProductResponse:   toProduct(f, l.Product),
			Quantity:          l.Quantity,
			Subtotal:          l.Subtotal(),
			FormattedSubtotal: f.Price(l.Subtotal()),
		}
	}
	return CartResponse{
		Items:          items,
		Count:          s.Count(),
		Total:          s.Total,
		FormattedTotal: f.Price(s.Total),
	}
}
