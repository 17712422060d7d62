package resolvers

import (
	gql "github.com/graph-gophers/graphql-go"

	"storefront/core/money"
	gqlmodels "storefront/graphql/models"
	productEntity "storefront/model/entity/product"
	"storefront/service/listing"
	"storefront/store/cart"
	"storefront/store/catalog"
	"storefront/store/filter"
)

func toProduct(f *money.Formatter, p productEntity.Product) *gqlmodels.Product {
	return &gqlmodels.Product{
		ID:             gql.ID(p.ID),
		Name:           p.Name,
		Price:          p.Price,
		FormattedPrice: f.Price(p.Price),
		Image:          p.Image,
		Description:    p.Description,
		Category:       p.Category,
		Brand:          p.Brand,
		Model:          p.Model,
	}
}

func toPage(f *money.Formatter, page listing.Page) *gqlmodels.ProductPage {
	items := make([]*gqlmodels.Product, len(page.Items))
	for i, p := range page.Items {
		items[i] = toProduct(f, p)
	}
	return &gqlmodels.ProductPage{
		Items:       items,
		TotalItems:  int32(page.TotalItems),
		TotalPages:  int32(page.TotalPages),
		CurrentPage: int32(page.CurrentPage),
		PageSize:    int32(page.PageSize),
		HasPrev:     page.HasPrev(),
		HasNext:     page.HasNext(),
	}
}

func toFacets(c catalog.State) *gqlmodels.Facets {
	return &gqlmodels.Facets{
		Brands:           c.Brands,
		Models:           c.Models,
		BrandSearchQuery: c.BrandSearchQuery,
		ModelSearchQuery: c.ModelSearchQuery,
		FilteredBrands:   c.FilteredBrands,
		FilteredModels:   c.FilteredModels,
	}
}

func toCatalogStatus(c catalog.State) *gqlmodels.CatalogStatus {
	out := &gqlmodels.CatalogStatus{
		Status:       string(c.Status),
		ProductCount: int32(len(c.Items)),
		SearchQuery:  c.SearchQuery,
		CurrentPage:  int32(c.CurrentPage),
		PageSize:     int32(c.PageSize),
	}
	if c.Error != "" {
		msg := c.Error
		out.Error = &msg
	}
	return out
}

func toFilters(s filter.State) *gqlmodels.Filters {
	pr := &gqlmodels.PriceRange{Min: s.PriceRange.Min}
	if !s.PriceRange.Unbounded() {
		max := s.PriceRange.Max
		pr.Max = &max
	}
	out := &gqlmodels.Filters{
		Category:   s.Category,
		Brand:      s.Brand,
		Model:      s.Model,
		PriceRange: pr,
		SortBy:     string(s.SortBy),
		SortOrder:  string(s.SortOrder),
	}
	if p, ok := s.ActivePreset(); ok {
		name := p.Name
		out.Preset = &name
	}
	return out
}

func toCart(f *money.Formatter, s cart.State) *gqlmodels.Cart {
	items := make([]*gqlmodels.CartLine, len(s.Items))
	for i, l := range s.Items {
		items[i] = &gqlmodels.CartLine{
			Product:           toProduct(f, l.Product),
			Quantity:          int32(l.Quantity),
			Subtotal:          l.Subtotal(),
			FormattedSubtotal: f.Price(l.Subtotal()),
		}
	}
	return &gqlmodels.Cart{
		Items:          items,
		Count:          int32(s.Count()),
		Total:          s.Total,
		FormattedTotal: f.Price(s.Total),
	}
}
