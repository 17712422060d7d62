package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	productEntity "storefront/model/entity/product"
)

func fixtures() []productEntity.Product {
	return []productEntity.Product{
		{ID: "1", Name: "Model S", Price: 100, Brand: "Tesla", Model: "S"},
		{ID: "2", Name: "Corolla", Price: 200, Brand: "Toyota", Model: "Corolla"},
		{ID: "3", Name: "Model 3", Price: 150, Brand: "Tesla", Model: "3"},
		{ID: "4", Name: "Civic", Price: 120, Brand: "Honda", Model: "Civic"},
		{ID: "5", Name: "Corolla Cross", Price: 220, Brand: "Toyota", Model: "Corolla"},
	}
}

func TestNewState(t *testing.T) {
	s := NewState(0)
	assert.Equal(t, StatusIdle, s.Status)
	assert.Equal(t, DefaultPageSize, s.PageSize)
	assert.Equal(t, 1, s.CurrentPage)
	assert.Empty(t, s.Items)
	assert.True(t, s.CanFetch())

	assert.Equal(t, 5, NewState(5).PageSize)
}

func TestFetchLifecycle(t *testing.T) {
	s := NewState(12)
	s.RequestFetch()
	assert.Equal(t, StatusLoading, s.Status)
	assert.False(t, s.CanFetch())

	s.FetchSucceeded(fixtures())
	assert.Equal(t, StatusSucceeded, s.Status)
	assert.False(t, s.CanFetch())
	assert.Len(t, s.Items, 5)
	assert.Equal(t, []string{"Honda", "Tesla", "Toyota"}, s.Brands)
	assert.Equal(t, []string{"3", "Civic", "Corolla", "S"}, s.Models)
	assert.Equal(t, s.Brands, s.FilteredBrands)
	assert.Equal(t, s.Models, s.FilteredModels)
}

func TestFetchSucceeded_ReplacesWholesale(t *testing.T) {
	s := NewState(12)
	s.FetchSucceeded(fixtures())
	s.FetchSucceeded([]productEntity.Product{{ID: "9", Brand: "Fiat", Model: "Panda"}})

	require.Len(t, s.Items, 1)
	assert.Equal(t, "9", s.Items[0].ID)
	assert.Equal(t, []string{"Fiat"}, s.Brands)
	assert.Equal(t, []string{"Panda"}, s.Models)
}

func TestFetchSucceeded_DoesNotReapplyFacetSearch(t *testing.T) {
	s := NewState(12)
	s.FetchSucceeded(fixtures())
	s.SetBrandSearchQuery("to")
	require.Equal(t, []string{"Toyota"}, s.FilteredBrands)

	s.FetchSucceeded(fixtures())
	assert.Equal(t, "to", s.BrandSearchQuery)
	assert.Equal(t, []string{"Honda", "Tesla", "Toyota"}, s.FilteredBrands)
}

func TestFetchFailed(t *testing.T) {
	s := NewState(12)
	s.RequestFetch()
	s.FetchFailed("boom")
	assert.Equal(t, StatusFailed, s.Status)
	assert.Equal(t, "boom", s.Error)
	assert.True(t, s.CanFetch())

	s.FetchFailed("")
	assert.Equal(t, DefaultFetchError, s.Error)
}

func TestSetSearchQuery_ResetsPage(t *testing.T) {
	for _, page := range []int{1, 2, 7, -3, 0} {
		s := NewState(12)
		s.SetCurrentPage(page)
		s.SetSearchQuery("corolla")
		assert.Equal(t, 1, s.CurrentPage)
		assert.Equal(t, "corolla", s.SearchQuery)
	}
}

func TestSetCurrentPage_Verbatim(t *testing.T) {
	s := NewState(12)
	s.SetCurrentPage(99)
	assert.Equal(t, 99, s.CurrentPage)
	s.SetCurrentPage(0)
	assert.Equal(t, 0, s.CurrentPage)
}

func TestFacetSearch(t *testing.T) {
	s := NewState(12)
	s.FetchSucceeded(fixtures())

	s.SetBrandSearchQuery("T")
	assert.Equal(t, []string{"Tesla", "Toyota"}, s.FilteredBrands)
	s.SetBrandSearchQuery("xyz")
	assert.Empty(t, s.FilteredBrands)
	s.SetBrandSearchQuery("")
	assert.Equal(t, s.Brands, s.FilteredBrands)

	s.SetModelSearchQuery("C")
	assert.Equal(t, []string{"Civic", "Corolla"}, s.FilteredModels)
	assert.Equal(t, []string{"Honda", "Tesla", "Toyota"}, s.Brands)
}

func TestProductLookup(t *testing.T) {
	s := NewState(12)
	_, ok := s.Product("1")
	assert.False(t, ok)

	s.FetchSucceeded(fixtures())
	p, ok := s.Product("4")
	require.True(t, ok)
	assert.Equal(t, "Civic", p.Name)
}

func TestSnapshot_IsIndependent(t *testing.T) {
	s := NewState(12)
	s.FetchSucceeded(fixtures())
	snap := s.Snapshot()
	s.SetBrandSearchQuery("honda")
	s.FetchSucceeded(nil)

	assert.Len(t, snap.Items, 5)
	assert.Len(t, snap.FilteredBrands, 3)
}
