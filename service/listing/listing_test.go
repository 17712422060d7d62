package listing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	productEntity "storefront/model/entity/product"
	"storefront/store/catalog"
	"storefront/store/filter"
)

func ids(items []productEntity.Product) []string {
	out := make([]string, len(items))
	for i, p := range items {
		out[i] = p.ID
	}
	return out
}

func names(items []productEntity.Product) []string {
	out := make([]string, len(items))
	for i, p := range items {
		out[i] = p.Name
	}
	return out
}

func catalogWith(items ...productEntity.Product) catalog.State {
	c := catalog.NewState(12)
	c.FetchSucceeded(items)
	return *c
}

func TestFilter_Query(t *testing.T) {
	items := []productEntity.Product{
		{ID: "1", Name: "Red Shoe", Brand: "Nike", Model: "Air", Description: "running"},
		{ID: "2", Name: "Blue Hat", Brand: "Adidas", Model: "Cap", Description: "summer"},
		{ID: "3", Name: "Green Scarf", Brand: "Puma", Model: "Wool", Description: "winter shoe-lace free"},
	}
	f := *filter.DefaultState()

	assert.Equal(t, []string{"1", "2", "3"}, ids(Filter(items, "", f)))
	assert.Equal(t, []string{"1", "3"}, ids(Filter(items, "SHOE", f)))
	assert.Equal(t, []string{"2"}, ids(Filter(items, "adi", f)))
	assert.Equal(t, []string{"3"}, ids(Filter(items, "wool", f)))
	assert.Empty(t, Filter(items, "nothing", f))
}

func TestFilter_Constraints(t *testing.T) {
	items := []productEntity.Product{
		{ID: "1", Category: "cars", Brand: "Tesla", Model: "S", Price: 100},
		{ID: "2", Category: "cars", Brand: "Tesla", Model: "3", Price: 50},
		{ID: "3", Category: "bikes", Brand: "Tesla", Model: "S", Price: 75},
		{ID: "4", Category: "cars", Brand: "Ford", Model: "S", Price: 75},
	}
	f := *filter.DefaultState()
	f.SetCategory("cars")
	assert.Equal(t, []string{"1", "2", "4"}, ids(Filter(items, "", f)))

	f.SetBrand("Tesla")
	assert.Equal(t, []string{"1", "2"}, ids(Filter(items, "", f)))

	f.SetModel("S")
	assert.Equal(t, []string{"1"}, ids(Filter(items, "", f)))

	f.Reset()
	f.SetPriceRange(filter.PriceRange{Min: 50, Max: 75})
	assert.Equal(t, []string{"2", "3", "4"}, ids(Filter(items, "", f)))
}

func TestSort_PriceDescending(t *testing.T) {
	items := []productEntity.Product{{ID: "a", Price: 100}, {ID: "b", Price: 200}}
	New("tr").Sort(items, filter.SortPrice, filter.OrderDesc)
	assert.Equal(t, []string{"b", "a"}, ids(items))

	New("tr").Sort(items, filter.SortPrice, filter.OrderAsc)
	assert.Equal(t, []string{"a", "b"}, ids(items))
}

func TestSort_NoneKeepsOrder(t *testing.T) {
	items := []productEntity.Product{{ID: "c", Price: 3}, {ID: "a", Price: 1}, {ID: "b", Price: 2}}
	New("tr").Sort(items, filter.SortNone, filter.OrderDesc)
	assert.Equal(t, []string{"c", "a", "b"}, ids(items))
}

func TestSort_PriceIsStable(t *testing.T) {
	items := []productEntity.Product{{ID: "1", Price: 5}, {ID: "2", Price: 1}, {ID: "3", Price: 5}, {ID: "4", Price: 1}}
	New("tr").Sort(items, filter.SortPrice, filter.OrderAsc)
	assert.Equal(t, []string{"2", "4", "1", "3"}, ids(items))
}

func TestSort_NameUsesCollation(t *testing.T) {
	items := []productEntity.Product{
		{ID: "1", Name: "Zeytin"},
		{ID: "2", Name: "Çay"},
		{ID: "3", Name: "Dut"},
		{ID: "4", Name: "Cam"},
	}
	l := New("tr")
	l.Sort(items, filter.SortName, filter.OrderAsc)
	assert.Equal(t, []string{"Cam", "Çay", "Dut", "Zeytin"}, names(items))

	l.Sort(items, filter.SortName, filter.OrderDesc)
	assert.Equal(t, []string{"Zeytin", "Dut", "Çay", "Cam"}, names(items))
}

func TestNew_InvalidLocaleFallsBack(t *testing.T) {
	l := New("not a locale!!")
	items := []productEntity.Product{{Name: "Dut"}, {Name: "Çay"}}
	l.Sort(items, filter.SortName, filter.OrderAsc)
	assert.Equal(t, []string{"Çay", "Dut"}, names(items))
}

func TestBuild_Pagination(t *testing.T) {
	items := make([]productEntity.Product, 25)
	for i := range items {
		items[i] = productEntity.Product{ID: fmt.Sprint(i + 1), Name: fmt.Sprintf("P%02d", i+1), Price: float64(i)}
	}
	c := catalogWith(items...)
	f := *filter.DefaultState()
	l := New("tr")

	page := l.Build(c, f)
	assert.Equal(t, 25, page.TotalItems)
	assert.Equal(t, 3, page.TotalPages)
	assert.Len(t, page.Items, 12)
	assert.Equal(t, "1", page.Items[0].ID)
	assert.False(t, page.HasPrev())
	assert.True(t, page.HasNext())
	assert.Equal(t, []int{1, 2, 3}, page.Pages())

	c.SetCurrentPage(3)
	page = l.Build(c, f)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "25", page.Items[0].ID)
	assert.False(t, page.HasNext())

	c.SetCurrentPage(4)
	assert.Empty(t, l.Build(c, f).Items)

	c.SetCurrentPage(0)
	assert.Empty(t, l.Build(c, f).Items)
}

func TestBuild_SortThenPaginate(t *testing.T) {
	items := make([]productEntity.Product, 13)
	for i := range items {
		items[i] = productEntity.Product{ID: fmt.Sprint(i), Price: float64(i)}
	}
	c := catalogWith(items...)
	f := *filter.DefaultState()
	f.SetSortBy(filter.SortPrice)
	f.SetSortOrder(filter.OrderDesc)

	page := New("tr").Build(c, f)
	assert.Equal(t, "12", page.Items[0].ID)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, "0", c.Items[0].ID, "building a page must not reorder the catalog")
}

func TestBuild_Empty(t *testing.T) {
	page := New("tr").Build(*catalog.NewState(12), *filter.DefaultState())
	assert.Zero(t, page.TotalPages)
	assert.Empty(t, page.Items)
	assert.Empty(t, page.Pages())
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 12))
	assert.Equal(t, 1, TotalPages(12, 12))
	assert.Equal(t, 2, TotalPages(13, 12))
	assert.Equal(t, 0, TotalPages(5, 0))
}
