package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	productEntity "storefront/model/entity/product"
	cartRepo "storefront/model/repository/cart"
	"storefront/model/repository/kv"
	catalogService "storefront/service/catalog"
	"storefront/service/storefront"
	"storefront/store/filter"
)

func newStorefront(t *testing.T, n int, fetchErr error) *storefront.Storefront {
	t.Helper()
	fetcher := catalogService.FetcherFunc(func(context.Context) ([]productEntity.Product, error) {
		if fetchErr != nil {
			return nil, fetchErr
		}
		items := make([]productEntity.Product, n)
		for i := range items {
			items[i] = productEntity.Product{
				ID:    fmt.Sprint(i + 1),
				Name:  fmt.Sprintf("Product %02d", i+1),
				Price: float64((i + 1) * 100),
				Brand: "Brand",
			}
		}
		return items, nil
	})
	return storefront.New(context.Background(), fetcher,
		cartRepo.NewCartRepository(kv.NewMemoryStore(nil), nil), storefront.Options{PageSize: 12, Locale: "tr"})
}

func key(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press feeds keys through Update and returns the resulting model.
func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(Model)
	}
	return m
}

// initialized runs Init's fetch and delivers its message.
func initialized(t *testing.T, sf *storefront.Storefront) Model {
	t.Helper()
	m := New(context.Background(), sf)
	msg := m.Init()()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestInit_FetchesCatalog(t *testing.T) {
	sf := newStorefront(t, 3, nil)
	m := initialized(t, sf)
	assert.Equal(t, "Loaded 3 products", m.Status())
	assert.Contains(t, m.View(), "Product 01")
	assert.Contains(t, m.View(), "100₺")
}

func TestInit_FailureShowsBanner(t *testing.T) {
	sf := newStorefront(t, 0, errors.New("request failed with status code 500"))
	m := initialized(t, sf)
	assert.Contains(t, m.View(), "Error: request failed with status code 500")
}

func TestList_CursorAndPaging(t *testing.T) {
	sf := newStorefront(t, 25, nil)
	m := initialized(t, sf)

	m = press(t, m, "up")
	assert.Equal(t, 0, m.Cursor())
	m = press(t, m, "down", "j")
	assert.Equal(t, 2, m.Cursor())

	m = press(t, m, "right", "right")
	assert.Equal(t, 3, sf.Catalog().CurrentPage)
	assert.Equal(t, 0, m.Cursor())
	m = press(t, m, "down")
	assert.Equal(t, 0, m.Cursor(), "page 3 holds a single product")
	m = press(t, m, "right")
	assert.Equal(t, 3, sf.Catalog().CurrentPage)

	press(t, m, "left")
	assert.Equal(t, 2, sf.Catalog().CurrentPage)
}

func TestDetailAndCart(t *testing.T) {
	sf := newStorefront(t, 3, nil)
	m := initialized(t, sf)

	m = press(t, m, "down", "enter")
	require.Equal(t, ViewDetail, m.CurrentView())
	assert.Contains(t, m.View(), "Product 02")

	m = press(t, m, "a", "a")
	assert.Equal(t, 400.0, sf.Cart().Total)
	m = press(t, m, "esc")
	assert.Equal(t, ViewList, m.CurrentView())

	m = press(t, m, "up", "a", "c")
	require.Equal(t, ViewCart, m.CurrentView())
	assert.Equal(t, 500.0, sf.Cart().Total)

	m = press(t, m, "down", "-")
	assert.Len(t, sf.Cart().Items, 1, "quantity 1 minus one removes the line")
	assert.Equal(t, 400.0, sf.Cart().Total)
	m = press(t, m, "+")
	assert.Equal(t, 600.0, sf.Cart().Total)
	m = press(t, m, "d")
	assert.Empty(t, sf.Cart().Items)
	assert.Contains(t, m.View(), "Your cart is empty.")

	m = press(t, m, "esc", "a", "c", "X")
	assert.Empty(t, sf.Cart().Items)
	assert.Equal(t, "Cart cleared", m.Status())
}

func TestSearchAndSort(t *testing.T) {
	sf := newStorefront(t, 12, nil)
	m := initialized(t, sf)

	m = press(t, m, "/", "1", "1", "enter")
	assert.Equal(t, "11", sf.Catalog().SearchQuery)
	assert.Equal(t, 1, sf.Page().TotalItems)

	m = press(t, m, "/", "esc")
	assert.Equal(t, "11", sf.Catalog().SearchQuery)

	m = press(t, m, "s")
	p, ok := sf.Filters().ActivePreset()
	require.True(t, ok)
	assert.Equal(t, "new-to-old", p.Name)
	press(t, m, "s", "r")
	assert.Equal(t, *filter.DefaultState(), sf.Filters())
}

func TestQuit(t *testing.T) {
	m := New(context.Background(), newStorefront(t, 0, nil))
	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
