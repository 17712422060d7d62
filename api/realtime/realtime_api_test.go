package realtime

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	productEntity "storefront/model/entity/product"
	cartRepo "storefront/model/repository/cart"
	"storefront/model/repository/kv"
	catalogService "storefront/service/catalog"
	"storefront/service/storefront"
)

func setup(t *testing.T) (*echo.Echo, *storefront.Storefront) {
	t.Helper()
	fetcher := catalogService.FetcherFunc(func(context.Context) ([]productEntity.Product, error) {
		return []productEntity.Product{
			{ID: "1", Name: "Civic", Price: 1500, Brand: "Honda"},
			{ID: "2", Name: "Corolla", Price: 100, Brand: "Toyota"},
		}, nil
	})
	sf := storefront.New(context.Background(), fetcher,
		cartRepo.NewCartRepository(kv.NewMemoryStore(nil), nil), storefront.Options{Locale: "tr"})
	require.NoError(t, sf.Fetch(context.Background()))
	e := echo.New()
	RegisterRealtimeRoutes(e.Group("/api"), sf)
	return e, sf
}

func get(e *echo.Echo, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestQuote(t *testing.T) {
	e, sf := setup(t)
	_, err := sf.AddToCart(context.Background(), "1")
	require.NoError(t, err)
	_, err = sf.AddToCart(context.Background(), "1")
	require.NoError(t, err)

	rec := get(e, "/api/realtime/quote?id=1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Duration-ms"))

	var resp QuoteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "1", resp.ID)
	assert.Equal(t, 1500.0, resp.Price)
	assert.Equal(t, "1.500₺", resp.FormattedPrice)
	assert.Equal(t, 2, resp.InCart)
	assert.Equal(t, 3000.0, resp.CartTotal)
}

func TestQuote_Errors(t *testing.T) {
	e, _ := setup(t)
	assert.Equal(t, http.StatusBadRequest, get(e, "/api/realtime/quote").Code)
	assert.Equal(t, http.StatusNotFound, get(e, "/api/realtime/quote?id=99").Code)
}

func TestCartCountAndStatus(t *testing.T) {
	e, sf := setup(t)
	_, err := sf.AddToCart(context.Background(), "2")
	require.NoError(t, err)

	rec := get(e, "/api/realtime/cart-count")
	require.Equal(t, http.StatusOK, rec.Code)
	var count map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &count))
	assert.Equal(t, 1.0, count["count"])
	assert.Equal(t, 100.0, count["total"])

	rec = get(e, "/api/realtime/status")
	require.Equal(t, http.StatusOK, rec.Code)
	var status map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, "succeeded", status["status"])
	assert.Equal(t, 2.0, status["productCount"])
}
