package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartEntity "storefront/model/entity/cart"
	productEntity "storefront/model/entity/product"
	"storefront/model/repository/kv"
)

type failingStore struct{ err error }

func (f failingStore) Get(context.Context, string) (string, error) { return "", f.err }
func (f failingStore) Set(context.Context, string, string) error   { return f.err }

func TestLoad_Missing(t *testing.T) {
	repo := NewCartRepository(kv.NewMemoryStore(nil), nil)
	lines, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, lines)
	assert.Empty(t, lines)
}

func TestLoad_Corrupt(t *testing.T) {
	store := kv.NewMemoryStore(nil)
	require.NoError(t, store.Set(context.Background(), Key, "{not json"))
	lines, err := NewCartRepository(store, nil).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestLoad_Null(t *testing.T) {
	store := kv.NewMemoryStore(nil)
	require.NoError(t, store.Set(context.Background(), Key, "null"))
	lines, err := NewCartRepository(store, nil).Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, lines)
}

func TestSave_Load_RoundTripFlatFormat(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore(nil)
	repo := NewCartRepository(store, nil)
	lines := []cartEntity.Line{{
		Product:  productEntity.Product{ID: "7", Name: "Bike", Price: 1500, Brand: "Bianchi", Model: "Oltre"},
		Quantity: 2,
	}}
	require.NoError(t, repo.Save(ctx, lines))

	raw, err := store.Get(ctx, Key)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"7","name":"Bike","price":1500,"image":"","description":"","category":"","brand":"Bianchi","model":"Oltre","quantity":2}]`, raw)

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, lines, got)
}

func TestSave_EmptyWritesArray(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore(nil)
	require.NoError(t, NewCartRepository(store, nil).Save(ctx, nil))
	raw, err := store.Get(ctx, Key)
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)
}

func TestBackendErrors(t *testing.T) {
	boom := errors.New("down")
	repo := NewCartRepository(failingStore{err: boom}, nil)

	lines, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, lines)

	assert.ErrorIs(t, repo.Save(context.Background(), nil), boom)
}
