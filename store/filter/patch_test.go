package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestPatch_AppliesOnlySetFields(t *testing.T) {
	s := DefaultState()
	s.SetCategory("Sedan")

	apply, err := Patch{Brand: ptr("Honda"), SortBy: ptr("price"), SortOrder: ptr("desc")}.Compile()
	require.NoError(t, err)
	apply(s)

	assert.Equal(t, "Sedan", s.Category)
	assert.Equal(t, "Honda", s.Brand)
	assert.Equal(t, SortPrice, s.SortBy)
	assert.Equal(t, OrderDesc, s.SortOrder)
}

func TestPatch_PresetWinsOverSortFields(t *testing.T) {
	s := DefaultState()
	apply, err := Patch{SortBy: ptr("name"), SortOrder: ptr("asc"), Preset: ptr("price-desc")}.Compile()
	require.NoError(t, err)
	apply(s)

	p, ok := s.ActivePreset()
	require.True(t, ok)
	assert.Equal(t, "price-desc", p.Name)
}

func TestPatch_InvalidFieldsRejected(t *testing.T) {
	for name, p := range map[string]Patch{
		"sortBy":    {SortBy: ptr("weight")},
		"sortOrder": {SortOrder: ptr("up")},
		"preset":    {Brand: ptr("Honda"), Preset: ptr("bogus")},
	} {
		t.Run(name, func(t *testing.T) {
			apply, err := p.Compile()
			assert.Error(t, err)
			assert.Nil(t, apply)
		})
	}
}

func TestPatch_InvertedPriceRangeAccepted(t *testing.T) {
	s := DefaultState()
	apply, err := Patch{PriceRange: &PriceRange{Min: 10, Max: 5}}.Compile()
	require.NoError(t, err)
	apply(s)
	assert.Equal(t, PriceRange{Min: 10, Max: 5}, s.PriceRange)
}

func TestActivePreset_OnValue(t *testing.T) {
	get := func() State {
		s := DefaultState()
		s.SetSortBy(SortPrice)
		s.SetSortOrder(OrderAsc)
		return *s
	}
	p, ok := get().ActivePreset()
	require.True(t, ok)
	assert.Equal(t, "price-asc", p.Name)
}
