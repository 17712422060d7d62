package resolvers

import (
	"context"
	"math"

	"storefront/graphql"
	gqlmodels "storefront/graphql/models"
	"storefront/store/filter"
)

func (r *Resolver) Filters(ctx context.Context) (*gqlmodels.Filters, error) {
	return toFilters(r.sf.Filters()), nil
}

func (r *Resolver) SortPresets(ctx context.Context) ([]*gqlmodels.SortPreset, error) {
	out := make([]*gqlmodels.SortPreset, len(filter.Presets))
	for i, p := range filter.Presets {
		out[i] = &gqlmodels.SortPreset{Name: p.Name, Label: p.Label}
	}
	return out, nil
}

// SetFilters validates the whole input before changing anything. Preset wins
// over sortBy/sortOrder.
func (r *Resolver) SetFilters(ctx context.Context, args struct{ Input graphql.FilterInput }) (*gqlmodels.Filters, error) {
	in := args.Input
	patch := filter.Patch{
		Category:  in.Category,
		Brand:     in.Brand,
		Model:     in.Model,
		SortBy:    in.SortBy,
		SortOrder: in.SortOrder,
		Preset:    in.Preset,
	}
	if in.PriceRange != nil {
		pr := filter.PriceRange{Min: in.PriceRange.Min, Max: math.Inf(1)}
		if in.PriceRange.Max != nil {
			pr.Max = *in.PriceRange.Max
		}
		patch.PriceRange = &pr
	}
	apply, err := patch.Compile()
	if err != nil {
		return nil, err
	}
	return toFilters(r.sf.UpdateFilters(apply)), nil
}

func (r *Resolver) ResetFilters(ctx context.Context) (*gqlmodels.Filters, error) {
	return toFilters(r.sf.ResetFilters()), nil
}
