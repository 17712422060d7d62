package resolvers

import (
	"context"
	"errors"

	gql "github.com/graph-gophers/graphql-go"
	"go.uber.org/zap"

	gqlmodels "storefront/graphql/models"
	"storefront/service/storefront"
)

func (r *Resolver) Products(ctx context.Context) (*gqlmodels.ProductPage, error) {
	return toPage(r.money, r.sf.Page()), nil
}

// Product returns null for an id missing from the current snapshot.
func (r *Resolver) Product(ctx context.Context, args struct{ ID gql.ID }) (*gqlmodels.Product, error) {
	p, err := r.sf.Product(string(args.ID))
	if errors.Is(err, storefront.ErrProductNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toProduct(r.money, p), nil
}

func (r *Resolver) Facets(ctx context.Context) (*gqlmodels.Facets, error) {
	return toFacets(r.sf.Catalog()), nil
}

func (r *Resolver) CatalogStatus(ctx context.Context) (*gqlmodels.CatalogStatus, error) {
	return toCatalogStatus(r.sf.Catalog()), nil
}

// FetchCatalog starts a fetch, or runs it to completion when wait is true.
// A failed fetch is reported through status and error, not as a GraphQL error.
func (r *Resolver) FetchCatalog(ctx context.Context, args struct{ Wait *bool }) (*gqlmodels.CatalogStatus, error) {
	var err error
	if args.Wait != nil && *args.Wait {
		err = r.sf.Fetch(ctx)
	} else {
		err = r.sf.RequestFetch()
	}
	if err != nil && !errors.Is(err, storefront.ErrFetchFailed) {
		return nil, err
	}
	r.log(ctx).Info("graphql fetchCatalog", zap.Bool("failed", err != nil))
	return toCatalogStatus(r.sf.Catalog()), nil
}

func (r *Resolver) SetSearchQuery(ctx context.Context, args struct{ Query string }) (*gqlmodels.CatalogStatus, error) {
	return toCatalogStatus(r.sf.SetSearchQuery(args.Query)), nil
}

func (r *Resolver) SetCurrentPage(ctx context.Context, args struct{ Page int32 }) (*gqlmodels.CatalogStatus, error) {
	return toCatalogStatus(r.sf.SetCurrentPage(int(args.Page))), nil
}

func (r *Resolver) SetBrandSearchQuery(ctx context.Context, args struct{ Query string }) (*gqlmodels.Facets, error) {
	return toFacets(r.sf.SetBrandSearchQuery(args.Query)), nil
}

func (r *Resolver) SetModelSearchQuery(ctx context.Context, args struct{ Query string }) (*gqlmodels.Facets, error) {
	return toFacets(r.sf.SetModelSearchQuery(args.Query)), nil
}
