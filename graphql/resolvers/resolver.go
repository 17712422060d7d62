package resolvers

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"storefront/core/money"
	"storefront/graphql"
	gqlregistry "storefront/graphql/registry"
	"storefront/service/storefront"
)

// Resolver is the single root resolver for all Query and Mutation fields.
// Methods live in catalog.go, filters.go and cart.go.
// New fields: use RegisterSchemaExtension + add a method on Resolver,
// or use _extension for fully dynamic resolvers.
type Resolver struct {
	sf     *storefront.Storefront
	money  *money.Formatter
	logger *zap.Logger
}

func NewResolver(sf *storefront.Storefront) *Resolver {
	return &Resolver{sf: sf, money: money.NewFormatter(sf.Locale()), logger: sf.Logger().Named("graphql")}
}

func (r *Resolver) log(ctx context.Context) *zap.Logger {
	if id := graphql.RequestIDFromContext(ctx); id != "" {
		return r.logger.With(zap.String("request_id", id))
	}
	return r.logger
}

// Extension dispatches to registered custom resolvers.
func (r *Resolver) Extension(ctx context.Context, args struct {
	Name string
	Args *string
}) (*string, error) {
	m := make(map[string]interface{})
	if args.Args != nil && *args.Args != "" {
		if err := json.Unmarshal([]byte(*args.Args), &m); err != nil {
			return nil, err
		}
	}
	out, err := gqlregistry.Resolve(ctx, args.Name, m)
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(out)
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}
