package graphqlserver

import (
	gql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"

	"storefront/graphql"
	"storefront/graphql/resolvers"
	"storefront/service/storefront"
)

// NewSchema parses the schema (with registered extensions) against a root
// resolver bound to sf.
func NewSchema(sf *storefront.Storefront) (*gql.Schema, error) {
	return gql.ParseSchema(graphql.Schema(), resolvers.NewResolver(sf), gql.UseFieldResolvers())
}

// Handler returns an http.Handler for GraphQL (relay format).
func Handler(schema *gql.Schema) *relay.Handler {
	return &relay.Handler{Schema: schema}
}
