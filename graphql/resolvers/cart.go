package resolvers

import (
	"context"

	gql "github.com/graph-gophers/graphql-go"
	"go.uber.org/zap"

	gqlmodels "storefront/graphql/models"
	"storefront/store/cart"
)

func (r *Resolver) Cart(ctx context.Context) (*gqlmodels.Cart, error) {
	return toCart(r.money, r.sf.Cart()), nil
}

// cartResult surfaces failures as GraphQL errors. A failed save still leaves
// the change applied in memory.
func (r *Resolver) cartResult(ctx context.Context, op string, state cart.State, err error) (*gqlmodels.Cart, error) {
	if err != nil {
		r.log(ctx).Warn("graphql cart mutation failed", zap.String("op", op), zap.Error(err))
		return nil, err
	}
	return toCart(r.money, state), nil
}

func (r *Resolver) AddToCart(ctx context.Context, args struct{ ProductID gql.ID }) (*gqlmodels.Cart, error) {
	state, err := r.sf.AddToCart(ctx, string(args.ProductID))
	return r.cartResult(ctx, "addToCart", state, err)
}

func (r *Resolver) UpdateCartQuantity(ctx context.Context, args struct {
	ProductID gql.ID
	Quantity  int32
}) (*gqlmodels.Cart, error) {
	state, err := r.sf.UpdateQuantity(ctx, string(args.ProductID), int(args.Quantity))
	return r.cartResult(ctx, "updateCartQuantity", state, err)
}

func (r *Resolver) RemoveFromCart(ctx context.Context, args struct{ ProductID gql.ID }) (*gqlmodels.Cart, error) {
	state, err := r.sf.RemoveFromCart(ctx, string(args.ProductID))
	return r.cartResult(ctx, "removeFromCart", state, err)
}

func (r *Resolver) ClearCart(ctx context.Context) (*gqlmodels.Cart, error) {
	state, err := r.sf.ClearCart(ctx)
	return r.cartResult(ctx, "clearCart", state, err)
}
