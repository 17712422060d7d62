package storefront

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	productEntity "storefront/model/entity/product"
	"storefront/store/cart"
)

// Cart returns a copy of the cart partition.
func (s *Storefront) Cart() cart.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Snapshot()
}

// mutateCart runs one cart transition and then persists the full line list.
// The transition stands even when persisting fails.
func (s *Storefront) mutateCart(ctx context.Context, fn func(c *cart.State)) (cart.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.cart)
	snap := s.cart.Snapshot()
	if err := s.carts.Save(ctx, snap.Items); err != nil {
		s.logger.Error("persisting cart failed", zap.Error(err))
		return snap, fmt.Errorf("%w: %v", ErrPersist, err)
	}
	return snap, nil
}

// AddToCart adds one unit of the catalog product id.
func (s *Storefront) AddToCart(ctx context.Context, id string) (cart.State, error) {
	p, err := s.Product(id)
	if err != nil {
		return s.Cart(), err
	}
	return s.AddProduct(ctx, p)
}

// AddProduct adds one unit of p, capturing its fields for a new line.
func (s *Storefront) AddProduct(ctx context.Context, p productEntity.Product) (cart.State, error) {
	s.logger.Info("adding item", zap.String("product_id", p.ID))
	return s.mutateCart(ctx, func(c *cart.State) { c.Add(p) })
}

func (s *Storefront) UpdateQuantity(ctx context.Context, id string, quantity int) (cart.State, error) {
	s.logger.Info("updating quantity", zap.String("product_id", id), zap.Int("quantity", quantity))
	return s.mutateCart(ctx, func(c *cart.State) { c.UpdateQuantity(id, quantity) })
}

func (s *Storefront) RemoveFromCart(ctx context.Context, id string) (cart.State, error) {
	s.logger.Info("removing item", zap.String("product_id", id))
	return s.mutateCart(ctx, func(c *cart.State) { c.Remove(id) })
}

func (s *Storefront) ClearCart(ctx context.Context) (cart.State, error) {
	s.logger.Info("clearing cart")
	return s.mutateCart(ctx, func(c *cart.State) { c.Clear() })
}
