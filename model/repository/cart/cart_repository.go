package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	cartEntity "storefront/model/entity/cart"
	"storefront/model/repository/kv"
)

// Key is the storage key holding the JSON array of cart lines.
const Key = "cart"

type CartRepository struct {
	store  kv.Store
	logger *zap.Logger
}

func NewCartRepository(store kv.Store, logger *zap.Logger) *CartRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CartRepository{store: store, logger: logger}
}

// Load reads the persisted lines. A missing key and an unparseable value both
// yield an empty cart; only backend failures are returned as errors.
func (r *CartRepository) Load(ctx context.Context) ([]cartEntity.Line, error) {
	raw, err := r.store.Get(ctx, Key)
	if errors.Is(err, kv.ErrNotFound) {
		return []cartEntity.Line{}, nil
	}
	if err != nil {
		return []cartEntity.Line{}, fmt.Errorf("load cart: %w", err)
	}
	var lines []cartEntity.Line
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		r.logger.Warn("persisted cart is corrupt, starting empty", zap.Error(err))
		return []cartEntity.Line{}, nil
	}
	if lines == nil {
		lines = []cartEntity.Line{}
	}
	return lines, nil
}

// Save writes the full line list, replacing whatever was stored.
func (r *CartRepository) Save(ctx context.Context, lines []cartEntity.Line) error {
	if lines == nil {
		lines = []cartEntity.Line{}
	}
	data, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	if err := r.store.Set(ctx, Key, string(data)); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}
