package kv

import (
	"context"

	"storefront/core/cache"
)

// MemoryStore keeps values in process. Contents can be dumped to and restored
// from a file through Cache.
type MemoryStore struct {
	Cache *cache.Cache
}

// NewMemoryStore wraps c, or a fresh cache when c is nil.
func NewMemoryStore(c *cache.Cache) *MemoryStore {
	if c == nil {
		c = cache.NewCache()
	}
	return &MemoryStore{Cache: c}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, error) {
	v, ok := s.Cache.Get(key)
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.Cache.Set(key, value, 0)
	return nil
}
