package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Cache is a thread-safe key-value store using sync.Map with optional
// per-entry expiry.
type Cache struct {
	m sync.Map
}

// NewCache creates a new Cache instance.
func NewCache() *Cache {
	return &Cache{}
}

// cacheItem holds a value and its expiration time.
type cacheItem struct {
	Value     string `json:"value"`
	ExpiresAt int64  `json:"expires_at,omitempty"` // Unix nanoseconds; 0 means no expiration
}

func (i cacheItem) expired(now time.Time) bool {
	return i.ExpiresAt > 0 && now.UnixNano() > i.ExpiresAt
}

// Set stores value for key. A ttl of 0 never expires.
func (c *Cache) Set(key, value string, ttl time.Duration) {
	var expiresAt int64
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl).UnixNano()
	}
	c.m.Store(key, cacheItem{Value: value, ExpiresAt: expiresAt})
}

// Get returns (value, true) if key is present and not expired.
func (c *Cache) Get(key string) (string, bool) {
	v, ok := c.m.Load(key)
	if !ok {
		return "", false
	}
	item := v.(cacheItem)
	if item.expired(time.Now()) {
		c.m.Delete(key)
		return "", false
	}
	return item.Value, true
}

// GetOrDefault returns the stored value, or defaultValue when missing.
func (c *Cache) GetOrDefault(key, defaultValue string) string {
	if v, ok := c.Get(key); ok {
		return v
	}
	return defaultValue
}

// Delete removes a key from the cache.
func (c *Cache) Delete(key string) {
	c.m.Delete(key)
}

// Keys returns every live key, in no particular order.
func (c *Cache) Keys() []string {
	now := time.Now()
	var keys []string
	c.m.Range(func(k, v any) bool {
		if !v.(cacheItem).expired(now) {
			keys = append(keys, k.(string))
		}
		return true
	})
	return keys
}

// DumpToFile saves all live entries to filename as JSON, creating parent
// directories as needed.
func (c *Cache) DumpToFile(filename string) error {
	now := time.Now()
	m := make(map[string]cacheItem)
	c.m.Range(func(k, v any) bool {
		if item := v.(cacheItem); !item.expired(now) {
			m[k.(string)] = item
		}
		return true
	})
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0o644)
}

// RestoreFromFile loads entries written by DumpToFile. Expired entries are skipped.
func (c *Cache) RestoreFromFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	m := make(map[string]cacheItem)
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	now := time.Now()
	for k, item := range m {
		if !item.expired(now) {
			c.m.Store(k, item)
		}
	}
	return nil
}
