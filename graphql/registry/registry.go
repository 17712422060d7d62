// Package registry holds the dynamic resolvers served through the
// _extension query field.
package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"storefront/core/registry"
)

// ResolverFunc resolves one extension. Args is the JSON-decoded args string.
type ResolverFunc func(ctx context.Context, args map[string]interface{}) (interface{}, error)

var ErrUnknownExtension = errors.New("unknown extension")

var (
	mu       sync.Mutex
	lockOnce sync.Once
)

func extensions() map[string]ResolverFunc {
	if v, ok := registry.GlobalRegistry.GetGlobal(registry.KeyRegistryGraphQL); ok && v != nil {
		return v.(map[string]ResolverFunc)
	}
	return map[string]ResolverFunc{}
}

// Register adds an extension from init(). Panics on a duplicate name or once
// the first extension has been resolved.
func Register(name string, resolve ResolverFunc) {
	mu.Lock()
	defer mu.Unlock()
	if registry.GlobalRegistry.IsLocked(registry.KeyRegistryGraphQL) {
		panic("graphql/registry: locked, register " + name + " during init")
	}
	ext := extensions()
	if _, dup := ext[name]; dup {
		panic("graphql/registry: duplicate " + name)
	}
	ext[name] = resolve
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistryGraphQL, ext)
}

// Unregister drops name and unlocks the registry. Tests only.
func Unregister(name string) {
	mu.Lock()
	defer mu.Unlock()
	registry.GlobalRegistry.UnlockForTesting(registry.KeyRegistryGraphQL)
	ext := extensions()
	delete(ext, name)
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistryGraphQL, ext)
}

// Resolve runs the extension called name. The first call locks the registry.
func Resolve(ctx context.Context, name string, args map[string]interface{}) (interface{}, error) {
	lockOnce.Do(func() { registry.GlobalRegistry.Lock(registry.KeyRegistryGraphQL) })
	resolve, ok := extensions()[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownExtension, name)
	}
	return resolve(ctx, args)
}

// Names lists the registered extensions in sorted order.
func Names() []string {
	mu.Lock()
	defer mu.Unlock()
	ext := extensions()
	names := make([]string, 0, len(ext))
	for n := range ext {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
