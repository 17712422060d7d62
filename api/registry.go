// Package api collects HTTP route modules from init() and applies them to
// an echo instance at startup.
package api

import (
	"sync"

	"github.com/labstack/echo/v4"

	"storefront/core/registry"
	"storefront/service/storefront"
)

// ModuleFunc mounts routes on the /api group.
type ModuleFunc func(g *echo.Group, sf *storefront.Storefront)

// RouteFunc mounts routes on the root echo instance (HTML, GraphQL, custom).
type RouteFunc func(e *echo.Echo, sf *storefront.Storefront)

var mu sync.Mutex

func entries[T any](key string) []T {
	if v, ok := registry.GlobalRegistry.GetGlobal(key); ok && v != nil {
		return v.([]T)
	}
	return nil
}

func add[T any](key string, fn T) {
	mu.Lock()
	defer mu.Unlock()
	if registry.GlobalRegistry.IsLocked(key) {
		panic("api/registry: " + key + " locked (register only during init)")
	}
	registry.GlobalRegistry.SetGlobal(key, append(entries[T](key), fn))
}

// RegisterModule queues an /api module. Call from init().
func RegisterModule(fn ModuleFunc) { add(registry.KeyRegistryAPI, fn) }

// RegisterRoute queues a root-level route module. Call from init().
func RegisterRoute(fn RouteFunc) { add(registry.KeyRegistryRoutes, fn) }

// RegisterHTMLModule is RegisterRoute for HTML views.
func RegisterHTMLModule(fn RouteFunc) { RegisterRoute(fn) }

// RegisterGET mounts a single GET handler on root.
func RegisterGET(path string, h echo.HandlerFunc) {
	RegisterRoute(func(e *echo.Echo, _ *storefront.Storefront) { e.GET(path, h) })
}

// RegisterPOST mounts a single POST handler on root.
func RegisterPOST(path string, h echo.HandlerFunc) {
	RegisterRoute(func(e *echo.Echo, _ *storefront.Storefront) { e.POST(path, h) })
}

// ApplyModules mounts every /api module and locks the module registry.
func ApplyModules(g *echo.Group, sf *storefront.Storefront) {
	for _, fn := range entries[ModuleFunc](registry.KeyRegistryAPI) {
		fn(g, sf)
	}
	registry.GlobalRegistry.Lock(registry.KeyRegistryAPI)
}

// ApplyRoutes mounts every root module and locks the route registry.
func ApplyRoutes(e *echo.Echo, sf *storefront.Storefront) {
	for _, fn := range entries[RouteFunc](registry.KeyRegistryRoutes) {
		fn(e, sf)
	}
	registry.GlobalRegistry.Lock(registry.KeyRegistryRoutes)
}
