// Package storefront wires the catalog, filter and cart partitions into one
// handle that every surface (HTTP, GraphQL, CLI, TUI) drives. It owns the
// fetch lifecycle and persists the cart after every cart transition.
package storefront

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	productEntity "storefront/model/entity/product"
	cartRepo "storefront/model/repository/cart"
	catalogService "storefront/service/catalog"
	"storefront/service/listing"
	"storefront/store/cart"
	"storefront/store/catalog"
	"storefront/store/filter"
)

var (
	ErrFetchInFlight   = errors.New("catalog fetch already in flight")
	ErrAlreadyFetched  = errors.New("catalog already fetched")
	ErrFetchFailed     = errors.New("catalog fetch failed")
	ErrProductNotFound = errors.New("product not found")
	ErrPersist         = errors.New("cart not persisted")
)

type Options struct {
	PageSize int
	Locale   string
	Logger   *zap.Logger
}

// Storefront serializes every transition behind one mutex, so each one runs
// to completion before the next is observed. Readers get copies.
type Storefront struct {
	mu      sync.Mutex
	catalog *catalog.State
	filters *filter.State
	cart    *cart.State

	fetcher catalogService.Fetcher
	carts   *cartRepo.CartRepository
	lister  *listing.Lister
	locale  string
	logger  *zap.Logger

	// base scopes background fetches; request contexts end too early.
	base     context.Context
	inflight sync.WaitGroup
}

// New builds a storefront and rehydrates the cart from carts. A cart that
// cannot be read starts empty.
func New(ctx context.Context, fetcher catalogService.Fetcher, carts *cartRepo.CartRepository, opts Options) *Storefront {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Storefront{
		catalog: catalog.NewState(opts.PageSize),
		filters: filter.DefaultState(),
		fetcher: fetcher,
		carts:   carts,
		lister:  listing.New(opts.Locale),
		locale:  opts.Locale,
		logger:  logger,
		base:    context.WithoutCancel(ctx),
	}

	lines, err := carts.Load(ctx)
	if err != nil {
		logger.Warn("cart storage unreadable, starting empty", zap.Error(err))
	}
	s.cart = cart.New(lines)
	logger.Info("cart rehydrated", zap.Int("lines", len(s.cart.Items)), zap.Float64("total", s.cart.Total))
	return s
}

// Locale is the BCP 47 locale used for collation and price formatting.
func (s *Storefront) Locale() string {
	return s.locale
}

// Logger is the logger the storefront was built with.
func (s *Storefront) Logger() *zap.Logger {
	return s.logger
}

// ---- catalog ----

func (s *Storefront) guardFetch() error {
	switch s.catalog.Status {
	case catalog.StatusLoading:
		return ErrFetchInFlight
	case catalog.StatusSucceeded:
		return ErrAlreadyFetched
	}
	return nil
}

// RequestFetch starts a background fetch. It is rejected while a fetch is in
// flight or after one succeeded.
func (s *Storefront) RequestFetch() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.guardFetch(); err != nil {
		return err
	}
	s.catalog.RequestFetch()
	s.logger.Info("fetching catalog")

	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		s.deliver(s.fetcher.Fetch(s.base))
	}()
	return nil
}

// EnsureFetched requests a fetch only when the catalog has never been
// fetched. Views call it on every render.
func (s *Storefront) EnsureFetched() {
	s.mu.Lock()
	idle := s.catalog.Status == catalog.StatusIdle
	s.mu.Unlock()
	if idle {
		if err := s.RequestFetch(); err != nil {
			s.logger.Debug("fetch not started", zap.Error(err))
		}
	}
}

// Fetch runs a fetch and waits for it. The outcome is recorded in the catalog
// either way; a failure is also returned, wrapping ErrFetchFailed.
func (s *Storefront) Fetch(ctx context.Context) error {
	s.mu.Lock()
	if err := s.guardFetch(); err != nil {
		s.mu.Unlock()
		return err
	}
	s.catalog.RequestFetch()
	s.mu.Unlock()

	s.logger.Info("fetching catalog")
	items, err := s.fetcher.Fetch(ctx)
	s.deliver(items, err)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	return nil
}

// Wait blocks until background fetches have been delivered.
func (s *Storefront) Wait() {
	s.inflight.Wait()
}

func (s *Storefront) deliver(items []productEntity.Product, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.catalog.FetchFailed(err.Error())
		s.logger.Error("catalog fetch failed", zap.Error(err))
		return
	}
	s.catalog.FetchSucceeded(items)
	s.logger.Info("catalog fetched",
		zap.Int("products", len(items)),
		zap.Int("brands", len(s.catalog.Brands)),
		zap.Int("models", len(s.catalog.Models)))
}

// Catalog returns a copy of the catalog partition.
func (s *Storefront) Catalog() catalog.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.Snapshot()
}

// Page returns the visible product page for the current catalog and filters.
func (s *Storefront) Page() listing.Page {
	s.mu.Lock()
	c, f := s.catalog.Snapshot(), *s.filters
	s.mu.Unlock()
	return s.lister.Build(c, f)
}

// Product looks id up in the current snapshot.
func (s *Storefront) Product(id string) (productEntity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.catalog.Product(id)
	if !ok {
		return productEntity.Product{}, fmt.Errorf("%w: %s", ErrProductNotFound, id)
	}
	return p, nil
}

func (s *Storefront) updateCatalog(fn func(c *catalog.State)) catalog.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.catalog)
	return s.catalog.Snapshot()
}

func (s *Storefront) SetSearchQuery(q string) catalog.State {
	return s.updateCatalog(func(c *catalog.State) { c.SetSearchQuery(q) })
}

func (s *Storefront) SetCurrentPage(n int) catalog.State {
	return s.updateCatalog(func(c *catalog.State) { c.SetCurrentPage(n) })
}

func (s *Storefront) SetBrandSearchQuery(q string) catalog.State {
	return s.updateCatalog(func(c *catalog.State) { c.SetBrandSearchQuery(q) })
}

func (s *Storefront) SetModelSearchQuery(q string) catalog.State {
	return s.updateCatalog(func(c *catalog.State) { c.SetModelSearchQuery(q) })
}
