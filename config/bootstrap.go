package config

import (
	"context"

	"go.uber.org/zap"

	"storefront/cron/jobs"
	cartRepo "storefront/model/repository/cart"
	"storefront/model/repository/kv"
	catalogService "storefront/service/catalog"
	"storefront/service/storefront"
)

// App is everything a binary needs, built from one Config.
type App struct {
	Config     *Config
	Logger     *zap.Logger
	Store      kv.Store
	Carts      *cartRepo.CartRepository
	Storefront *storefront.Storefront

	closeStore func() error
}

// NewApp wires logger, cart storage, fetcher and storefront from c.
func NewApp(ctx context.Context, c *Config) (*App, error) {
	logger, err := NewLogger(c.Debug)
	if err != nil {
		return nil, err
	}
	logger = logger.With(zap.String("app", c.AppName), zap.String("env", c.Env))

	store, closeStore, err := NewKVStore(c, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("cart storage ready", zap.String("backend", c.CartStore))

	carts := cartRepo.NewCartRepository(store, logger.Named("cart"))
	fetcher := catalogService.NewFetcher(c.ProductsURL, c.FetchTimeoutDuration())
	sf := storefront.New(ctx, fetcher, carts, storefront.Options{
		PageSize: c.PageSize,
		Locale:   c.Locale,
		Logger:   logger.Named("storefront"),
	})

	return &App{
		Config:     c,
		Logger:     logger,
		Store:      store,
		Carts:      carts,
		Storefront: sf,
		closeStore: closeStore,
	}, nil
}

// JobEnv is the environment handed to cron jobs.
func (a *App) JobEnv() jobs.Env {
	return jobs.Env{Carts: a.Carts, Logger: a.Logger.Named("cron"), BackupFile: a.Config.CartBackupFile}
}

// Close waits for in-flight fetches, then releases storage and flushes logs.
func (a *App) Close() error {
	a.Storefront.Wait()
	err := a.closeStore()
	_ = a.Logger.Sync()
	return err
}
