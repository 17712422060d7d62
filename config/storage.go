package config

import (
	"errors"
	"fmt"
	"io/fs"

	"go.uber.org/zap"

	"storefront/model/repository/kv"
)

// NewKVStore builds the cart storage backend named by CART_STORE. The returned
// close func releases database handles and is never nil.
func NewKVStore(c *Config, logger *zap.Logger) (kv.Store, func() error, error) {
	noop := func() error { return nil }

	switch c.CartStore {
	case StoreMemory:
		store := kv.NewMemoryStore(nil)
		if c.CartBackupFile != "" {
			err := store.Cache.RestoreFromFile(c.CartBackupFile)
			switch {
			case err == nil:
				logger.Info("memory store restored from backup", zap.String("file", c.CartBackupFile))
			case !errors.Is(err, fs.ErrNotExist):
				logger.Warn("memory store backup unreadable", zap.String("file", c.CartBackupFile), zap.Error(err))
			}
		}
		return store, noop, nil

	case StoreFile:
		store, err := kv.NewFileStore(c.StorageDir)
		if err != nil {
			return nil, noop, err
		}
		return store, noop, nil

	case StoreSQLite, StoreMySQL:
		db, err := NewDB(c, c.CartStore)
		if err != nil {
			return nil, noop, fmt.Errorf("open %s: %w", c.CartStore, err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, noop, err
		}
		if err := sqlDB.Ping(); err != nil {
			_ = sqlDB.Close()
			return nil, noop, fmt.Errorf("database connection failed: %w", err)
		}
		store, err := kv.NewGormStore(db)
		if err != nil {
			_ = sqlDB.Close()
			return nil, noop, err
		}
		return store, sqlDB.Close, nil

	case StoreRedis:
		if err := InitRedis(c); err != nil {
			return nil, noop, err
		}
		if RedisClient == nil {
			return nil, noop, errors.New("CART_STORE=redis needs REDIS_ADDR or REDIS_URL")
		}
		if err := RedisClient.Ping(RedisCtx()).Err(); err != nil {
			_ = RedisClient.Close()
			return nil, noop, fmt.Errorf("redis configured but not reachable: %w", err)
		}
		return kv.NewRedisStore(RedisClient, kv.DefaultRedisPrefix), RedisClient.Close, nil
	}
	return nil, noop, fmt.Errorf("CART_STORE: unknown backend %q", c.CartStore)
}
