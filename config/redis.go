package config

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// RedisClient is a global Redis client instance
var RedisClient *redis.Client

// InitRedis builds RedisClient from REDIS_URL or REDIS_ADDR. It stays nil
// when neither is set.
func InitRedis(c *Config) error {
	RedisClient = nil
	switch {
	case c.RedisURL != "":
		opts, err := redis.ParseURL(c.RedisURL)
		if err != nil {
			return err
		}
		RedisClient = redis.NewClient(opts)
	case c.RedisAddr != "":
		RedisClient = redis.NewClient(&redis.Options{
			Addr:     c.RedisAddr,
			Password: c.RedisPass,
			DB:       0,
		})
	}
	return nil
}

func RedisCtx() context.Context {
	return context.Background()
}
