// Package jobs holds the built-in scheduled jobs.
package jobs

import (
	"go.uber.org/zap"

	cartRepo "storefront/model/repository/cart"
)

// Env is what a job gets to work with.
type Env struct {
	Carts      *cartRepo.CartRepository
	Logger     *zap.Logger
	BackupFile string
}

func (e Env) logger() *zap.Logger {
	if e.Logger == nil {
		return zap.NewNop()
	}
	return e.Logger
}
