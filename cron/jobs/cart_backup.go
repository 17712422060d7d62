package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"storefront/core/cache"
	cartRepo "storefront/model/repository/cart"
	"storefront/store/cart"
)

var ErrNoBackupFile = errors.New("no backup file configured")

// CartBackupJob dumps the persisted cart to a file in core/cache dump format,
// so a memory-backed store can restore it on startup. args[0], when given,
// overrides Env.BackupFile.
func CartBackupJob(ctx context.Context, env Env, args ...string) error {
	dest := env.BackupFile
	if len(args) > 0 && args[0] != "" {
		dest = args[0]
	}
	if dest == "" {
		return ErrNoBackupFile
	}

	lines, err := env.Carts.Load(ctx)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(lines)
	if err != nil {
		return err
	}

	snapshot := cache.NewCache()
	snapshot.Set(cartRepo.Key, string(raw), 0)
	if err := snapshot.DumpToFile(dest); err != nil {
		return fmt.Errorf("write cart backup: %w", err)
	}
	env.logger().Info("cart backed up",
		zap.String("file", dest),
		zap.Int("lines", len(lines)),
		zap.Float64("total", cart.CalculateTotal(lines)))
	return nil
}
