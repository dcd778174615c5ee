package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"legacy-booth/internal/config"
)

// NewSlotStore opens the slot store selected by cfg.StoreDriver. The returned
// close function releases any connection the store holds.
func NewSlotStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (SlotStore, func() error, error) {
	noop := func() error { return nil }

	switch cfg.StoreDriver {
	case config.StoreFile, "":
		return NewFileStore(cfg.DataDir), noop, nil
	case config.StoreMemory:
		return NewMemoryStore(), noop, nil
	case config.StoreRedis:
		client, err := config.NewRedisClient(ctx, cfg, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		return NewRedisStore(client, cfg.RedisKeyPrefix), client.Close, nil
	case config.StorePostgres, config.StoreSQLite:
		db, err := config.NewSQLDB(cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		store := NewSQLStore(db)
		if err := store.Migrate(ctx); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("failed to migrate slot table: %w", err)
		}
		return store, db.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
