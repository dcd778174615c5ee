package repository

import (
	"bytes"
	"context"
	"encoding/json"

	"go.uber.org/zap"
)

// Adapter gives typed collection access over a SlotStore. Storage is treated
// as best-effort: failures are logged and never reach the caller.
type Adapter struct {
	store  SlotStore
	logger *zap.Logger
}

func NewAdapter(store SlotStore, logger *zap.Logger) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{store: store, logger: logger}
}

// Load returns the collection stored under key. It returns fallback, as is,
// when the slot is absent, unreadable, or does not hold a JSON array of T.
func Load[T any](ctx context.Context, a *Adapter, key string, fallback []T) []T {
	payload, found, err := a.store.Read(ctx, key)
	if err != nil {
		a.logger.Warn("slot read failed, using fallback", zap.String("key", key), zap.Error(err))
		return fallback
	}
	if !found {
		a.logger.Debug("slot empty, using fallback", zap.String("key", key))
		return fallback
	}

	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		a.logger.Warn("slot does not hold an array, using fallback", zap.String("key", key))
		return fallback
	}

	var collection []T
	if err := json.Unmarshal(trimmed, &collection); err != nil {
		a.logger.Warn("slot payload is corrupt, using fallback", zap.String("key", key), zap.Error(err))
		return fallback
	}
	return collection
}

// Save writes collection under key. A nil collection is stored as [].
func Save[T any](ctx context.Context, a *Adapter, key string, collection []T) {
	if collection == nil {
		collection = []T{}
	}

	payload, err := json.Marshal(collection)
	if err != nil {
		a.logger.Warn("slot encode failed, keeping session-only state", zap.String("key", key), zap.Error(err))
		return
	}

	if err := a.store.Write(ctx, key, payload); err != nil {
		a.logger.Warn("slot write failed, keeping session-only state", zap.String("key", key), zap.Error(err))
	}
}
