package repository

import (
	"context"
	"errors"
	"sync"
)

// Slot keys for the three booth collections.
const (
	ResidentsKey  = "legacy_residents"
	PromptsKey    = "legacy_prompts"
	RecordingsKey = "legacy_recordings"
)

var ErrInvalidSlotKey = errors.New("invalid slot key")

// SlotStore is a key-value store of named slots, each holding one JSON payload.
// Read reports found=false, with a nil error, when the slot was never written.
type SlotStore interface {
	Read(ctx context.Context, key string) (payload []byte, found bool, err error)
	Write(ctx context.Context, key string, payload []byte) error
}

// MemoryStore keeps slots in process memory. Data is lost on restart.
type MemoryStore struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: make(map[string][]byte)}
}

func (s *MemoryStore) Read(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	payload, ok := s.slots[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(payload))
	copy(out, payload)
	return out, true, nil
}

func (s *MemoryStore) Write(_ context.Context, key string, payload []byte) error {
	if key == "" {
		return ErrInvalidSlotKey
	}

	stored := make([]byte, len(payload))
	copy(stored, payload)

	s.mu.Lock()
	s.slots[key] = stored
	s.mu.Unlock()
	return nil
}
