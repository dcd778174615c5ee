package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type SlotStore struct {
	mock.Mock
}

func (m *SlotStore) Read(ctx context.Context, key string) ([]byte, bool, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.Bool(1), args.Error(2)
}

func (m *SlotStore) Write(ctx context.Context, key string, payload []byte) error {
	args := m.Called(ctx, key, payload)
	return args.Error(0)
}
