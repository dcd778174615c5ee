package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"legacy-booth/internal/domain"
)

type VideoStore struct {
	mock.Mock
}

func (m *VideoStore) Put(ctx context.Context, residentID, fileName string, size int64, mimeType string, reader io.Reader) (domain.VideoRef, error) {
	args := m.Called(ctx, residentID, fileName, size, mimeType, reader)
	return args.Get(0).(domain.VideoRef), args.Error(1)
}
