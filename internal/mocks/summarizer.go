package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"legacy-booth/internal/domain"
)

type Summarizer struct {
	mock.Mock
}

func (m *Summarizer) Summarize(ctx context.Context, recording domain.Recording) (string, error) {
	args := m.Called(ctx, recording)
	return args.String(0), args.Error(1)
}
