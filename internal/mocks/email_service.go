package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"legacy-booth/internal/domain"
)

type EmailService struct {
	mock.Mock
}

func (m *EmailService) SendFamilyMessage(ctx context.Context, resident domain.Resident, subject, message string) error {
	args := m.Called(ctx, resident, subject, message)
	return args.Error(0)
}

func (m *EmailService) SendGreeting(ctx context.Context, resident domain.Resident, occasion, note string, video *domain.VideoRef) error {
	args := m.Called(ctx, resident, occasion, note, video)
	return args.Error(0)
}
