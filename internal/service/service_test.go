package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"legacy-booth/internal/config"
	"legacy-booth/internal/repository"
	"legacy-booth/internal/seed"
)

func newAdapter() *repository.Adapter {
	return repository.NewAdapter(repository.NewMemoryStore(), zap.NewNop())
}

func TestNewServices_ProductionRequiresSessionSecret(t *testing.T) {
	cfg := &config.Config{Environment: "production", DataDir: t.TempDir()}

	services, err := NewServices(context.Background(), cfg, newAdapter(), seed.Default(), nil, zap.NewNop())
	assert.ErrorIs(t, err, ErrSessionSecretRequired)
	assert.Nil(t, services)
}

func TestNewServices_DevelopmentGeneratesSecret(t *testing.T) {
	cfg := &config.Config{Environment: "development", DataDir: t.TempDir()}

	services, err := NewServices(context.Background(), cfg, newAdapter(), seed.Default(), nil, zap.NewNop())
	require.NoError(t, err)
	require.NotNil(t, services.Sessions)

	opened, token, err := services.Sessions.Open()
	require.NoError(t, err)
	resolved, err := services.Sessions.Resolve(token)
	require.NoError(t, err)
	assert.Equal(t, opened.ID, resolved.ID)
}
