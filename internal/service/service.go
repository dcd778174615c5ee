package service

import (
	"context"
	"crypto/rand"
	"errors"
	"path/filepath"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"

	"legacy-booth/internal/config"
	"legacy-booth/internal/repository"
	"legacy-booth/internal/seed"
	"legacy-booth/internal/service/email"
	"legacy-booth/internal/service/legacy"
	"legacy-booth/internal/service/media"
	"legacy-booth/internal/service/session"
	"legacy-booth/internal/service/summary"
)

// LocalVideoURL is where the API serves videos kept by the local store.
const LocalVideoURL = "/videos"

var ErrSessionSecretRequired = errors.New("SESSION_SECRET is required in production")

type Services struct {
	Legacy   legacy.Service
	Sessions *session.Registry
	Videos   media.VideoStore
	Email    email.Service
	Summary  summary.Summarizer
}

// NewServices wires the booth services. minioClient may be nil, in which case
// videos are kept under DATA_DIR/videos.
func NewServices(ctx context.Context, cfg *config.Config, adapter *repository.Adapter, seedData seed.Data, minioClient *minio.Client, logger *zap.Logger) (*Services, error) {
	secret := []byte(cfg.SessionSecret)
	if len(secret) == 0 {
		if cfg.IsProduction() {
			return nil, ErrSessionSecretRequired
		}
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return nil, err
		}
		logger.Warn("SESSION_SECRET is empty, using a random secret; kiosk tokens will not survive a restart")
	}

	var videos media.VideoStore
	if minioClient != nil {
		videos = media.NewMinIOStore(minioClient, cfg)
	} else {
		videos = media.NewLocalStore(LocalVideoDir(cfg), LocalVideoURL)
	}

	summarizer, err := summary.New(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return &Services{
		Legacy:   legacy.NewService(ctx, adapter, seedData, logger.Named("legacy")),
		Sessions: session.NewRegistry(secret, cfg.SessionTTL, logger.Named("session")),
		Videos:   videos,
		Email:    email.NewService(cfg, logger.Named("email")),
		Summary:  summarizer,
	}, nil
}

func LocalVideoDir(cfg *config.Config) string {
	return filepath.Join(cfg.DataDir, "videos")
}
