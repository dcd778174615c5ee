package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"legacy-booth/internal/config"
	"legacy-booth/internal/handler"
	"legacy-booth/internal/middleware"
	"legacy-booth/internal/pkg/i18n"
	"legacy-booth/internal/repository"
	"legacy-booth/internal/seed"
	"legacy-booth/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	zlog, err := config.NewLogger(cfg.LogLevel, cfg.LogFormat, "legacy-booth")
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zlog.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		zlog.Fatal("failed to create data dir", zap.String("dir", cfg.DataDir), zap.Error(err))
	}

	if err := i18n.LoadEmbedded(); err != nil {
		zlog.Fatal("failed to load locales", zap.Error(err))
	}

	store, closeStore, err := repository.NewSlotStore(ctx, cfg, zlog.Named("store"))
	if err != nil {
		zlog.Fatal("failed to open slot store", zap.String("driver", cfg.StoreDriver), zap.Error(err))
	}
	defer closeStore()

	seedData, err := seed.Load(cfg.SeedFile)
	if err != nil {
		zlog.Fatal("failed to load seed data", zap.Error(err))
	}

	minioClient, err := config.NewMinIOClient(cfg, zlog)
	if err != nil {
		if !errors.Is(err, config.ErrMinIONotConfigured) {
			zlog.Warn("failed to connect to MinIO, storing videos locally", zap.Error(err))
		}
		minioClient = nil
	}

	adapter := repository.NewAdapter(store, zlog.Named("store"))
	services, err := service.NewServices(ctx, cfg, adapter, seedData, minioClient, zlog)
	if err != nil {
		zlog.Fatal("failed to build services", zap.Error(err))
	}
	handlers := handler.NewHandlers(services, cfg)

	go services.Sessions.Run(ctx, time.Minute, cfg.SessionIdleTimeout)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.NewErrorHandler(zlog),
		BodyLimit:    (cfg.MaxVideoMB + 1) * 1024 * 1024,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Accept-Language, Authorization",
		AllowMethods: "GET, POST, PATCH, DELETE, OPTIONS",
	}))

	if minioClient == nil {
		app.Static(service.LocalVideoURL, service.LocalVideoDir(cfg))
	}

	handler.SetupRoutes(app, handlers, services.Sessions)

	go func() {
		<-ctx.Done()
		zlog.Info("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			zlog.Error("shutdown failed", zap.Error(err))
		}
	}()

	zlog.Info("server starting",
		zap.String("port", cfg.Port),
		zap.String("environment", cfg.Environment),
		zap.String("store", cfg.StoreDriver),
	)
	if err := app.Listen(":" + cfg.Port); err != nil {
		zlog.Fatal("failed to start server", zap.Error(err))
	}
}
