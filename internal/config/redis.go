package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var ErrRedisKeyPrefixRequired = errors.New("REDIS_KEY_PREFIX must not be empty")

const redisPingTimeout = 5 * time.Second

// NewRedisClient connects to the Redis instance backing the slot store. Every
// slot key lives under cfg.RedisKeyPrefix, so an empty prefix is rejected.
func NewRedisClient(ctx context.Context, cfg *Config, logger *zap.Logger) (*redis.Client, error) {
	if cfg.RedisKeyPrefix == "" {
		return nil, ErrRedisKeyPrefixRequired
	}

	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}

	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", opt.Addr, err)
	}

	logger.Info("connected to redis slot store",
		zap.String("addr", opt.Addr),
		zap.Int("db", opt.DB),
		zap.String("key_prefix", cfg.RedisKeyPrefix),
	)
	return client, nil
}
