package redis

import (
	"context"
	"fmt"
	"time"

	"airdrop-tool-backend/internal/common/config"
	"airdrop-tool-backend/internal/common/logger"

	"github.com/redis/go-redis/v9"
)

// NewClient connects to Redis and verifies the connection.
func NewClient(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	logger.Info().
		Str("host", cfg.Redis.Host).
		Int("port", cfg.Redis.Port).
		Int("db", cfg.Redis.DB).
		Msg("Redis client initialized")

	return client, nil
}
