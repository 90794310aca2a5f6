package redis

import (
	"context"
	"fmt"
	"time"

	"habit-agent/config"
	"habit-agent/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// NewClient creates a Redis client and verifies connectivity.
// Redis only backs caches and locks here, so callers may choose to run without it.
func NewClient(ctx context.Context, cfg config.RedisConfig, log zerolog.Logger) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:        cfg.Addr(),
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: 3 * time.Second,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	log.Info().
		Str("addr", cfg.Addr()).
		Int("db", cfg.DB).
		Msg("Redis connection established")

	return client, nil
}

// NewHealthCheck probes Redis with PING.
func NewHealthCheck(client goredis.UniversalClient) ports.PingFunc {
	return ports.PingFunc{
		Component: "redis",
		Probe:     func(ctx context.Context) error { return client.Ping(ctx).Err() },
	}
}
