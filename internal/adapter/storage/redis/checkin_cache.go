package redis

import (
	"context"
	"fmt"
	"time"

	"habit-agent/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// recordedTTL outlives any civil day; the ledger stays the source of truth after it.
const recordedTTL = 48 * time.Hour

// CheckInCache implements ports.CheckInCache using Redis.
type CheckInCache struct {
	client *goredis.Client
	prefix string
}

// NewCheckInCache creates a new Redis-backed check-in cache.
func NewCheckInCache(client *goredis.Client) *CheckInCache {
	return &CheckInCache{
		client: client,
		prefix: "checkin:",
	}
}

// IsRecorded reports whether key was marked as submitted.
func (c *CheckInCache) IsRecorded(ctx context.Context, key domain.CheckInKey) (bool, error) {
	n, err := c.client.Exists(ctx, c.prefix+key.String()).Result()
	if err != nil {
		return false, fmt.Errorf("redis checkin exists: %w", err)
	}
	return n > 0, nil
}

// MarkRecorded stores the transaction hash under key.
func (c *CheckInCache) MarkRecorded(ctx context.Context, key domain.CheckInKey, txHash string) error {
	if err := c.client.Set(ctx, c.prefix+key.String(), txHash, recordedTTL).Err(); err != nil {
		return fmt.Errorf("redis checkin set: %w", err)
	}
	return nil
}
