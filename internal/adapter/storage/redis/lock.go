package redis

import (
	"context"
	"fmt"
	"time"

	"habit-agent/pkg/apperror"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

const lockRetryInterval = 50 * time.Millisecond

// releaseScript deletes the lock only if the caller still owns it.
var releaseScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Lock implements ports.DistributedLock using Redis SET NX with an owner token.
type Lock struct {
	client *goredis.Client
	prefix string
}

// NewLock creates a new Redis-backed lock.
func NewLock(client *goredis.Client) *Lock {
	return &Lock{
		client: client,
		prefix: "lock:",
	}
}

// Acquire polls SET NX until it wins, wait elapses, or ctx is done.
// Expiry of wait returns SYS_002; Redis errors are returned as-is.
func (l *Lock) Acquire(ctx context.Context, key string, ttl, wait time.Duration) (string, error) {
	token := uuid.NewString()
	deadline := time.Now().Add(wait)

	for {
		ok, err := l.client.SetNX(ctx, l.prefix+key, token, ttl).Result()
		if err != nil {
			return "", fmt.Errorf("redis lock acquire: %w", err)
		}
		if ok {
			return token, nil
		}
		if !time.Now().Before(deadline) {
			return "", apperror.ErrLockTimeout(fmt.Errorf("lock %s held after %s", key, wait))
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(lockRetryInterval):
		}
	}
}

// Release frees the lock if token still owns it. A lost lock is not an error.
func (l *Lock) Release(ctx context.Context, key, token string) error {
	if err := releaseScript.Run(ctx, l.client, []string{l.prefix + key}, token).Err(); err != nil {
		return fmt.Errorf("redis lock release: %w", err)
	}
	return nil
}
