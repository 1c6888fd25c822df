// Package cache implements Redis-backed adapters.
package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/homeledger/backend/internal/application/adapter"
)

// releaseScript deletes the lock only while it still holds the caller's token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// periodLock implements adapter.PeriodLock with SET NX PX.
type periodLock struct {
	client *redis.Client
}

// NewPeriodLock creates a Redis-backed period lock.
func NewPeriodLock(client *redis.Client) adapter.PeriodLock {
	return &periodLock{client: client}
}

// Acquire takes the lock for ttl. The lock expires on its own if release is never called.
func (l *periodLock) Acquire(ctx context.Context, key string, ttl time.Duration) (func(), bool, error) {
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return nil, false, fmt.Errorf("failed to acquire lock %s: %w", key, err)
	}
	if !ok {
		return nil, false, nil
	}

	release := func() {
		// The caller's context may already be cancelled.
		releaseCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := releaseScript.Run(releaseCtx, l.client, []string{key}, token).Err(); err != nil {
			slog.Warn("Failed to release period lock", "key", key, "error", err)
		}
	}
	return release, true, nil
}
