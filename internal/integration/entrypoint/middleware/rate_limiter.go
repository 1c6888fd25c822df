package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	domainerror "github.com/homeledger/backend/internal/domain/error"
	"github.com/homeledger/backend/internal/integration/entrypoint/dto"
)

const rateLimitKeyPrefix = "rate-limit:"

// windowCounter counts hits for key in a fixed window and reports the time
// left until the window resets.
type windowCounter interface {
	hit(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
}

// RateLimiter caps requests per authenticated user, falling back to the client IP.
type RateLimiter struct {
	counter windowCounter
	limit   int64
	window  time.Duration
}

// NewRateLimiter creates a rate limiter that keeps windows in process memory.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		counter: &memoryCounter{entries: make(map[string]*memoryWindow)},
		limit:   int64(limit),
		window:  window,
	}
}

// NewRedisRateLimiter creates a rate limiter whose windows are shared by all
// API instances through Redis.
func NewRedisRateLimiter(client *redis.Client, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		counter: &redisCounter{client: client},
		limit:   int64(limit),
		window:  window,
	}
}

// Middleware returns a Gin handler that rejects requests over the limit with 429.
// Counter failures let the request through.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := rateLimitKey(c)
		count, resetIn, err := rl.counter.hit(c.Request.Context(), key, rl.window)
		if err != nil {
			slog.Warn("Rate limiter unavailable", "key", key, "error", err)
			c.Next()
			return
		}

		if count > rl.limit {
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(resetIn.Seconds()))))
			c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// rateLimitKey returns the authenticated user, or the client IP for anonymous requests.
func rateLimitKey(c *gin.Context) string {
	if userID, ok := GetUserIDFromContext(c); ok {
		return "user:" + userID.String()
	}
	clientIP := c.ClientIP()
	if clientIP == "" {
		clientIP = c.Request.RemoteAddr
	}
	return "ip:" + clientIP
}

type memoryWindow struct {
	hits    int64
	resetAt time.Time
}

type memoryCounter struct {
	mu      sync.Mutex
	entries map[string]*memoryWindow
}

func (m *memoryCounter) hit(_ context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	entry, ok := m.entries[key]
	if !ok || !now.Before(entry.resetAt) {
		entry = &memoryWindow{resetAt: now.Add(window)}
		m.entries[key] = entry
		m.evictExpired(now)
	}
	entry.hits++
	return entry.hits, entry.resetAt.Sub(now), nil
}

// evictExpired drops finished windows; called with mu held.
func (m *memoryCounter) evictExpired(now time.Time) {
	for key, entry := range m.entries {
		if !now.Before(entry.resetAt) {
			delete(m.entries, key)
		}
	}
}

type redisCounter struct {
	client *redis.Client
}

func (r *redisCounter) hit(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	key = rateLimitKeyPrefix + key
	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, 0, fmt.Errorf("incr %s: %w", key, err)
	}
	if count == 1 {
		if err := r.client.PExpire(ctx, key, window).Err(); err != nil {
			return 0, 0, fmt.Errorf("expire %s: %w", key, err)
		}
		return count, window, nil
	}

	ttl, err := r.client.PTTL(ctx, key).Result()
	if err != nil {
		return 0, 0, fmt.Errorf("ttl %s: %w", key, err)
	}
	if ttl < 0 {
		// A key left without expiry would block the caller forever.
		if err := r.client.PExpire(ctx, key, window).Err(); err != nil {
			return 0, 0, fmt.Errorf("expire %s: %w", key, err)
		}
		ttl = window
	}
	return count, ttl, nil
}
