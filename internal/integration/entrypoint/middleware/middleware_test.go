package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/homeledger/backend/internal/application/adapter"
)

type fakeTokenService struct {
	userID uuid.UUID
}

func (f *fakeTokenService) ValidateAccessToken(_ context.Context, token string) (*adapter.AccessClaims, error) {
	if token != "good" {
		return nil, errors.New("invalid token")
	}
	return &adapter.AccessClaims{UserID: f.userID, Email: "sam@example.com", ExpiresAt: time.Now().Add(time.Hour)}, nil
}

func newAuthRouter(userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", NewAuthMiddleware(&fakeTokenService{userID: userID}).Authenticate(), func(c *gin.Context) {
		id, _ := GetUserIDFromContext(c)
		c.String(http.StatusOK, id.String())
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	userID := uuid.New()
	router := newAuthRouter(userID)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "empty bearer", header: "Bearer ", wantStatus: http.StatusUnauthorized},
		{name: "invalid token", header: "Bearer bad", wantStatus: http.StatusUnauthorized},
		{name: "valid token", header: "Bearer good", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, userID.String(), w.Body.String())
			}
		})
	}
}

func regenerateCodes(limiter *RateLimiter, n int) []int {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/regenerate", limiter.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	codes := make([]int, 0, n)
	for i := 0; i < n; i++ {
		req := httptest.NewRequest(http.MethodPost, "/regenerate", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	return codes
}

func TestRateLimiter_Memory(t *testing.T) {
	limiter := NewRateLimiter(2, time.Minute)

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, regenerateCodes(limiter, 3))
}

func TestRateLimiter_MemoryWindowResets(t *testing.T) {
	limiter := NewRateLimiter(1, 20*time.Millisecond)

	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests}, regenerateCodes(limiter, 2))
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, []int{http.StatusOK}, regenerateCodes(limiter, 1))
}

func TestRateLimiter_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	limiter := NewRedisRateLimiter(client, 2, time.Minute)

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, regenerateCodes(limiter, 3))
	assert.Equal(t, time.Minute, mr.TTL("rate-limit:ip:10.0.0.1"))

	mr.FastForward(time.Minute)
	assert.Equal(t, []int{http.StatusOK}, regenerateCodes(limiter, 1))
}

func TestRateLimiter_RedisDownLetsRequestsThrough(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	limiter := NewRedisRateLimiter(client, 1, time.Minute)
	mr.Close()

	assert.Equal(t, []int{http.StatusOK, http.StatusOK}, regenerateCodes(limiter, 2))
}

func TestRateLimiter_RetryAfter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/regenerate", NewRateLimiter(0, 90*time.Second).Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/regenerate", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "90", w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "AUTH-020001")
}

func TestRateLimitKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	userID := uuid.New()

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.RemoteAddr = "10.0.0.2:1"
	assert.Equal(t, "ip:10.0.0.2", rateLimitKey(c))

	c.Set(string(UserIDKey), userID)
	assert.Equal(t, "user:"+userID.String(), rateLimitKey(c))
}
