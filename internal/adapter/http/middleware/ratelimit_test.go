package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"habit-agent/internal/adapter/http/middleware"
	redisStore "habit-agent/internal/adapter/storage/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func setupRateLimitRouter(store *redisStore.RateLimitStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	rule := middleware.RateLimitRule{Limit: 3, Window: time.Minute}
	r.GET("/test", middleware.RateLimiter(store, "test", rule, zerolog.Nop()), func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	return r
}

func newStore(t *testing.T) (*miniredis.Miniredis, *redisStore.RateLimitStore) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, redisStore.NewRateLimitStore(client)
}

func get(router *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), "GET", target, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_AllowsWithinLimit(t *testing.T) {
	_, store := newStore(t)
	router := setupRateLimitRouter(store)

	for i := 0; i < 3; i++ {
		w := get(router, "/test")
		assert.Equal(t, 200, w.Code, "request %d should succeed", i+1)
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Limit"))
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Remaining"))
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Reset"))
	}
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	_, store := newStore(t)
	router := setupRateLimitRouter(store)

	for i := 0; i < 3; i++ {
		assert.Equal(t, 200, get(router, "/test").Code)
	}

	w := get(router, "/test")
	assert.Equal(t, 429, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "RATE_001")
}

func TestRateLimiter_KeysOnWalletCaseInsensitively(t *testing.T) {
	_, store := newStore(t)
	router := setupRateLimitRouter(store)

	for i := 0; i < 3; i++ {
		assert.Equal(t, 200, get(router, "/test?wallet_address=0xAAAA").Code)
	}
	assert.Equal(t, 429, get(router, "/test?wallet_address=0xaaaa").Code)

	// Another wallet from the same IP has its own counter.
	assert.Equal(t, 200, get(router, "/test?wallet_address=0xbbbb").Code)
}

func TestRateLimiter_DegradesWhenRedisDown(t *testing.T) {
	mr, store := newStore(t)
	router := setupRateLimitRouter(store)
	mr.Close()

	for i := 0; i < 5; i++ {
		w := get(router, "/test")
		assert.Equal(t, 200, w.Code)
		assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
	}
}

func TestDefaultRateLimitRules(t *testing.T) {
	rules := middleware.DefaultRateLimitRules()
	assert.Equal(t, int64(20), rules["checkin"].Limit)
	assert.Equal(t, int64(10), rules["reading"].Limit)
	assert.Equal(t, int64(60), rules["query"].Limit)
	assert.Equal(t, int64(30), rules["admin"].Limit)
	for group, rule := range rules {
		assert.Equal(t, time.Minute, rule.Window, group)
	}
}
