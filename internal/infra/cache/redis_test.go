package cache

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homeledger/backend/config"
)

func TestNewRedisClient(t *testing.T) {
	t.Run("empty url disables redis", func(t *testing.T) {
		client, err := NewRedisClient(&config.RedisConfig{})
		require.NoError(t, err)
		assert.Nil(t, client)
	})

	t.Run("connects to server", func(t *testing.T) {
		mr := miniredis.RunT(t)

		client, err := NewRedisClient(&config.RedisConfig{URL: "redis://" + mr.Addr() + "/0"})
		require.NoError(t, err)
		require.NotNil(t, client)
		defer client.Close()

		assert.True(t, HealthChecker(client)())
	})

	t.Run("invalid url", func(t *testing.T) {
		_, err := NewRedisClient(&config.RedisConfig{URL: "not a url"})
		assert.Error(t, err)
	})
}

func TestHealthChecker(t *testing.T) {
	assert.False(t, HealthChecker(nil)())

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	check := HealthChecker(client)
	assert.True(t, check())

	mr.Close()
	assert.False(t, check())
}
