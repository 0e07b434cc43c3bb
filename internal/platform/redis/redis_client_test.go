package redis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("REDIS_PASSWORD", "pw")

	cfg := LoadConfig()

	assert.Equal(t, "cache", cfg.Host)
	assert.Equal(t, "pw", cfg.Password)
	assert.Equal(t, "cache:6380", cfg.Addr())
}

func TestNewRedisClient_NotConfigured(t *testing.T) {
	t.Parallel()

	rdb, err := NewRedisClient(context.Background(), Config{})

	require.ErrorIs(t, err, errRedisNotConfigured)
	assert.Nil(t, rdb)
}
