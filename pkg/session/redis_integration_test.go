package session

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"

	"github.com/noah-isme/unigov-client/internal/models"
	"github.com/noah-isme/unigov-client/pkg/config"
)

func redisConfig(t *testing.T) *config.Config {
	t.Helper()
	if os.Getenv("TEST_INTEGRATION") == "" {
		t.Skip("set TEST_INTEGRATION=1 to run against a redis container")
	}

	ctx := context.Background()
	container, err := tcredis.RunContainer(ctx, testcontainers.WithImage("docker.io/redis:7-alpine"))
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("terminate redis container: %v", err)
		}
	})

	url, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	return &config.Config{
		Session: config.SessionConfig{Driver: config.SessionDriverRedis, RedisPrefix: "unigov:test:"},
		Redis:   config.RedisConfig{URL: url, PingTimeout: 5 * time.Second},
	}
}

func TestRedisStorageRoundTrip(t *testing.T) {
	cfg := redisConfig(t)
	ctx := context.Background()

	opened, err := Open(ctx, cfg)
	require.NoError(t, err)
	store, ok := opened.(*RedisStorage)
	require.True(t, ok)
	t.Cleanup(func() { _ = store.Close() })

	_, err = Load(ctx, store)
	require.ErrorIs(t, err, ErrNotFound)

	in := &models.Session{FullName: "Kofi Asante", Username: "delegue", Role: models.RoleDelegate, Token: "tok-redis"}
	require.NoError(t, Save(ctx, store, in))

	raw, err := store.client.Get(ctx, "unigov:test:"+models.SessionKey).Result()
	require.NoError(t, err)
	assert.Contains(t, raw, `"token":"tok-redis"`)

	// A second host sharing the prefix sees the same session.
	other, err := Open(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = other.(*RedisStorage).Close() })
	out, err := Load(ctx, other)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	require.NoError(t, Clear(ctx, store))
	assert.Empty(t, Token(ctx, other))
}
