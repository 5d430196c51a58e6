package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveBaseURL(t *testing.T) {
	tests := []struct {
		name       string
		override   string
		production bool
		want       string
	}{
		{name: "local default", want: LocalAPIURL},
		{name: "production default", production: true, want: ProductionAPIURL},
		{name: "override wins in development", override: "http://api.test/api", want: "http://api.test/api"},
		{name: "override wins in production", override: "http://api.test/api", production: true, want: "http://api.test/api"},
		{name: "blank override ignored", override: "   ", production: true, want: ProductionAPIURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveBaseURL(tt.override, tt.production))
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("UNIGOV_API_URL", "")
	t.Setenv("REDIS_URL", "")
	t.Setenv("REDIS_PING_TIMEOUT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, LocalAPIURL, cfg.API.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.API.Timeout)
	assert.Equal(t, SessionDriverFile, cfg.Session.Driver)
	assert.Equal(t, "/api", cfg.Mock.APIPrefix)
	assert.Equal(t, 8081, cfg.Mock.Port)
	assert.Equal(t, 5*time.Second, cfg.Redis.PingTimeout)
	assert.Empty(t, cfg.Redis.URL)
}

func TestLoadProductionAndOverride(t *testing.T) {
	t.Setenv("ENV", EnvProduction)
	t.Setenv("UNIGOV_API_URL", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, ProductionAPIURL, cfg.API.BaseURL)

	t.Setenv("UNIGOV_API_URL", "https://staging.unigov.app/api")
	t.Setenv("HTTP_TIMEOUT", "3s")
	t.Setenv("ALLOWED_ORIGINS", "http://localhost:5173, http://localhost:3000")

	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "https://staging.unigov.app/api", cfg.API.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout)
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:3000"}, cfg.Mock.AllowedOrigins)
}

func TestLoadRedisSettings(t *testing.T) {
	t.Setenv("REDIS_URL", " redis://:secret@cache.internal:6380/2 ")
	t.Setenv("REDIS_PING_TIMEOUT", "750ms")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "redis://:secret@cache.internal:6380/2", cfg.Redis.URL)
	assert.Equal(t, 750*time.Millisecond, cfg.Redis.PingTimeout)
}

func TestParseDurationFallback(t *testing.T) {
	assert.Equal(t, time.Minute, parseDuration("", time.Minute))
	assert.Equal(t, time.Minute, parseDuration("soon", time.Minute))
	assert.Equal(t, 2*time.Second, parseDuration("2s", time.Minute))
}
