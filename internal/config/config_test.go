package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Environment)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, "redis", cfg.StoreDriver)
	assert.Equal(t, "redis://localhost:6379", cfg.RedisURL)
	assert.Equal(t, "/b/", cfg.SharePathPrefix)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
}

func TestNewFromEnvironment(t *testing.T) {
	t.Setenv("BRIEFFAST_HTTP_PORT", "9090")
	t.Setenv("BRIEFFAST_STORE_DRIVER", "sqlite")
	t.Setenv("BRIEFFAST_SQLITE_PATH", "/tmp/briefs.db")
	t.Setenv("BRIEFFAST_API_KEY", "secret")
	t.Setenv("BRIEFFAST_CORS_ALLOWED_ORIGINS", "https://brieffast.app,https://staging.brieffast.app")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTPPort)
	assert.Equal(t, "sqlite", cfg.StoreDriver)
	assert.Equal(t, "/tmp/briefs.db", cfg.SQLitePath)
	assert.Equal(t, "secret", cfg.APIKey)
	assert.Equal(t, []string{"https://brieffast.app", "https://staging.brieffast.app"}, cfg.CORSAllowedOrigins)
}

func TestValidateRejectsUnknownDriver(t *testing.T) {
	t.Setenv("BRIEFFAST_STORE_DRIVER", "dynamo")

	_, err := New()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported store driver")
}

func TestValidateRequiresDriverSettings(t *testing.T) {
	t.Setenv("BRIEFFAST_STORE_DRIVER", "postgres")

	_, err := New()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BRIEFFAST_POSTGRES_DSN")
}

func TestValidateRejectsBadPort(t *testing.T) {
	cfg := Config{StoreDriver: "redis", RedisURL: "redis://localhost:6379", HTTPPort: -1}
	require.Error(t, cfg.Validate())
}
