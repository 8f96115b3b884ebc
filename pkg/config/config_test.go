package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makjesusfreak-ai/ReactWebApp99/pkg/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "ailment_tracker", cfg.Database.Database)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 300, cfg.Cache.TTLSeconds)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("REDIS_ENABLED", "false")
	t.Setenv("ENV", "development")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "development", cfg.Env)
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-number")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestAddressHelpers(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Server.ServerAddr())
	assert.Equal(t, "localhost:6379", cfg.Redis.RedisAddr())
	assert.Contains(t, cfg.Database.DatabaseDSN(), "dbname=ailment_tracker")
}
