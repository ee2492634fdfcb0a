package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"REMOTE_BASE_URL":        "https://backend.example.com",
		"REMOTE_API_KEY":         "env-api-key",
		"REMOTE_REQUEST_TIMEOUT": "30s",

		// Storage has nested prefixes: STORAGE_ + DB_
		"STORAGE_DB_DSN": "/var/lib/equanote/equanote.db",

		"WORKERS_SYNC_INTERVAL": "2m",

		"LOG_LEVEL": "warn",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "https://backend.example.com", cfg.Remote.BaseURL)
	assert.Equal(t, "env-api-key", cfg.Remote.APIKey)
	assert.Equal(t, 30*time.Second, cfg.Remote.RequestTimeout)

	assert.Equal(t, "/var/lib/equanote/equanote.db", cfg.Storage.DB.DSN)

	assert.Equal(t, 2*time.Minute, cfg.Workers.SyncInterval)

	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"REMOTE_BASE_URL": "https://backend.example.com",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "https://backend.example.com", cfg.Remote.BaseURL)
	assert.Empty(t, cfg.Remote.APIKey)
	assert.Zero(t, cfg.Remote.RequestTimeout)
	assert.Empty(t, cfg.Storage.DB.DSN)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"REMOTE_REQUEST_TIMEOUT": "not-a-duration",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)
	assert.Error(t, err)
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"CONFIG",
		"REMOTE_BASE_URL",
		"REMOTE_API_KEY",
		"REMOTE_REQUEST_TIMEOUT",
		"STORAGE_DB_DSN",
		"WORKERS_SYNC_INTERVAL",
		"LOG_LEVEL",
	} {
		require.NoError(t, os.Unsetenv(k))
	}
}
