package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseFlags tests the ParseFlags function
func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "all flags set",
			args: []string{
				"-r", "https://backend.example.com",
				"-k", "flag-api-key",
				"-d", "/var/lib/equanote/equanote.db",
				"-c", "/path/to/config.json",
				"-request-timeout", "30s",
				"-sync-interval", "2m",
				"-log-level", "warn",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "https://backend.example.com", cfg.Remote.BaseURL)
				assert.Equal(t, "flag-api-key", cfg.Remote.APIKey)
				assert.Equal(t, "/var/lib/equanote/equanote.db", cfg.Storage.DB.DSN)
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
				assert.Equal(t, 30*time.Second, cfg.Remote.RequestTimeout)
				assert.Equal(t, 2*time.Minute, cfg.Workers.SyncInterval)
				assert.Equal(t, "warn", cfg.Log.Level)
			},
		},
		{
			name: "config alias flag",
			args: []string{
				"-config", "/path/to/config.json",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
			},
		},
		{
			name: "partial flags",
			args: []string{
				"-r", "https://backend.example.com",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "https://backend.example.com", cfg.Remote.BaseURL)
				assert.Empty(t, cfg.Remote.APIKey)
				assert.Empty(t, cfg.Storage.DB.DSN)
				assert.Zero(t, cfg.Workers.SyncInterval)
			},
		},
		{
			name: "no flags",
			args: []string{},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Empty(t, cfg.Remote.BaseURL)
				assert.Empty(t, cfg.Remote.APIKey)
				assert.Empty(t, cfg.Storage.DB.DSN)
				assert.Empty(t, cfg.JSONFilePath)
				assert.Zero(t, cfg.Remote.RequestTimeout)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset flag.CommandLine for each test
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)

			// Set os.Args to simulate command line arguments
			oldArgs := os.Args
			os.Args = append([]string{"cmd"}, tt.args...)
			defer func() { os.Args = oldArgs }()

			cfg := ParseFlags()
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}
