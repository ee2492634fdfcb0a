package config

import "time"

// StructuredConfig is the top-level configuration container for the equanote
// client. It aggregates all sub-configurations and is populated by merging
// values from command-line flags, environment variables, and an optional JSON
// file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Remote holds the remote backend endpoint settings.
	Remote Remote `envPrefix:"REMOTE_"`

	// Storage holds local persistence settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds background job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from flags and environment variables.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Remote holds the settings of the remote entity store the client syncs with.
type Remote struct {
	// BaseURL is the remote backend's base URL.
	// Env: REMOTE_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// APIKey is the bearer key sent with every request.
	// Env: REMOTE_API_KEY
	APIKey string `env:"API_KEY"`

	// RequestTimeout is the default timeout for outbound requests.
	// Env: REMOTE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups local persistence settings.
type Storage struct {
	// DB holds the local SQLite database settings.
	DB DB `envPrefix:"DB_"`
}

// DB contains the local database connection settings.
type DB struct {
	// DSN is the SQLite database file path.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Workers contains background worker settings.
type Workers struct {
	// SyncInterval defines how often the quick-sync worker pulls recent
	// remote changes.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// Log contains logging settings.
type Log struct {
	// Level is the minimum emitted log level ("debug", "info", "warn", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// defaults returns the baseline configuration merged underneath all other
// sources.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		Remote: Remote{
			RequestTimeout: 15 * time.Second,
		},
		Storage: Storage{
			DB: DB{DSN: "equanote.db"},
		},
		Workers: Workers{
			SyncInterval: 5 * time.Minute,
		},
		Log: Log{Level: "debug"},
	}
}
