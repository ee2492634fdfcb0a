package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-r remote backend base URL
//	-k remote API key
//	-d local database file path
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-sync-interval background quick-sync interval (e.g., "5m")
//	-log-level minimum log level (debug, info, warn, error)
func ParseFlags() *StructuredConfig {
	var remoteBaseURL string
	var remoteAPIKey string
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var syncInterval time.Duration
	var logLevel string

	flag.StringVar(&remoteBaseURL, "r", "", "Remote backend base URL")
	flag.StringVar(&remoteAPIKey, "k", "", "Remote API key")
	flag.StringVar(&databaseDSN, "d", "", "Local database file path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Background sync interval (e.g., 5m)")
	flag.StringVar(&logLevel, "log-level", "", "Minimum log level (debug, info, warn, error)")

	flag.Parse()

	return &StructuredConfig{
		Remote: Remote{
			BaseURL:        remoteBaseURL,
			APIKey:         remoteAPIKey,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Workers: Workers{
			SyncInterval: syncInterval,
		},
		Log:          Log{Level: logLevel},
		JSONFilePath: jsonConfigPath,
	}
}
