package config

import "time"

// ClientRemote holds network settings used by the remote gateway.
type ClientRemote struct {
	// BaseURL is the remote backend endpoint.
	BaseURL string
	// APIKey is the bearer key for the backend's REST functions.
	APIKey string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings.
type ClientDB struct {
	// DSN is the SQLite database file path.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the quick-sync worker should run.
	SyncInterval time.Duration
}

// ClientLog contains client logging settings.
type ClientLog struct {
	// Level is the minimum emitted log level.
	Level string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Remote contains backend endpoint settings.
	Remote ClientRemote
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
	// Log contains logging settings.
	Log ClientLog
}

// GetClientConfig builds and validates the client config from flags,
// environment variables, an optional JSON file, and defaults, in that
// precedence order.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withFlags().
		withEnv().
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, err
	}

	clientCfg := &ClientConfig{
		Remote: ClientRemote{
			BaseURL:        cfg.Remote.BaseURL,
			APIKey:         cfg.Remote.APIKey,
			RequestTimeout: cfg.Remote.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Workers: ClientWorkers{
			SyncInterval: cfg.Workers.SyncInterval,
		},
		Log: ClientLog{Level: cfg.Log.Level},
	}

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) validate() error {
	if cfg.Remote.BaseURL == "" || cfg.Remote.RequestTimeout == 0 {
		return ErrInvalidRemoteConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.SyncInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
