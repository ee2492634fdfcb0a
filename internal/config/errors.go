package config

import "errors"

var (
	// ErrInvalidRemoteConfigs is returned when the remote backend endpoint
	// settings are missing or inconsistent.
	ErrInvalidRemoteConfigs = errors.New("invalid remote configs: base url and request timeout are required")

	// ErrInvalidStorageConfigs is returned when the local database settings
	// are missing.
	ErrInvalidStorageConfigs = errors.New("invalid storage configs: db dsn is required")

	// ErrInvalidWorkerConfigs is returned when background worker settings are
	// missing.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configs: sync interval is required")
)
