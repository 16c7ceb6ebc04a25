package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, a missing listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates invalid credential store settings
	// (for example, an empty database DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidBlobConfigs indicates invalid blob store settings
	// (unknown backend, missing bucket/base URL, or no encryption key).
	ErrInvalidBlobConfigs = errors.New("invalid blob store configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing token sign key or issuer).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a sweep interval without an orphan age).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
