package config

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants the server relies on at startup.
//
// Returns nil if the configuration is valid, or a descriptive sentinel
// error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.Blob.EncryptionKey == "" {
		return ErrInvalidBlobConfigs
	}

	switch cfg.Storage.Blob.Backend {
	case BlobBackendS3:
		if cfg.Storage.Blob.S3.Bucket == "" {
			return ErrInvalidBlobConfigs
		}
	case BlobBackendMedia:
		if cfg.Storage.Blob.Media.BaseURL == "" {
			return ErrInvalidBlobConfigs
		}
	default:
		return ErrInvalidBlobConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration == 0 {
		return ErrInvalidAppConfigs
	}

	// A sweeper without an age guard would race in-flight registrations.
	if cfg.Workers.SweepInterval != 0 && cfg.Workers.OrphanAge == 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

// Supported blob store backends.
const (
	BlobBackendS3    = "s3"
	BlobBackendMedia = "media"
)
