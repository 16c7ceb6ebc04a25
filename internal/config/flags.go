package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-blob-backend blob store backend ("s3" or "media")
//	-blob-key blob encryption key
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-sweep-interval orphan sweeper interval (0 disables)
//	-orphan-age minimum orphan identity age before deletion
func ParseFlags() *StructuredConfig {
	var serverAddress string
	var databaseDSN string
	var jsonConfigPath string
	var blobBackend string
	var blobEncryptionKey string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var sweepInterval time.Duration
	var orphanAge time.Duration

	flag.StringVar(&serverAddress, "a", "", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&blobBackend, "blob-backend", "", "Blob store backend (s3|media)")
	flag.StringVar(&blobEncryptionKey, "blob-key", "", "Blob encryption key")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&sweepInterval, "sweep-interval", 0, "Orphan sweeper interval (0 disables)")
	flag.DurationVar(&orphanAge, "orphan-age", 0, "Minimum orphan identity age before deletion")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Blob: Blob{
				Backend:       blobBackend,
				EncryptionKey: blobEncryptionKey,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			SweepInterval: sweepInterval,
			OrphanAge:     orphanAge,
		},
		JSONFilePath: jsonConfigPath,
	}
}
