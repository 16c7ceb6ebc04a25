package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_AllFields(t *testing.T) {
	path := writeTempJSON(t, `{
		"app": {
			"token_sign_key": "jwt_secret",
			"token_issuer": "face-auth",
			"token_duration": "45m",
			"version": "1.2.3"
		},
		"storage": {
			"db": {"dsn": "postgres://localhost/faceauth"},
			"blob": {
				"backend": "media",
				"encryption_key": "blob_secret",
				"media": {"base_url": "https://media.example.com/v1", "api_key": "k"}
			}
		},
		"server": {"http_address": "localhost:8000", "request_timeout": "15s"},
		"workers": {"sweep_interval": "1m", "orphan_age": "2m"}
	}`)

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, 45*time.Minute, cfg.App.TokenDuration)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "postgres://localhost/faceauth", cfg.Storage.DB.DSN)
	assert.Equal(t, "media", cfg.Storage.Blob.Backend)
	assert.Equal(t, "https://media.example.com/v1", cfg.Storage.Blob.Media.BaseURL)
	assert.Equal(t, "localhost:8000", cfg.Server.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, time.Minute, cfg.Workers.SweepInterval)
	assert.Equal(t, 2*time.Minute, cfg.Workers.OrphanAge)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	path := writeTempJSON(t, `{"server": {"request_timeout": 1000000000}}`)

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Server.RequestTimeout)
}

func TestParseJSON_FileMissing(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	path := writeTempJSON(t, `{"server": `)
	_, err := parseJSON(path)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := func() *StructuredConfig {
		return &StructuredConfig{
			App: App{
				TokenSignKey:  "k",
				TokenIssuer:   "face-auth",
				TokenDuration: time.Hour,
			},
			Storage: Storage{
				DB: DB{DSN: "postgres://localhost/faceauth"},
				Blob: Blob{
					Backend:       BlobBackendS3,
					EncryptionKey: "secret",
					S3:            S3{Bucket: "faces"},
				},
			},
			Server: Server{HTTPAddress: "localhost:8000"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:   "valid s3 config",
			mutate: func(cfg *StructuredConfig) {},
		},
		{
			name: "valid media config",
			mutate: func(cfg *StructuredConfig) {
				cfg.Storage.Blob.Backend = BlobBackendMedia
				cfg.Storage.Blob.Media.BaseURL = "https://media.example.com"
			},
		},
		{
			name:    "missing http address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "missing dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "missing encryption key",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.Blob.EncryptionKey = "" },
			wantErr: ErrInvalidBlobConfigs,
		},
		{
			name:    "unknown blob backend",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.Blob.Backend = "ftp" },
			wantErr: ErrInvalidBlobConfigs,
		},
		{
			name:    "s3 backend without bucket",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.Blob.S3.Bucket = "" },
			wantErr: ErrInvalidBlobConfigs,
		},
		{
			name:    "missing token sign key",
			mutate:  func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name: "sweeper without orphan age",
			mutate: func(cfg *StructuredConfig) {
				cfg.Workers.SweepInterval = time.Minute
				cfg.Workers.OrphanAge = 0
			},
			wantErr: ErrInvalidWorkerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)

			err := cfg.validate()

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
