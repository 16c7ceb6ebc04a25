package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Duration is a time.Duration that unmarshals from JSON strings in Go
// duration syntax ("30s", "1h") as well as from plain nanosecond numbers.
type Duration time.Duration

// UnmarshalJSON implements json.Unmarshaler for [Duration].
func (d *Duration) UnmarshalJSON(data []byte) error {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}

	switch v := value.(type) {
	case float64:
		*d = Duration(time.Duration(v))
		return nil
	case string:
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("error parsing duration %q: %w", v, err)
		}
		*d = Duration(parsed)
		return nil
	default:
		return fmt.Errorf("invalid duration value: %v", value)
	}
}

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly duration parsing for file-based configuration.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		Version       string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Blob struct {
			Backend       string `json:"backend"`
			EncryptionKey string `json:"encryption_key"`
			S3            struct {
				Region       string `json:"region"`
				Bucket       string `json:"bucket"`
				BaseEndpoint string `json:"base_endpoint"`
				AccessKey    string `json:"access_key"`
				SecretKey    string `json:"secret_key"`
			} `json:"s3,omitempty"`
			Media struct {
				BaseURL string `json:"base_url"`
				APIKey  string `json:"api_key"`
			} `json:"media,omitempty"`
		} `json:"blob,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Workers struct {
		SweepInterval Duration `json:"sweep_interval"`
		OrphanAge     Duration `json:"orphan_age"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			Version:       jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Blob: Blob{
				Backend:       jsonCfg.Storage.Blob.Backend,
				EncryptionKey: jsonCfg.Storage.Blob.EncryptionKey,
				S3: S3{
					Region:       jsonCfg.Storage.Blob.S3.Region,
					Bucket:       jsonCfg.Storage.Blob.S3.Bucket,
					BaseEndpoint: jsonCfg.Storage.Blob.S3.BaseEndpoint,
					AccessKey:    jsonCfg.Storage.Blob.S3.AccessKey,
					SecretKey:    jsonCfg.Storage.Blob.S3.SecretKey,
				},
				Media: Media{
					BaseURL: jsonCfg.Storage.Blob.Media.BaseURL,
					APIKey:  jsonCfg.Storage.Blob.Media.APIKey,
				},
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Workers: Workers{
			SweepInterval: time.Duration(jsonCfg.Workers.SweepInterval),
			OrphanAge:     time.Duration(jsonCfg.Workers.OrphanAge),
		},
	}

	return cfg, nil
}
