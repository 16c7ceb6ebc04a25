package main

import (
	"context"
	"fmt"

	"github.com/edukite/face-auth/internal/blobstore"
	"github.com/edukite/face-auth/internal/config"
	"github.com/edukite/face-auth/internal/crypto"
	"github.com/edukite/face-auth/internal/handler"
	"github.com/edukite/face-auth/internal/logger"
	"github.com/edukite/face-auth/internal/server"
	"github.com/edukite/face-auth/internal/service"
	"github.com/edukite/face-auth/internal/store"
	"github.com/edukite/face-auth/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("face-auth-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)

	blobs, err := newBlobStore(ctx, cfg.Storage.Blob, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating blob store")
	}

	services, err := service.NewServices(storages, blobs, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	workers.NewWorkers(storages, cfg.Workers, log).Run()

	srv.RunServer()
}

// newBlobStore builds the configured blob backend and wraps it with
// at-rest encryption. Images never reach the backend in plaintext.
func newBlobStore(ctx context.Context, cfg config.Blob, log *logger.Logger) (blobstore.BlobStore, error) {
	cipher, err := crypto.NewImageCipher(cfg.EncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("error creating image cipher: %w", err)
	}

	var backend blobstore.BlobStore
	switch cfg.Backend {
	case config.BlobBackendS3:
		backend, err = blobstore.NewS3Store(ctx, cfg.S3, log)
		if err != nil {
			return nil, err
		}
	case config.BlobBackendMedia:
		backend = blobstore.NewMediaStore(cfg.Media, log)
	default:
		return nil, fmt.Errorf("unknown blob backend: %q", cfg.Backend)
	}

	return blobstore.NewEncryptedStore(backend, cipher), nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
