package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/edukite/face-auth/internal/config"
	"github.com/edukite/face-auth/internal/logger"
	"github.com/edukite/face-auth/migrations"
	"github.com/jackc/pgx/v5/pgconn"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// DB wraps the shared *sql.DB handle used by both repositories.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// NewConnectPostgres opens a pgx-backed database/sql connection, pings it,
// and returns the wrapped handle.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	// ping database
	if err := conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return &DB{
		DB:     conn,
		logger: log,
	}, nil
}

// Migrate applies all embedded goose migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// postgresError extracts the PostgreSQL error code from a driver error, or
// returns the empty string for non-postgres errors.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
