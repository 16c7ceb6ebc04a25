package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/edukite/face-auth/internal/logger"
	"github.com/edukite/face-auth/models"
	"github.com/jackc/pgerrcode"
)

// identityRepository is the PostgreSQL-backed implementation of
// [IdentityRepository]. It handles identity records against the
// "identities" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type identityRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewIdentityRepository constructs an [IdentityRepository] backed by the
// provided database connection and logger.
func NewIdentityRepository(db *DB, logger *logger.Logger) IdentityRepository {
	logger.Debug().Msg("creating identity repository")
	return &identityRepository{
		db:     db,
		logger: logger,
	}
}

// CreateIdentity persists a new identity record and returns the canonical
// database representation via a RETURNING clause.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrIdentityAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → wrapped [ErrScanningRow].
func (r *identityRepository) CreateIdentity(ctx context.Context, identity models.Identity) (models.Identity, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertIdentityQuery(identity.ID, identity.Email, identity.PasswordHash, identity.CreatedAt)
	if err != nil {
		return models.Identity{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*identityRepository.CreateIdentity").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Identity{}, ErrIdentityAlreadyExists
		default:
			return models.Identity{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	stored, err := scanIdentity(row)
	if err != nil {
		if code := postgresError(err); code == pgerrcode.UniqueViolation {
			return models.Identity{}, ErrIdentityAlreadyExists
		}
		log.Err(err).Str("func", "*identityRepository.CreateIdentity").Msg("error: scanning error")
		return models.Identity{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return stored, nil
}

// GetIdentity retrieves an identity record by identifier.
//
// Error handling:
//   - Empty result set → [ErrIdentityNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *identityRepository) GetIdentity(ctx context.Context, id string) (models.Identity, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectIdentityQuery(id)
	if err != nil {
		return models.Identity{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*identityRepository.GetIdentity").Msg("error: row is nil")
		return models.Identity{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	identity, err := scanIdentity(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Identity{}, ErrIdentityNotFound
		}
		log.Err(err).Str("func", "*identityRepository.GetIdentity").Msg("error: scanning error")
		return models.Identity{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return identity, nil
}

// DeleteIdentity removes the identity record with the given identifier.
// Deleting an absent record reports [ErrIdentityNotFound].
func (r *identityRepository) DeleteIdentity(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteIdentityQuery(id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*identityRepository.DeleteIdentity").Msg("error deleting identity")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrIdentityNotFound
	}

	return nil
}

// TouchLastLogin sets the last successful authentication timestamp on the
// identity record. Touching an absent record reports [ErrIdentityNotFound].
func (r *identityRepository) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	log := logger.FromContext(ctx)

	query, args, err := buildTouchLastLoginQuery(id, at)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*identityRepository.TouchLastLogin").Msg("error updating last login")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrIdentityNotFound
	}

	return nil
}

// ListOrphanIdentities returns identities created before olderThan that
// hold no face link.
func (r *identityRepository) ListOrphanIdentities(ctx context.Context, olderThan time.Time) ([]models.Identity, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectOrphanIdentitiesQuery(olderThan)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*identityRepository.ListOrphanIdentities").Msg("error listing orphan identities")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var orphans []models.Identity
	for rows.Next() {
		identity, err := scanIdentity(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		orphans = append(orphans, identity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return orphans, nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scanning.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanIdentity(row rowScanner) (models.Identity, error) {
	var identity models.Identity
	var lastLogin sql.NullTime

	if err := row.Scan(&identity.ID, &identity.Email, &identity.PasswordHash, &identity.CreatedAt, &lastLogin); err != nil {
		return models.Identity{}, err
	}

	if lastLogin.Valid {
		identity.LastLogin = &lastLogin.Time
	}

	return identity, nil
}
