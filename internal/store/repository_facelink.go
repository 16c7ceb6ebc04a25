package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/edukite/face-auth/internal/logger"
	"github.com/edukite/face-auth/models"
	"github.com/jackc/pgerrcode"
)

// faceLinkRepository is the PostgreSQL-backed implementation of
// [FaceLinkRepository] against the "face_links" table.
type faceLinkRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewFaceLinkRepository constructs a [FaceLinkRepository] backed by the
// provided database connection and logger.
func NewFaceLinkRepository(db *DB, logger *logger.Logger) FaceLinkRepository {
	logger.Debug().Msg("creating face link repository")
	return &faceLinkRepository{
		db:     db,
		logger: logger,
	}
}

// CreateFaceLink persists a new face link and returns the canonical
// database representation via a RETURNING clause.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) on the identity index →
//     [ErrFaceLinkAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *faceLinkRepository) CreateFaceLink(ctx context.Context, link models.FaceLink) (models.FaceLink, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertFaceLinkQuery(link.IdentityID, link.ObjectRef, link.URL, link.Format, link.CreatedAt)
	if err != nil {
		return models.FaceLink{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*faceLinkRepository.CreateFaceLink").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.FaceLink{}, ErrFaceLinkAlreadyExists
		default:
			return models.FaceLink{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	var stored models.FaceLink
	if err := row.Scan(&stored.IdentityID, &stored.ObjectRef, &stored.URL, &stored.Format, &stored.CreatedAt); err != nil {
		if code := postgresError(err); code == pgerrcode.UniqueViolation {
			return models.FaceLink{}, ErrFaceLinkAlreadyExists
		}
		log.Err(err).Str("func", "*faceLinkRepository.CreateFaceLink").Msg("error: scanning error")
		return models.FaceLink{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return stored, nil
}

// GetFaceLinkByIdentity retrieves the face link owned by the given
// identity, or [ErrFaceLinkNotFound].
func (r *faceLinkRepository) GetFaceLinkByIdentity(ctx context.Context, identityID string) (models.FaceLink, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectFaceLinkByIdentityQuery(identityID)
	if err != nil {
		return models.FaceLink{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*faceLinkRepository.GetFaceLinkByIdentity").Msg("error: row is nil")
		return models.FaceLink{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	var link models.FaceLink
	if err := row.Scan(&link.IdentityID, &link.ObjectRef, &link.URL, &link.Format, &link.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.FaceLink{}, ErrFaceLinkNotFound
		}
		log.Err(err).Str("func", "*faceLinkRepository.GetFaceLinkByIdentity").Msg("error: scanning error")
		return models.FaceLink{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return link, nil
}

// ListFaceLinks returns every current face link. The listing is restartable
// (each call issues a fresh query) and its order carries no meaning.
func (r *faceLinkRepository) ListFaceLinks(ctx context.Context) ([]models.FaceLink, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllFaceLinksQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*faceLinkRepository.ListFaceLinks").Msg("error listing face links")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var links []models.FaceLink
	for rows.Next() {
		var link models.FaceLink
		if err := rows.Scan(&link.IdentityID, &link.ObjectRef, &link.URL, &link.Format, &link.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		links = append(links, link)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return links, nil
}
