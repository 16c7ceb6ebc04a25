package store

import (
	"context"
	"time"

	"github.com/edukite/face-auth/models"
)

// IdentityRepository is the credential half of the store: key-indexed CRUD
// over identity records. All operations are single-record; no multi-record
// transaction spans the two repositories, which is why the registration
// flow carries its own compensation logic.
type IdentityRepository interface {
	// CreateIdentity persists a new identity and returns the stored
	// record. Returns [ErrIdentityAlreadyExists] when the identifier is
	// already taken.
	CreateIdentity(ctx context.Context, identity models.Identity) (models.Identity, error)

	// GetIdentity returns the identity with the given identifier, or
	// [ErrIdentityNotFound].
	GetIdentity(ctx context.Context, id string) (models.Identity, error)

	// DeleteIdentity removes the identity record. Used only as the
	// compensating action for a failed registration and by the orphan
	// sweeper. Returns [ErrIdentityNotFound] when no record exists.
	DeleteIdentity(ctx context.Context, id string) error

	// TouchLastLogin sets the last successful authentication timestamp.
	// Returns [ErrIdentityNotFound] when no record exists.
	TouchLastLogin(ctx context.Context, id string, at time.Time) error

	// ListOrphanIdentities returns identities created before olderThan
	// that have no face link. These are residue of registrations whose
	// compensating delete failed.
	ListOrphanIdentities(ctx context.Context, olderThan time.Time) ([]models.Identity, error)
}

// FaceLinkRepository stores the records binding identities to their
// encrypted image blobs.
type FaceLinkRepository interface {
	// CreateFaceLink persists a new face link and returns the stored
	// record. Returns [ErrFaceLinkAlreadyExists] when the identity
	// already holds a link.
	CreateFaceLink(ctx context.Context, link models.FaceLink) (models.FaceLink, error)

	// GetFaceLinkByIdentity returns the link owned by the given
	// identity, or [ErrFaceLinkNotFound].
	GetFaceLinkByIdentity(ctx context.Context, identityID string) (models.FaceLink, error)

	// ListFaceLinks returns all current face links. Order is not
	// significant; callers must not rely on it for correctness.
	ListFaceLinks(ctx context.Context) ([]models.FaceLink, error)
}
