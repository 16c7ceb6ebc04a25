package service

import (
	"context"
	"fmt"
	"time"

	"github.com/edukite/face-auth/internal/blobstore"
	"github.com/edukite/face-auth/internal/logger"
	"github.com/edukite/face-auth/internal/store"
	"github.com/edukite/face-auth/internal/utils"
	"github.com/edukite/face-auth/models"
)

// enrollmentService is the concrete implementation of EnrollmentService.
// Registration spans two stores that offer no shared transaction: the
// identity row in PostgreSQL and the encrypted face image in the blob
// store. A partial failure is repaired by an explicit compensating delete.
type enrollmentService struct {
	identities store.IdentityRepository
	faceLinks  store.FaceLinkRepository
	blobs      blobstore.BlobStore
	ids        *utils.IdentityIDGenerator

	logger *logger.Logger
}

// NewEnrollmentService constructs an EnrollmentService over the given
// repositories and blob store.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewEnrollmentService(identities store.IdentityRepository, faceLinks store.FaceLinkRepository, blobs blobstore.BlobStore, logger *logger.Logger) EnrollmentService {
	return &enrollmentService{
		identities: identities,
		faceLinks:  faceLinks,
		blobs:      blobs,
		ids:        utils.NewIdentityIDGenerator(),
		logger:     logger,
	}
}

// Register creates a new identity with an enrolled face image.
//
// The write order is fixed: identity row first, blob second, face link
// last. If the blob upload fails after the identity row was written, the
// row is removed by a best-effort compensating delete and the upload
// failure is reported. The compensation runs on a context detached from
// the request so a caller disconnect cannot cancel it; if it fails too,
// the leftover row is picked up later by the orphan sweeper. If the face
// link write fails after a successful upload, the uploaded blob stays
// behind as an accepted orphan.
//
// Returns the persisted identity or:
//   - ErrInvalidDataProvided if email, password or image is empty.
//   - store.ErrIdentityAlreadyExists (wrapped) on an ID collision.
//   - The wrapped upload or store error otherwise.
func (e *enrollmentService) Register(ctx context.Context, request models.RegistrationRequest) (models.Identity, error) {
	log := logger.FromContext(ctx)

	if request.Email == "" || request.Password == "" || len(request.Image) == 0 {
		log.Error().Str("email", request.Email).Msg("invalid registration data provided")
		return models.Identity{}, ErrInvalidDataProvided
	}

	passwordHash, err := utils.HashPassword(request.Password)
	if err != nil {
		return models.Identity{}, fmt.Errorf("password hashing ended with error: %w", err)
	}

	identity := models.Identity{
		ID:           e.ids.Generate(),
		Email:        request.Email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}

	created, err := e.identities.CreateIdentity(ctx, identity)
	if err != nil {
		log.Err(err).Str("email", identity.Email).Msg("identity creation ended with error")
		return models.Identity{}, fmt.Errorf("identity creation ended with error: %w", err)
	}

	ref, err := e.blobs.Upload(ctx, created.ID, request.Image)
	if err != nil {
		e.compensateIdentity(ctx, created.ID)
		log.Err(err).Str("identity_id", created.ID).Msg("face image upload ended with error")
		return models.Identity{}, fmt.Errorf("face image upload ended with error: %w", err)
	}

	link := models.FaceLink{
		IdentityID: created.ID,
		ObjectRef:  ref.ObjectRef,
		URL:        ref.URL,
		Format:     ref.Format,
		CreatedAt:  time.Now(),
	}

	if _, err := e.faceLinks.CreateFaceLink(ctx, link); err != nil {
		// The uploaded blob stays behind; the identity row is removed so
		// the registration can be retried.
		e.compensateIdentity(ctx, created.ID)
		log.Err(err).Str("identity_id", created.ID).Msg("face link creation ended with error")
		return models.Identity{}, fmt.Errorf("face link creation ended with error: %w", err)
	}

	return created, nil
}

// compensateIdentity removes the identity row written before a later
// registration step failed. Best-effort: a failure here is logged and the
// orphan sweeper handles the residue. Runs detached from the request
// context so a caller disconnect cannot abort the repair.
func (e *enrollmentService) compensateIdentity(ctx context.Context, identityID string) {
	detached := context.WithoutCancel(ctx)
	if err := e.identities.DeleteIdentity(detached, identityID); err != nil {
		e.logger.Err(err).
			Str("func", "*enrollmentService.compensateIdentity").
			Str("identity_id", identityID).
			Msg("compensating identity delete failed, leaving residue for the orphan sweeper")
	}
}
