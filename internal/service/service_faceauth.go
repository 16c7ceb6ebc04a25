package service

import (
	"context"
	"fmt"
	"time"

	"github.com/edukite/face-auth/internal/blobstore"
	"github.com/edukite/face-auth/internal/logger"
	"github.com/edukite/face-auth/internal/matcher"
	"github.com/edukite/face-auth/internal/store"
	"github.com/edukite/face-auth/models"
)

// faceAuthService is the concrete implementation of FaceAuthService.
// Authentication is a linear scan: every enrolled face is downloaded,
// decrypted and compared against the presented image until one is
// accepted.
type faceAuthService struct {
	identities store.IdentityRepository
	faceLinks  store.FaceLinkRepository
	blobs      blobstore.BlobStore
	matcher    *matcher.Matcher

	logger *logger.Logger
}

// NewFaceAuthService constructs a FaceAuthService over the given
// repositories, blob store and matcher.
func NewFaceAuthService(identities store.IdentityRepository, faceLinks store.FaceLinkRepository, blobs blobstore.BlobStore, m *matcher.Matcher, logger *logger.Logger) FaceAuthService {
	return &faceAuthService{
		identities: identities,
		faceLinks:  faceLinks,
		blobs:      blobs,
		matcher:    m,
		logger:     logger,
	}
}

// Authenticate matches the presented image against every enrolled face in
// listing order and returns the owner of the first accepted match.
//
// A candidate whose stored image cannot be downloaded or decrypted is
// logged and skipped; an unreadable candidate never aborts the scan. After
// an accepted match the identity's last-login timestamp is touched
// best-effort; a failing touch does not fail the authentication.
//
// Returns the matched identity's ID and email or:
//   - ErrInvalidDataProvided if image is empty.
//   - ErrNoFacesEnrolled if the store holds no faces at all.
//   - ErrFaceNotRecognized if the scan completes without an accepted match.
//   - A wrapped store error if the face listing itself fails.
func (a *faceAuthService) Authenticate(ctx context.Context, image []byte) (models.AuthResult, error) {
	log := logger.FromContext(ctx)

	if len(image) == 0 {
		log.Error().Msg("no face image provided for authentication")
		return models.AuthResult{}, ErrInvalidDataProvided
	}

	links, err := a.faceLinks.ListFaceLinks(ctx)
	if err != nil {
		log.Err(err).Msg("face listing ended with error")
		return models.AuthResult{}, fmt.Errorf("face listing ended with error: %w", err)
	}
	if len(links) == 0 {
		return models.AuthResult{}, ErrNoFacesEnrolled
	}

	for _, link := range links {
		stored, err := a.blobs.Download(ctx, link.ObjectRef)
		if err != nil {
			log.Warn().Err(err).
				Str("identity_id", link.IdentityID).
				Str("object_ref", link.ObjectRef).
				Msg("skipping unreadable enrolled face")
			continue
		}

		if !a.matcher.Match(image, stored) {
			continue
		}

		identity, err := a.identities.GetIdentity(ctx, link.IdentityID)
		if err != nil {
			log.Warn().Err(err).
				Str("identity_id", link.IdentityID).
				Msg("skipping matched face without identity record")
			continue
		}

		if err := a.identities.TouchLastLogin(ctx, identity.ID, time.Now()); err != nil {
			log.Warn().Err(err).
				Str("identity_id", identity.ID).
				Msg("updating last login ended with error")
		}

		return models.AuthResult{
			IdentityID: identity.ID,
			Email:      identity.Email,
		}, nil
	}

	return models.AuthResult{}, ErrFaceNotRecognized
}
