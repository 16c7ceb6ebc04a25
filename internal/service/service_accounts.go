package service

import (
	"context"
	"fmt"

	"github.com/edukite/face-auth/internal/blobstore"
	"github.com/edukite/face-auth/internal/logger"
	"github.com/edukite/face-auth/internal/store"
	"github.com/edukite/face-auth/models"
)

// accountTypeExisting labels accounts surfaced by the listing endpoint.
const accountTypeExisting = "EXISTING"

// defaultCustomPassword is the credential assigned to accounts created
// through the custom-account flow, which collects no password.
const defaultCustomPassword = "default_password"

// accountService is the concrete implementation of AccountService. It
// serves the account-picker API of the front end: listings of enrolled
// identities, their stored face images and the password-less custom
// registration flow.
type accountService struct {
	identities store.IdentityRepository
	faceLinks  store.FaceLinkRepository
	blobs      blobstore.BlobStore
	enrollment EnrollmentService

	logger *logger.Logger
}

// NewAccountService constructs an AccountService. Custom registrations are
// delegated to the given EnrollmentService so they follow the same
// compensation rules as regular ones.
func NewAccountService(identities store.IdentityRepository, faceLinks store.FaceLinkRepository, blobs blobstore.BlobStore, enrollment EnrollmentService, logger *logger.Logger) AccountService {
	return &accountService{
		identities: identities,
		faceLinks:  faceLinks,
		blobs:      blobs,
		enrollment: enrollment,
		logger:     logger,
	}
}

// ListAccounts returns a summary for every identity that holds a face
// link. An identity whose row disappeared under a surviving link is logged
// and skipped.
func (s *accountService) ListAccounts(ctx context.Context) ([]models.AccountSummary, error) {
	log := logger.FromContext(ctx)

	links, err := s.faceLinks.ListFaceLinks(ctx)
	if err != nil {
		log.Err(err).Msg("face listing ended with error")
		return nil, fmt.Errorf("face listing ended with error: %w", err)
	}

	accounts := make([]models.AccountSummary, 0, len(links))
	for _, link := range links {
		identity, err := s.identities.GetIdentity(ctx, link.IdentityID)
		if err != nil {
			log.Warn().Err(err).
				Str("identity_id", link.IdentityID).
				Msg("skipping face link without identity record")
			continue
		}

		accounts = append(accounts, models.AccountSummary{
			ID:       identity.ID,
			FullName: identity.Email,
			Type:     accountTypeExisting,
			ImageURL: fmt.Sprintf("/api/accounts/%s/image", identity.ID),
		})
	}

	return accounts, nil
}

// FaceImage downloads and decrypts the stored face image of the given
// identity.
func (s *accountService) FaceImage(ctx context.Context, identityID string) ([]byte, error) {
	log := logger.FromContext(ctx)

	link, err := s.faceLinks.GetFaceLinkByIdentity(ctx, identityID)
	if err != nil {
		log.Err(err).Str("identity_id", identityID).Msg("face link lookup ended with error")
		return nil, fmt.Errorf("face link lookup ended with error: %w", err)
	}

	image, err := s.blobs.Download(ctx, link.ObjectRef)
	if err != nil {
		log.Err(err).Str("identity_id", identityID).Msg("face image download ended with error")
		return nil, fmt.Errorf("face image download ended with error: %w", err)
	}

	return image, nil
}

// FaceLink returns the face link metadata of the given identity.
func (s *accountService) FaceLink(ctx context.Context, identityID string) (models.FaceLink, error) {
	link, err := s.faceLinks.GetFaceLinkByIdentity(ctx, identityID)
	if err != nil {
		return models.FaceLink{}, fmt.Errorf("face link lookup ended with error: %w", err)
	}
	return link, nil
}

// RegisterCustom enrolls an account collected by the account-picker UI:
// only a display name and a face image, with a fixed default password. The
// name doubles as the email label, matching the listing endpoint.
func (s *accountService) RegisterCustom(ctx context.Context, fullName string, image []byte) (models.Identity, error) {
	return s.enrollment.Register(ctx, models.RegistrationRequest{
		Email:    fullName,
		Password: defaultCustomPassword,
		Image:    image,
	})
}
