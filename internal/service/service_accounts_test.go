package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edukite/face-auth/internal/logger"
	"github.com/edukite/face-auth/internal/store"
	"github.com/edukite/face-auth/models"
)

func newRawAccountService(identities *mockIdentityRepository, faceLinks *mockFaceLinkRepository, blobs *mockBlobStore, enrollment EnrollmentService) *accountService {
	return &accountService{
		identities: identities,
		faceLinks:  faceLinks,
		blobs:      blobs,
		enrollment: enrollment,
		logger:     logger.Nop(),
	}
}

func TestAccountService_ListAccounts(t *testing.T) {
	faceLinks := &mockFaceLinkRepository{
		listFn: func(_ context.Context) ([]models.FaceLink, error) {
			return []models.FaceLink{
				{IdentityID: "user_1", ObjectRef: "faces/user_1"},
				{IdentityID: "user_2", ObjectRef: "faces/user_2"},
			}, nil
		},
	}
	identities := &mockIdentityRepository{
		getFn: func(_ context.Context, id string) (models.Identity, error) {
			return models.Identity{ID: id, Email: id + "@example.com"}, nil
		},
	}

	svc := newRawAccountService(identities, faceLinks, &mockBlobStore{}, nil)

	accounts, err := svc.ListAccounts(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 2)

	assert.Equal(t, "user_1", accounts[0].ID)
	assert.Equal(t, "user_1@example.com", accounts[0].FullName)
	assert.Equal(t, "EXISTING", accounts[0].Type)
	assert.Equal(t, "/api/accounts/user_1/image", accounts[0].ImageURL)
}

func TestAccountService_ListAccounts_SkipsDanglingLink(t *testing.T) {
	faceLinks := &mockFaceLinkRepository{
		listFn: func(_ context.Context) ([]models.FaceLink, error) {
			return []models.FaceLink{
				{IdentityID: "user_1"},
				{IdentityID: "user_gone"},
			}, nil
		},
	}
	identities := &mockIdentityRepository{
		getFn: func(_ context.Context, id string) (models.Identity, error) {
			if id == "user_gone" {
				return models.Identity{}, store.ErrIdentityNotFound
			}
			return models.Identity{ID: id, Email: id + "@example.com"}, nil
		},
	}

	svc := newRawAccountService(identities, faceLinks, &mockBlobStore{}, nil)

	accounts, err := svc.ListAccounts(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "user_1", accounts[0].ID)
}

func TestAccountService_FaceImage(t *testing.T) {
	faceLinks := &mockFaceLinkRepository{
		getByIdentityFn: func(_ context.Context, identityID string) (models.FaceLink, error) {
			return models.FaceLink{IdentityID: identityID, ObjectRef: "faces/" + identityID}, nil
		},
	}
	blobs := &mockBlobStore{
		downloadFn: func(_ context.Context, objectRef string) ([]byte, error) {
			assert.Equal(t, "faces/user_1", objectRef)
			return []byte("decrypted image"), nil
		},
	}

	svc := newRawAccountService(&mockIdentityRepository{}, faceLinks, blobs, nil)

	image, err := svc.FaceImage(context.Background(), "user_1")
	require.NoError(t, err)
	assert.Equal(t, []byte("decrypted image"), image)
}

func TestAccountService_FaceImage_NoLink(t *testing.T) {
	faceLinks := &mockFaceLinkRepository{
		getByIdentityFn: func(_ context.Context, _ string) (models.FaceLink, error) {
			return models.FaceLink{}, store.ErrFaceLinkNotFound
		},
	}

	svc := newRawAccountService(&mockIdentityRepository{}, faceLinks, &mockBlobStore{}, nil)

	_, err := svc.FaceImage(context.Background(), "user_1")
	assert.ErrorIs(t, err, store.ErrFaceLinkNotFound)
}

func TestAccountService_FaceLink(t *testing.T) {
	faceLinks := &mockFaceLinkRepository{
		getByIdentityFn: func(_ context.Context, identityID string) (models.FaceLink, error) {
			return models.FaceLink{IdentityID: identityID, Format: "aes256gcm"}, nil
		},
	}

	svc := newRawAccountService(&mockIdentityRepository{}, faceLinks, &mockBlobStore{}, nil)

	link, err := svc.FaceLink(context.Background(), "user_1")
	require.NoError(t, err)
	assert.Equal(t, "user_1", link.IdentityID)
	assert.Equal(t, "aes256gcm", link.Format)
}

type mockEnrollmentService struct {
	registerFn func(ctx context.Context, request models.RegistrationRequest) (models.Identity, error)
}

func (m *mockEnrollmentService) Register(ctx context.Context, request models.RegistrationRequest) (models.Identity, error) {
	return m.registerFn(ctx, request)
}

func TestAccountService_RegisterCustom(t *testing.T) {
	var gotRequest models.RegistrationRequest
	enrollment := &mockEnrollmentService{
		registerFn: func(_ context.Context, request models.RegistrationRequest) (models.Identity, error) {
			gotRequest = request
			return models.Identity{ID: "user_1", Email: request.Email}, nil
		},
	}

	svc := newRawAccountService(&mockIdentityRepository{}, &mockFaceLinkRepository{}, &mockBlobStore{}, enrollment)

	identity, err := svc.RegisterCustom(context.Background(), "Jordan Example", []byte("image"))
	require.NoError(t, err)

	assert.Equal(t, "user_1", identity.ID)
	assert.Equal(t, "Jordan Example", gotRequest.Email)
	assert.Equal(t, defaultCustomPassword, gotRequest.Password)
	assert.Equal(t, []byte("image"), gotRequest.Image)
}

func TestAccountService_RegisterCustom_EnrollmentFailurePropagates(t *testing.T) {
	enrollErr := errors.New("enrollment failed")
	enrollment := &mockEnrollmentService{
		registerFn: func(_ context.Context, _ models.RegistrationRequest) (models.Identity, error) {
			return models.Identity{}, enrollErr
		},
	}

	svc := newRawAccountService(&mockIdentityRepository{}, &mockFaceLinkRepository{}, &mockBlobStore{}, enrollment)

	_, err := svc.RegisterCustom(context.Background(), "Jordan Example", []byte("image"))
	assert.ErrorIs(t, err, enrollErr)
}
