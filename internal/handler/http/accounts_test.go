package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edukite/face-auth/internal/service"
	"github.com/edukite/face-auth/internal/store"
	"github.com/edukite/face-auth/models"
)

func TestListAccounts(t *testing.T) {
	accounts := &mockAccountService{
		listAccountsFn: func(_ context.Context) ([]models.AccountSummary, error) {
			return []models.AccountSummary{
				{ID: "user_1", FullName: "alice@example.com", Type: "EXISTING", ImageURL: "/api/accounts/user_1/image"},
			}, nil
		},
	}

	h := newTestHandler(t, &service.Services{AccountService: accounts})

	req := httptest.NewRequest(http.MethodGet, "/api/accounts/", nil)
	w := httptest.NewRecorder()

	h.Init().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got []models.AccountSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "user_1", got[0].ID)
	assert.Equal(t, "/api/accounts/user_1/image", got[0].ImageURL)
}

func TestListAccounts_Failure(t *testing.T) {
	accounts := &mockAccountService{
		listAccountsFn: func(_ context.Context) ([]models.AccountSummary, error) {
			return nil, errors.New("store unavailable")
		},
	}

	h := newTestHandler(t, &service.Services{AccountService: accounts})

	req := httptest.NewRequest(http.MethodGet, "/api/accounts/", nil)
	w := httptest.NewRecorder()

	h.Init().ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestAccountImage(t *testing.T) {
	accounts := &mockAccountService{
		faceImageFn: func(_ context.Context, identityID string) ([]byte, error) {
			assert.Equal(t, "user_1", identityID)
			return []byte("decrypted image bytes"), nil
		},
	}

	h := newTestHandler(t, &service.Services{AccountService: accounts})

	req := httptest.NewRequest(http.MethodGet, "/api/accounts/user_1/image", nil)
	w := httptest.NewRecorder()

	h.Init().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []byte("decrypted image bytes"), w.Body.Bytes())
	assert.NotEmpty(t, w.Header().Get("Content-Type"))
}

func TestAccountImage_NotFound(t *testing.T) {
	accounts := &mockAccountService{
		faceImageFn: func(_ context.Context, _ string) ([]byte, error) {
			return nil, store.ErrFaceLinkNotFound
		},
	}

	h := newTestHandler(t, &service.Services{AccountService: accounts})

	req := httptest.NewRequest(http.MethodGet, "/api/accounts/missing/image", nil)
	w := httptest.NewRecorder()

	h.Init().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateCustomAccount(t *testing.T) {
	var gotName string
	var gotImage []byte
	accounts := &mockAccountService{
		registerCustomFn: func(_ context.Context, fullName string, image []byte) (models.Identity, error) {
			gotName = fullName
			gotImage = image
			return models.Identity{ID: "user_1", Email: fullName}, nil
		},
	}

	h := newTestHandler(t, &service.Services{AccountService: accounts})

	img := pngBytes(t)
	body, contentType := multipartBody(t,
		map[string]string{"full_name": "Jordan Example"},
		map[string][]byte{"image": img},
	)

	req := httptest.NewRequest(http.MethodPost, "/api/accounts/custom", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	h.Init().ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Jordan Example", gotName)
	assert.Equal(t, img, gotImage)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "user_1", resp["id"])
	assert.Equal(t, "Jordan Example", resp["fullName"])
}

func TestCreateCustomAccount_MissingName(t *testing.T) {
	called := false
	accounts := &mockAccountService{
		registerCustomFn: func(_ context.Context, _ string, _ []byte) (models.Identity, error) {
			called = true
			return models.Identity{}, nil
		},
	}

	h := newTestHandler(t, &service.Services{AccountService: accounts})

	body, contentType := multipartBody(t, nil, map[string][]byte{"image": pngBytes(t)})

	req := httptest.NewRequest(http.MethodPost, "/api/accounts/custom", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	h.Init().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, called)
}

func TestUserFaceLink(t *testing.T) {
	accounts := &mockAccountService{
		faceLinkFn: func(_ context.Context, identityID string) (models.FaceLink, error) {
			return models.FaceLink{
				IdentityID: identityID,
				ObjectRef:  "faces/" + identityID,
				Format:     "aes256gcm",
			}, nil
		},
	}

	h := newTestHandler(t, &service.Services{AccountService: accounts})

	req := httptest.NewRequest(http.MethodGet, "/api/users/user_1/face", nil)
	req.Header.Set("Authorization", "Bearer valid.jwt.token")
	w := httptest.NewRecorder()

	h.Init().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got models.FaceLink
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "user_1", got.IdentityID)
	assert.Equal(t, "faces/user_1", got.ObjectRef)
}

func TestUserFaceLink_NotFound(t *testing.T) {
	accounts := &mockAccountService{
		faceLinkFn: func(_ context.Context, _ string) (models.FaceLink, error) {
			return models.FaceLink{}, store.ErrFaceLinkNotFound
		},
	}

	h := newTestHandler(t, &service.Services{AccountService: accounts})

	req := httptest.NewRequest(http.MethodGet, "/api/users/missing/face", nil)
	req.Header.Set("Authorization", "Bearer valid.jwt.token")
	w := httptest.NewRecorder()

	h.Init().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
