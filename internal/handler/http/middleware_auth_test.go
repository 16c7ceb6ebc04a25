package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edukite/face-auth/internal/service"
	"github.com/edukite/face-auth/internal/utils"
	"github.com/edukite/face-auth/models"
)

// authProbe mounts withAuth around a handler that records the identity ID
// placed in the request context.
func authProbe(t *testing.T, sessions *mockSessionService) (http.Handler, *string) {
	t.Helper()

	h := newTestHandler(t, &service.Services{SessionService: sessions})

	var gotIdentityID string
	probe := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotIdentityID, _ = utils.GetIdentityIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	return h.withAuth(probe), &gotIdentityID
}

func TestWithAuth_ValidToken(t *testing.T) {
	sessions := &mockSessionService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			assert.Equal(t, "valid.jwt.token", tokenString)
			return models.Token{IdentityID: "user_1"}, nil
		},
	}
	guard, gotIdentityID := authProbe(t, sessions)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer valid.jwt.token")
	w := httptest.NewRecorder()

	guard.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user_1", *gotIdentityID)
}

func TestWithAuth_MissingHeader(t *testing.T) {
	guard, _ := authProbe(t, &mockSessionService{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	guard.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWithAuth_MalformedHeader(t *testing.T) {
	guard, _ := authProbe(t, &mockSessionService{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer")
	w := httptest.NewRecorder()

	guard.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWithAuth_InvalidToken(t *testing.T) {
	sessions := &mockSessionService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		},
	}
	guard, _ := authProbe(t, sessions)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer expired.jwt.token")
	w := httptest.NewRecorder()

	guard.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUserFaceLink_Unauthorized(t *testing.T) {
	accounts := &mockAccountService{
		faceLinkFn: func(_ context.Context, _ string) (models.FaceLink, error) {
			return models.FaceLink{}, errors.New("must not be called")
		},
	}

	h := newTestHandler(t, &service.Services{AccountService: accounts})

	req := httptest.NewRequest(http.MethodGet, "/api/users/user_1/face", nil)
	w := httptest.NewRecorder()

	h.Init().ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
