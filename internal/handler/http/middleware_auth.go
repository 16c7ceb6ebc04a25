package http

import (
	"context"
	"net/http"

	"github.com/edukite/face-auth/internal/logger"
	"github.com/edukite/face-auth/internal/utils"
)

// withAuth enforces JWT session authentication.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via the session service, and on success stores the identity ID from the
// token's subject claim in the request context under
// [utils.IdentityIDCtxKey] before delegating to the next handler.
//
// Requests with a missing, malformed, expired, or otherwise invalid token
// are rejected with HTTP 401 Unauthorized.
func (h *Handler) withAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.SessionService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		// Store the identity ID in the context so that downstream handlers
		// can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.IdentityIDCtxKey, token.IdentityID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
