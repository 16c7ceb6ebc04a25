package service

import (
	"context"
	"fmt"
	"time"

	"github.com/edukite/face-auth/internal/config"
	"github.com/edukite/face-auth/internal/logger"
	"github.com/edukite/face-auth/internal/utils"
	"github.com/edukite/face-auth/models"
)

// sessionService is the concrete implementation of SessionService. It
// issues and validates the HMAC-signed session JWTs returned after a
// successful registration or face authentication.
type sessionService struct {
	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during
	// parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewSessionService constructs a SessionService populated with security
// parameters from cfg.
func NewSessionService(cfg config.App, logger *logger.Logger) SessionService {
	return &sessionService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// CreateToken issues a signed JWT for the given identity.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, and expires after
// tokenDuration.
func (s *sessionService) CreateToken(ctx context.Context, identityID string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(s.tokenIssuer, identityID, s.tokenDuration, s.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature
// and the issuer claim. Any validation failure (expired, wrong issuer,
// malformed) is normalised to ErrTokenIsExpiredOrInvalid so that callers
// do not need to inspect low-level JWT errors.
func (s *sessionService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
