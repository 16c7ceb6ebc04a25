package service

import (
	"context"

	"github.com/edukite/face-auth/models"
)

// EnrollmentService registers new identities: credentials in the relational
// store, the face image in the blob store, with explicit compensation when
// the two-store write partially fails.
type EnrollmentService interface {
	Register(ctx context.Context, request models.RegistrationRequest) (models.Identity, error)
}

// FaceAuthService authenticates a presented face image by scanning every
// enrolled face.
type FaceAuthService interface {
	Authenticate(ctx context.Context, image []byte) (models.AuthResult, error)
}

// AccountService serves account listings and stored face images for the
// front-end API.
type AccountService interface {
	ListAccounts(ctx context.Context) ([]models.AccountSummary, error)
	FaceImage(ctx context.Context, identityID string) ([]byte, error)
	FaceLink(ctx context.Context, identityID string) (models.FaceLink, error)
	RegisterCustom(ctx context.Context, fullName string, image []byte) (models.Identity, error)
}

// SessionService issues and validates session JWTs.
type SessionService interface {
	CreateToken(ctx context.Context, identityID string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AppInfoService exposes build information for the version endpoint.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// EnrollmentServiceWrapper defines middleware composition for
// EnrollmentService. Implementations wrap an existing EnrollmentService to
// add behavior such as validating.
type EnrollmentServiceWrapper interface {
	Wrap(EnrollmentService) EnrollmentService
}
