package service

import (
	"context"
	"fmt"

	"github.com/edukite/face-auth/internal/validators"
	"github.com/edukite/face-auth/models"
)

// EnrollmentValidationService decorates an EnrollmentService with input
// validation. Requests with missing fields or an undecodable image are
// rejected before any state is written.
type EnrollmentValidationService struct {
	inner     EnrollmentService
	validator validators.Validator
}

func NewEnrollmentValidationService() EnrollmentServiceWrapper {
	return &EnrollmentValidationService{
		validator: validators.NewRegistrationValidator(),
	}
}

// Wrap returns a decorated EnrollmentService applying validation before
// delegation.
func (v *EnrollmentValidationService) Wrap(inner EnrollmentService) EnrollmentService {
	return &EnrollmentValidationService{
		inner:     inner,
		validator: v.validator,
	}
}

func (v *EnrollmentValidationService) Register(ctx context.Context, request models.RegistrationRequest) (models.Identity, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Identity{}, fmt.Errorf("error during registration data validation: %w", err)
	}

	return v.inner.Register(ctx, request)
}
