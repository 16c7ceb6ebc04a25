package validators

import (
	"context"
	"fmt"

	"github.com/edukite/face-auth/internal/matcher"
	"github.com/edukite/face-auth/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a
// subset of fields (field-level scoping).
const (
	// FieldEmail targets the email label of a registration request.
	FieldEmail = "email"

	// FieldPassword targets the raw credential secret.
	FieldPassword = "password"

	// FieldImage targets the raw face image bytes, including their
	// decodability as a raster image.
	FieldImage = "face_image"
)

// RegistrationValidator implements the Validator interface for
// registration requests. It checks presence of all three fields and that
// the submitted image actually decodes as a raster image, so undecodable
// uploads are rejected before any state is written.
//
// Both value and pointer receivers of RegistrationRequest are supported.
type RegistrationValidator struct {
}

func NewRegistrationValidator() *RegistrationValidator {
	return &RegistrationValidator{}
}

// Validate checks the given registration request. With no field names
// given, every field is validated; otherwise only the named fields are.
func (v *RegistrationValidator) Validate(ctx context.Context, value any, fields ...string) error {
	var request models.RegistrationRequest

	switch typed := value.(type) {
	case models.RegistrationRequest:
		request = typed
	case *models.RegistrationRequest:
		request = *typed
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, value)
	}

	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword, FieldImage}
	}

	for _, field := range fields {
		switch field {
		case FieldEmail:
			if request.Email == "" {
				return ErrEmailRequired
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrPasswordRequired
			}
		case FieldImage:
			if len(request.Image) == 0 {
				return ErrImageRequired
			}
			if !matcher.Decodable(request.Image) {
				return ErrImageNotDecodable
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}
