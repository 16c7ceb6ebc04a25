package validators

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edukite/face-auth/models"
)

func validImage(t *testing.T) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))))
	return buf.Bytes()
}

func TestRegistrationValidator_Valid(t *testing.T) {
	v := NewRegistrationValidator()

	request := models.RegistrationRequest{
		Email:    "alice@example.com",
		Password: "sw0rdf1sh",
		Image:    validImage(t),
	}

	assert.NoError(t, v.Validate(context.Background(), request))
	assert.NoError(t, v.Validate(context.Background(), &request))
}

func TestRegistrationValidator_MissingFields(t *testing.T) {
	v := NewRegistrationValidator()
	img := validImage(t)

	tests := []struct {
		name    string
		request models.RegistrationRequest
		wantErr error
	}{
		{"missing email", models.RegistrationRequest{Password: "p", Image: img}, ErrEmailRequired},
		{"missing password", models.RegistrationRequest{Email: "e@x.com", Image: img}, ErrPasswordRequired},
		{"missing image", models.RegistrationRequest{Email: "e@x.com", Password: "p"}, ErrImageRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.request)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRegistrationValidator_UndecodableImage(t *testing.T) {
	v := NewRegistrationValidator()

	request := models.RegistrationRequest{
		Email:    "alice@example.com",
		Password: "sw0rdf1sh",
		Image:    []byte("not an image"),
	}

	assert.ErrorIs(t, v.Validate(context.Background(), request), ErrImageNotDecodable)
}

func TestRegistrationValidator_FieldScoping(t *testing.T) {
	v := NewRegistrationValidator()

	// Only the email field is checked; the missing image is ignored.
	request := models.RegistrationRequest{Email: "alice@example.com"}
	assert.NoError(t, v.Validate(context.Background(), request, FieldEmail))
}

func TestRegistrationValidator_UnsupportedType(t *testing.T) {
	v := NewRegistrationValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
}

func TestRegistrationValidator_UnknownField(t *testing.T) {
	v := NewRegistrationValidator()

	request := models.RegistrationRequest{
		Email:    "alice@example.com",
		Password: "sw0rdf1sh",
		Image:    validImage(t),
	}

	assert.ErrorIs(t, v.Validate(context.Background(), request, "nope"), ErrUnknownField)
}
