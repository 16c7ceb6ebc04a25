package models

// RegistrationRequest carries everything needed to enroll a new identity:
// the credential pair and the raw face image bytes as received from the
// multipart form.
type RegistrationRequest struct {
	// Email is the display label for the new identity.
	Email string

	// Password is the raw credential secret. It is hashed immediately by
	// the enrollment flow and must never be persisted or logged.
	Password string

	// Image holds the raw face image bytes. No format is mandated beyond
	// being decodable as a raster image.
	Image []byte
}
