package models

import "time"

// FaceLink binds one Identity to its single encrypted face image in the
// blob store. The blob store owns the image bytes; the link only records
// an opaque reference. A face link is written once, after a successful
// upload, and is never updated afterwards.
type FaceLink struct {
	// IdentityID references the owning identity. The identity is the
	// lifetime owner; at most one face link exists per identity.
	IdentityID string `json:"user_id"`

	// ObjectRef is the opaque blob-store object name under which the
	// encrypted image was stored (e.g. an S3 key or a media public id).
	ObjectRef string `json:"object_ref"`

	// URL is the opaque locator returned by the blob store, usable for
	// retrieval.
	URL string `json:"url"`

	// Format is the encryption-format tag describing how the stored
	// bytes were sealed (e.g. "aes256gcm").
	Format string `json:"format"`

	// CreatedAt is the timestamp when the link was written.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the FaceLink model.
func (f FaceLink) TableName() string {
	return "face_links"
}

// BlobRef is the locator a blob store returns after a successful upload.
// Its fields feed directly into the FaceLink persisted for the identity.
type BlobRef struct {
	// ObjectRef is the backend object name (S3 key or media public id).
	ObjectRef string

	// URL is a retrieval locator for the stored object.
	URL string

	// Format is the encryption-format tag of the stored bytes. Plain
	// backends leave it empty; the encrypting decorator fills it in.
	Format string
}
