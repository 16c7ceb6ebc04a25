// Package blobstore provides the external storage adapters for encrypted
// face images. Two backends are available, selected by configuration: an
// S3-compatible object store and an HTTP media service. Both are normally
// wrapped by [NewEncryptedStore], which encrypts payloads before they leave
// the process and decrypts them on the way back in.
package blobstore

import (
	"context"

	"github.com/edukite/face-auth/models"
)

// BlobStore stores face image payloads outside the relational database.
// Implementations must treat payloads as opaque bytes.
type BlobStore interface {
	// Upload stores data under a key derived from the identity ID and
	// returns the locator to persist alongside the identity.
	Upload(ctx context.Context, identityID string, data []byte) (models.BlobRef, error)

	// Download retrieves the payload previously stored under objectRef.
	Download(ctx context.Context, objectRef string) ([]byte, error)

	// Delete removes the payload stored under objectRef. Deleting a
	// missing object is not an error.
	Delete(ctx context.Context, objectRef string) error
}
