package blobstore

import (
	"context"
	"fmt"

	"github.com/edukite/face-auth/internal/crypto"
	"github.com/edukite/face-auth/models"
)

// EncryptedStore decorates another [BlobStore] with at-rest encryption.
// Payloads are sealed before Upload and opened after Download, so the
// wrapped backend only ever sees ciphertext.
type EncryptedStore struct {
	inner  BlobStore
	cipher crypto.ImageCipher
}

// NewEncryptedStore wraps inner so every payload passes through cipher.
func NewEncryptedStore(inner BlobStore, cipher crypto.ImageCipher) *EncryptedStore {
	return &EncryptedStore{
		inner:  inner,
		cipher: cipher,
	}
}

// Upload seals data and stores the ciphertext in the wrapped backend. The
// returned ref carries the cipher's format tag so the stored bytes remain
// interpretable later.
func (e *EncryptedStore) Upload(ctx context.Context, identityID string, data []byte) (models.BlobRef, error) {
	sealed, err := e.cipher.Seal(data)
	if err != nil {
		return models.BlobRef{}, fmt.Errorf("sealing payload: %w", err)
	}

	ref, err := e.inner.Upload(ctx, identityID, sealed)
	if err != nil {
		return models.BlobRef{}, err
	}

	ref.Format = e.cipher.Format()
	return ref, nil
}

// Download retrieves the ciphertext from the wrapped backend and opens it.
func (e *EncryptedStore) Download(ctx context.Context, objectRef string) ([]byte, error) {
	sealed, err := e.inner.Download(ctx, objectRef)
	if err != nil {
		return nil, err
	}

	data, err := e.cipher.Open(sealed)
	if err != nil {
		return nil, fmt.Errorf("opening payload: %w", err)
	}

	return data, nil
}

// Delete removes the ciphertext from the wrapped backend.
func (e *EncryptedStore) Delete(ctx context.Context, objectRef string) error {
	return e.inner.Delete(ctx, objectRef)
}
