// Package crypto provides the AES-256-GCM cipher used to seal face images
// before they are handed to the blob store.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"
)

// FormatAES256GCM is the encryption-format tag written to face links for
// blobs sealed by this package.
const FormatAES256GCM = "aes256gcm"

// imageCipher is the private implementation of [ImageCipher].
type imageCipher struct {
	aead cipher.AEAD
}

// NewImageCipher constructs an [ImageCipher] from the configured secret.
// The 256-bit AES key is derived as SHA-256(secret), so any non-empty
// secret string yields a valid key.
func NewImageCipher(secret string) (ImageCipher, error) {
	if secret == "" {
		return nil, fmt.Errorf("empty blob encryption secret")
	}

	key := sha256.Sum256([]byte(secret))

	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, fmt.Errorf("error creating aes cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("error creating gcm: %w", err)
	}

	return &imageCipher{aead: aead}, nil
}

// Seal implements [ImageCipher]. A random 12-byte nonce is prepended to the
// ciphertext so that Open can locate it: blob = nonce ‖ ciphertext.
func (c *imageCipher) Seal(plain []byte) ([]byte, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("error reading nonce: %w", err)
	}

	sealed := c.aead.Seal(nil, nonce, plain, nil)
	return append(nonce, sealed...), nil
}

// Open implements [ImageCipher]. It unwraps a blob produced by
// [imageCipher.Seal]. The blob must be at least as long as the GCM nonce
// (12 bytes). Returns an error if the blob is too short, the key is wrong,
// or the ciphertext is corrupted (authentication-tag mismatch).
func (c *imageCipher) Open(sealed []byte) ([]byte, error) {
	nonceSize := c.aead.NonceSize()
	if len(sealed) < nonceSize {
		return nil, fmt.Errorf("ciphertext too short")
	}

	// Split the blob into nonce and actual ciphertext.
	nonce, ciphertext := sealed[:nonceSize], sealed[nonceSize:]

	plain, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("decryption failed: %w", err)
	}

	return plain, nil
}

// Format implements [ImageCipher].
func (c *imageCipher) Format() string {
	return FormatAES256GCM
}
