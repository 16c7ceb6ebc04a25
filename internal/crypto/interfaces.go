package crypto

// ImageCipher seals face image bytes before they leave the process for the
// blob store and opens them again after download. The blob store only ever
// sees ciphertext.
type ImageCipher interface {
	// Seal encrypts plain and returns the sealed blob.
	Seal(plain []byte) ([]byte, error)

	// Open decrypts a blob previously produced by Seal. It fails if the
	// blob is truncated, tampered with, or was sealed under a different
	// key.
	Open(sealed []byte) ([]byte, error)

	// Format returns the encryption-format tag recorded on face links
	// (e.g. "aes256gcm").
	Format() string
}
