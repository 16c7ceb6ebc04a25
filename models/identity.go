package models

import "time"

// Identity represents a registrant: the durable record binding an opaque
// identifier to an email label and a credential hash.
// Sensitive fields must never be exposed outside trusted boundaries.
type Identity struct {
	// ID is the opaque unique identifier of the identity. It is assigned
	// by the registration flow, never supplied by a client, and is
	// immutable once written.
	ID string `json:"user_id"`

	// Email is a display label for the identity. It is intentionally NOT
	// a uniqueness key: the same email may be registered more than once.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt digest of the credential secret
	// (salt embedded in the digest). The raw secret is never persisted
	// or logged.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the identity was registered.
	CreatedAt time.Time `json:"created_at"`

	// LastLogin is the timestamp of the most recent successful face
	// authentication. Nil until the identity authenticates for the
	// first time.
	LastLogin *time.Time `json:"last_login,omitempty"`
}

// TableName returns the name of the database table
// associated with the Identity model.
func (i Identity) TableName() string {
	return "identities"
}
