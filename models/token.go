package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a session JWT issued after a successful registration or face
// authentication.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access (subject, expiry, etc.).
type Token struct {
	// Token is the underlying JWT token used for signing and claim
	// inspection. Excluded from JSON serialization because only the
	// compact string form is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set
	// (sub, exp, iat, nbf, iss, aud, jti) as defined by RFC 7519.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// IdentityID is the owner identifier extracted from the "sub" claim.
	IdentityID string `json:"-"`
}

// GetIdentityID extracts the identity identifier from the token's "sub"
// (subject) claim. Returns an error if the subject claim is missing.
func (t *Token) GetIdentityID() (string, error) {
	return t.GetSubject()
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
