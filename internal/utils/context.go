// Package utils provides general-purpose helper utilities used across
// different parts of the application: type-safe context keys, password
// hashing, HTTP response writing, JWT token generation and validation, and
// identity ID generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// IdentityIDCtxKey is the key used to store the authenticated identity's
// identifier in the context. Used together with GetIdentityIDFromContext
// for type-safe retrieval.
var IdentityIDCtxKey = contextKey("identityID")

// GetIdentityIDFromContext retrieves the identity identifier from the
// context.
//
// Returns the identity ID and an ok flag:
//   - ok == true: value is found and has the correct string type
//   - ok == false: value is missing or has an unexpected type
func GetIdentityIDFromContext(ctx context.Context) (string, bool) {
	identityID, ok := ctx.Value(IdentityIDCtxKey).(string)
	return identityID, ok
}
