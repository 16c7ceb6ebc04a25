package utils

import "github.com/google/uuid"

// identityIDPrefix marks generated identity identifiers, keeping them
// recognizable in logs and stored object keys.
const identityIDPrefix = "user_"

// IdentityIDGenerator produces unique identifiers for new identities.
// IDs are time-ordered (UUIDv7) so newly registered identities sort by
// creation time.
type IdentityIDGenerator struct {
}

func NewIdentityIDGenerator() *IdentityIDGenerator {
	return &IdentityIDGenerator{}
}

func (g *IdentityIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return identityIDPrefix + uuid.NewString()
	}

	return identityIDPrefix + v7.String()
}
