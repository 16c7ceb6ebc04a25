package store

import "github.com/edukite/face-auth/internal/logger"

// Storages aggregates the credential store repositories for injection into
// the service layer.
type Storages struct {
	IdentityRepository IdentityRepository
	FaceLinkRepository FaceLinkRepository
}

// NewStorages wires both repositories over the shared database handle.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		IdentityRepository: NewIdentityRepository(db, logger),
		FaceLinkRepository: NewFaceLinkRepository(db, logger),
	}
}
