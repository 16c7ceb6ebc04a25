package workers

import (
	"context"
	"time"

	"github.com/edukite/face-auth/internal/config"
	"github.com/edukite/face-auth/internal/logger"
	"github.com/edukite/face-auth/internal/store"
)

// orphanSweeper periodically removes identity rows that have no face link.
// Such rows are the residue of a registration whose blob upload failed and
// whose compensating delete failed too; until swept, they are credentials
// nobody can ever authenticate as.
//
// Only identities older than the configured orphan age are touched, so a
// registration that is still in flight (identity written, face link not
// yet) is never mistaken for residue.
type orphanSweeper struct {
	identities    store.IdentityRepository
	sweepInterval time.Duration
	orphanAge     time.Duration

	logger *logger.Logger
}

func newOrphanSweeper(identities store.IdentityRepository, cfg config.Workers, logger *logger.Logger) *orphanSweeper {
	return &orphanSweeper{
		identities:    identities,
		sweepInterval: cfg.SweepInterval,
		orphanAge:     cfg.OrphanAge,
		logger:        logger,
	}
}

// Run starts the sweep loop in a background goroutine and returns.
func (s *orphanSweeper) Run() {
	s.logger.Info().
		Dur("sweep_interval", s.sweepInterval).
		Dur("orphan_age", s.orphanAge).
		Msg("starting orphan identity sweeper")

	go func() {
		ticker := time.NewTicker(s.sweepInterval)
		defer ticker.Stop()

		for range ticker.C {
			s.sweep(context.Background())
		}
	}()
}

// sweep deletes every identity older than the orphan age that has no face
// link. Failures are logged and retried implicitly on the next tick.
func (s *orphanSweeper) sweep(ctx context.Context) {
	cutoff := time.Now().Add(-s.orphanAge)

	orphans, err := s.identities.ListOrphanIdentities(ctx, cutoff)
	if err != nil {
		s.logger.Err(err).Msg("listing orphan identities ended with error")
		return
	}

	for _, orphan := range orphans {
		if err := s.identities.DeleteIdentity(ctx, orphan.ID); err != nil {
			s.logger.Err(err).
				Str("identity_id", orphan.ID).
				Msg("deleting orphan identity ended with error")
			continue
		}

		s.logger.Info().
			Str("identity_id", orphan.ID).
			Time("created_at", orphan.CreatedAt).
			Msg("deleted orphan identity")
	}
}
