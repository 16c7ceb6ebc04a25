package workers

import (
	"github.com/edukite/face-auth/internal/config"
	"github.com/edukite/face-auth/internal/logger"
	"github.com/edukite/face-auth/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the application's background workers from the
// worker configuration. A zero sweep interval disables the orphan sweeper.
func NewWorkers(storages *store.Storages, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}

	if cfg.SweepInterval > 0 {
		w.workers = append(w.workers, newOrphanSweeper(storages.IdentityRepository, cfg, logger))
	}

	return w
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
