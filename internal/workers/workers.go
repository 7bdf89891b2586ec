package workers

import (
	"context"
	"sync"

	"github.com/Dev-vesper/notepad/internal/config"
	"github.com/Dev-vesper/notepad/internal/logger"
	"github.com/Dev-vesper/notepad/internal/store"
)

type Workers struct {
	workers []Worker
}

// New returns an aggregate of the given workers.
func New(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// NewWorkers builds the background workers enabled by cfg.
func NewWorkers(storage store.DocumentStorage, cfg config.Workers, logger *logger.Logger) *Workers {
	if cfg.CheckInterval <= 0 {
		logger.Info().Msg("document check worker is disabled")
		return New()
	}

	return New(NewDocumentCheckWorker(storage, cfg.CheckInterval, logger))
}

// Len returns the number of configured workers.
func (w *Workers) Len() int {
	return len(w.workers)
}

// Run starts every worker in its own goroutine and returns once all of them
// have returned.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Go(func() {
			worker.Run(ctx)
		})
	}
	wg.Wait()
}
