// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-festa/internal/config"
	"github.com/MKhiriev/go-festa/internal/logger"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the background workers. The datastore probe is left out
// when cfg.ProbeInterval is not positive.
func NewWorkers(datastore Pinger, health HealthRecorder, cfg config.Workers, logger *logger.Logger) *Workers {
	var ws []Worker
	if cfg.ProbeInterval > 0 {
		ws = append(ws, NewDatastoreProbe(datastore, health, cfg.ProbeInterval, logger))
	}

	logger.Info().Int("count", len(ws)).Msg("workers created")
	return &Workers{workers: ws}
}

// Run starts every worker in its own goroutine and blocks until all of them
// return.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Go(func() {
			worker.Run(ctx)
		})
	}
	wg.Wait()
}
