// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-festa/internal/logger"
)

// DatastoreProbe pings the datastore on every tick and records the outcome.
// The first probe runs immediately.
type DatastoreProbe struct {
	datastore Pinger
	health    HealthRecorder
	interval  time.Duration

	logger *logger.Logger
}

func NewDatastoreProbe(datastore Pinger, health HealthRecorder, interval time.Duration, logger *logger.Logger) *DatastoreProbe {
	return &DatastoreProbe{
		datastore: datastore,
		health:    health,
		interval:  interval,
		logger:    logger,
	}
}

func (p *DatastoreProbe) Run(ctx context.Context) {
	p.logger.Info().Dur("interval", p.interval).Msg("datastore probe started")

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		p.probe(ctx)

		select {
		case <-ctx.Done():
			p.logger.Info().Msg("datastore probe stopped")
			return
		case <-ticker.C:
		}
	}
}

// probe bounds a single ping by the probe interval.
func (p *DatastoreProbe) probe(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	err := p.datastore.Ping(pingCtx)
	if ctx.Err() != nil {
		return
	}

	if err != nil {
		p.logger.Warn().Err(err).Msg("datastore probe failed")
	}
	p.health.Record(ctx, err)
}
