// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-festa/internal/logger"
	"github.com/MKhiriev/go-festa/models"
)

type healthService struct {
	mu     sync.RWMutex
	status models.HealthStatus
	now    func() time.Time

	logger *logger.Logger
}

// NewHealthService returns a HealthService reporting "unknown" until the
// first probe is recorded.
func NewHealthService(logger *logger.Logger) HealthService {
	return &healthService{
		status: models.HealthStatus{Status: models.HealthStatusUnknown},
		now:    time.Now,
		logger: logger,
	}
}

func (h *healthService) Status(ctx context.Context) models.HealthStatus {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.status
}

// Record stores the outcome of a probe. Transitions between up and down are
// logged.
func (h *healthService) Record(ctx context.Context, probeErr error) {
	next := models.HealthStatus{Status: models.HealthStatusUp, CheckedAt: h.now().UTC()}
	if probeErr != nil {
		next.Status = models.HealthStatusDown
		next.Error = probeErr.Error()
	}

	h.mu.Lock()
	prev := h.status.Status
	h.status = next
	h.mu.Unlock()

	if prev != next.Status {
		ev := h.logger.Info()
		if probeErr != nil {
			ev = h.logger.Warn().Err(probeErr)
		}
		ev.Str("from", prev).Str("to", next.Status).Msg("datastore health changed")
	}
}
