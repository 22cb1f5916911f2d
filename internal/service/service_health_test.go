// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-festa/internal/logger"
	"github.com/MKhiriev/go-festa/models"
	"github.com/stretchr/testify/assert"
)

func TestHealthService_UnknownUntilRecorded(t *testing.T) {
	svc := NewHealthService(logger.Nop())

	status := svc.Status(context.Background())

	assert.Equal(t, models.HealthStatusUnknown, status.Status)
	assert.True(t, status.CheckedAt.IsZero())
}

func TestHealthService_Record(t *testing.T) {
	svc := NewHealthService(logger.Nop())
	checkedAt := time.Date(2026, 10, 17, 20, 0, 0, 0, time.UTC)
	svc.(*healthService).now = func() time.Time { return checkedAt }

	svc.Record(context.Background(), errors.New("connection refused"))
	assert.Equal(t, models.HealthStatus{
		Status:    models.HealthStatusDown,
		CheckedAt: checkedAt,
		Error:     "connection refused",
	}, svc.Status(context.Background()))

	svc.Record(context.Background(), nil)
	assert.Equal(t, models.HealthStatus{
		Status:    models.HealthStatusUp,
		CheckedAt: checkedAt,
	}, svc.Status(context.Background()))
}
