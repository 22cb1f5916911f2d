// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of the festa backend: identity
// checks, the annotated food list and reservations. Services depend on the
// store repositories and the locker, never on the transport.
package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-festa/models"
)

// AuthService registers guests and checks name+phone identities.
type AuthService interface {
	// Register creates the user, or logs in the existing one when the phone
	// is already registered under the same name.
	Register(ctx context.Context, identity models.Identity) (models.User, error)

	// Authenticate returns the user owning the phone when its name matches.
	Authenticate(ctx context.Context, identity models.Identity) (models.User, error)
}

// FoodService lists foods as seen by one guest.
type FoodService interface {
	ListForUser(ctx context.Context, identity models.Identity) ([]models.FoodView, error)
}

// ReservationService reserves and cancels single units of food.
type ReservationService interface {
	Reserve(ctx context.Context, identity models.Identity, foodID int64) (models.Reservation, error)
	Cancel(ctx context.Context, identity models.Identity, foodID int64) (models.Reservation, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// HealthService keeps the result of the latest datastore probe.
type HealthService interface {
	Status(ctx context.Context) models.HealthStatus
	Record(ctx context.Context, probeErr error)
}
