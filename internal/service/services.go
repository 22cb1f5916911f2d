// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-festa/internal/config"
	"github.com/MKhiriev/go-festa/internal/locker"
	"github.com/MKhiriev/go-festa/internal/logger"
	"github.com/MKhiriev/go-festa/internal/store"
	"github.com/MKhiriev/go-festa/internal/validators"
)

type Services struct {
	AuthService        AuthService
	FoodService        FoodService
	ReservationService ReservationService
	AppInfoService     AppInfoService
	HealthService      HealthService
}

func NewServices(storages *store.Storages, l locker.Locker, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	v := validators.NewRequestValidator()
	auth := NewAuthService(storages.UserRepository, l, v, logger)

	return &Services{
		AuthService:        auth,
		FoodService:        NewFoodService(auth, storages.FoodRepository, storages.ReservationRepository, storages.UserRepository, logger),
		ReservationService: NewReservationService(auth, storages.ReservationRepository, l, v, logger),
		AppInfoService:     appInfo,
		HealthService:      NewHealthService(logger),
	}, nil
}
