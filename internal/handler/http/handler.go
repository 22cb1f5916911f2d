// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-festa/internal/config"
	"github.com/MKhiriev/go-festa/internal/logger"
	"github.com/MKhiriev/go-festa/internal/service"
	"github.com/MKhiriev/go-festa/internal/utils"
)

type Handler struct {
	services *service.Services
	cfg      config.Server
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
}
