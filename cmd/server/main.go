// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-festa/internal/config"
	"github.com/MKhiriev/go-festa/internal/handler"
	"github.com/MKhiriev/go-festa/internal/locker"
	"github.com/MKhiriev/go-festa/internal/logger"
	"github.com/MKhiriev/go-festa/internal/server"
	"github.com/MKhiriev/go-festa/internal/service"
	"github.com/MKhiriev/go-festa/internal/store"
	"github.com/MKhiriev/go-festa/internal/workers"
	"github.com/MKhiriev/go-festa/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("festa-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Bool("sql_backend", cfg.Storage.UsesDB()).
		Bool("redis_locker", cfg.Locker.RedisAddr != "").
		Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	lock, err := locker.NewLocker(ctx, cfg.Locker, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating locker")
	}
	defer lock.Close()

	services, err := service.NewServices(storages, lock, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	ws := workers.NewWorkers(storages, services.HealthService, cfg.Workers, log)

	srv, err := server.NewServer(handlers, ws, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
