// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-festa/internal/adapter"
	"github.com/MKhiriev/go-festa/internal/config"
	"github.com/MKhiriev/go-festa/internal/logger"
	"github.com/MKhiriev/go-festa/models"
)

// Storages aggregates the repositories of the selected backend together with
// its health check and shutdown hook.
type Storages struct {
	UserRepository        UserRepository
	FoodRepository        FoodRepository
	ReservationRepository ReservationRepository

	ping  func(ctx context.Context) error
	close func() error
}

// NewStorages builds the backend described by cfg: the SQL backend when a
// DSN is configured (migrating the schema first), the remote REST datastore
// otherwise.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	if cfg.UsesDB() {
		return newSQLStorages(ctx, cfg.DB, logger)
	}
	return newRESTStorages(cfg.Remote, logger)
}

func newRESTStorages(cfg config.Remote, logger *logger.Logger) (*Storages, error) {
	client, err := adapter.NewRESTTableClient(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating datastore client: %w", err)
	}

	return NewRESTStorages(client, cfg, logger), nil
}

// NewRESTStorages wires the remote repositories around client.
func NewRESTStorages(client adapter.TableClient, cfg config.Remote, logger *logger.Logger) *Storages {
	foods := NewRESTFoodRepository(client, logger)

	return &Storages{
		UserRepository:        NewRESTUserRepository(client, logger),
		FoodRepository:        foods,
		ReservationRepository: NewRESTReservationRepository(client, foods, cfg.UpdateAttempts, cfg.UpdateBackoff, logger),
		ping: func(ctx context.Context) error {
			return client.Ping(ctx, models.FoodTableName)
		},
		close: func() error { return nil },
	}
}

func newSQLStorages(ctx context.Context, cfg config.DB, logger *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)

	switch cfg.Driver {
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg, logger)
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg, logger)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return NewSQLStorages(db, logger), nil
}

// NewSQLStorages wires the SQL repositories around db.
func NewSQLStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:        NewUserRepository(db, logger),
		FoodRepository:        NewFoodRepository(db, logger),
		ReservationRepository: NewReservationRepository(db, logger),
		ping:                  db.PingContext,
		close:                 db.Close,
	}
}

// Ping reports whether the backend is reachable.
func (s *Storages) Ping(ctx context.Context) error {
	if s.ping == nil {
		return nil
	}
	return s.ping(ctx)
}

// Close releases the backend's resources.
func (s *Storages) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}
