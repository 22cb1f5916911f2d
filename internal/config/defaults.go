// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	DefaultPort                 = "3000"
	DefaultRequestTimeout       = 15 * time.Second
	DefaultShutdownTimeout      = 10 * time.Second
	DefaultRemoteRequestTimeout = 10 * time.Second
	DefaultUpdateAttempts       = 5
	DefaultUpdateBackoff        = 20 * time.Millisecond
	DefaultDBDriver             = DriverPostgres
	DefaultLockTTL              = 10 * time.Second
	DefaultLockRetryInterval    = 25 * time.Millisecond
	DefaultProbeInterval        = 30 * time.Second
	DefaultLogLevel             = "debug"
)

// Supported database/sql driver names.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// applyDefaults fills zero-valued fields. Legacy variables are consulted
// before the built-in defaults.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = DefaultLogLevel
	}

	if cfg.Server.HTTPAddress == "" {
		port := cfg.Legacy.Port
		if port == "" {
			port = DefaultPort
		}
		cfg.Server.HTTPAddress = ":" + port
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if len(cfg.Server.AllowedOrigins) == 0 {
		cfg.Server.AllowedOrigins = []string{"*"}
	}

	if cfg.Storage.Remote.URL == "" {
		cfg.Storage.Remote.URL = cfg.Legacy.SupabaseURL
	}
	if cfg.Storage.Remote.Key == "" {
		cfg.Storage.Remote.Key = cfg.Legacy.SupabaseKey
	}
	if cfg.Storage.Remote.RequestTimeout == 0 {
		cfg.Storage.Remote.RequestTimeout = DefaultRemoteRequestTimeout
	}
	if cfg.Storage.Remote.UpdateAttempts == 0 {
		cfg.Storage.Remote.UpdateAttempts = DefaultUpdateAttempts
	}
	if cfg.Storage.Remote.UpdateBackoff == 0 {
		cfg.Storage.Remote.UpdateBackoff = DefaultUpdateBackoff
	}
	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = DefaultDBDriver
	}

	if cfg.Locker.TTL == 0 {
		cfg.Locker.TTL = DefaultLockTTL
	}
	if cfg.Locker.RetryInterval == 0 {
		cfg.Locker.RetryInterval = DefaultLockRetryInterval
	}

	if cfg.Workers.ProbeInterval == 0 {
		cfg.Workers.ProbeInterval = DefaultProbeInterval
	}
}
