// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.UsesDB() {
		switch cfg.Storage.DB.Driver {
		case DriverPostgres, DriverSQLite:
		default:
			return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
		}
	} else if cfg.Storage.Remote.URL == "" || cfg.Storage.Remote.Key == "" {
		return fmt.Errorf("%w: either a database DSN or a remote URL and key are required", ErrInvalidStorageConfigs)
	}

	if cfg.Locker.TTL <= 0 || cfg.Locker.RetryInterval <= 0 {
		return ErrInvalidLockerConfigs
	}

	if cfg.Workers.ProbeInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
