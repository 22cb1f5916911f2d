// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid listener settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates that neither a DB DSN nor a complete
	// remote datastore URL+key pair was given, or that the DB driver is unknown.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidLockerConfigs indicates non-positive lock timings.
	ErrInvalidLockerConfigs = errors.New("invalid locker configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
