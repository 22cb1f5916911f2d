// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package locker

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-festa/internal/config"
	"github.com/MKhiriev/go-festa/internal/logger"
	"github.com/redis/go-redis/v9"
)

// NewLocker returns a [RedisLocker] when cfg names a Redis address and a
// [MemoryLocker] otherwise. The Redis connection is checked before returning.
func NewLocker(ctx context.Context, cfg config.Locker, logger *logger.Logger) (Locker, error) {
	if cfg.RedisAddr == "" {
		logger.Info().Msg("using in-process locker")
		return NewMemoryLocker(), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%w: ping %s: %w", ErrLockUnavailable, cfg.RedisAddr, err)
	}

	logger.Info().Str("addr", cfg.RedisAddr).Msg("using redis locker")
	return NewRedisLocker(client, cfg.TTL, cfg.RetryInterval, logger), nil
}
