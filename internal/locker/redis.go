// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package locker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-festa/internal/config"
	"github.com/MKhiriev/go-festa/internal/logger"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	redisKeyPrefix     = "festa:lock:"
	redisUnlockTimeout = 2 * time.Second
)

// unlockScript deletes the key only while it still holds our token, so an
// expired lock taken over by another holder is left alone.
var unlockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker is a lock shared across processes. A key is held by whoever
// manages to SET it with NX; it expires after ttl if the holder dies.
type RedisLocker struct {
	client        redis.UniversalClient
	ttl           time.Duration
	retryInterval time.Duration
	logger        *logger.Logger
}

func NewRedisLocker(client redis.UniversalClient, ttl, retryInterval time.Duration, logger *logger.Logger) *RedisLocker {
	if ttl <= 0 {
		ttl = config.DefaultLockTTL
	}
	if retryInterval <= 0 {
		retryInterval = config.DefaultLockRetryInterval
	}
	return &RedisLocker{
		client:        client,
		ttl:           ttl,
		retryInterval: retryInterval,
		logger:        logger,
	}
}

// Lock implements [Locker]. Acquisition is polled every retryInterval until
// it succeeds or ctx is done.
func (l *RedisLocker) Lock(ctx context.Context, key string) (func(), error) {
	redisKey := redisKeyPrefix + key
	token := uuid.NewString()

	ticker := time.NewTicker(l.retryInterval)
	defer ticker.Stop()

	for {
		ok, err := l.client.SetNX(ctx, redisKey, token, l.ttl).Result()
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, fmt.Errorf("%w: %q: %w", ErrLockNotAcquired, key, ctxErr)
			}
			return nil, fmt.Errorf("%w: %w", ErrLockUnavailable, err)
		}
		if ok {
			return l.unlockFunc(ctx, redisKey, token), nil
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %q: %w", ErrLockNotAcquired, key, ctx.Err())
		case <-ticker.C:
		}
	}
}

func (l *RedisLocker) unlockFunc(ctx context.Context, redisKey, token string) func() {
	var once sync.Once

	return func() {
		once.Do(func() { l.unlock(ctx, redisKey, token) })
	}
}

func (l *RedisLocker) unlock(ctx context.Context, redisKey, token string) {
	unlockCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), redisUnlockTimeout)
	defer cancel()

	err := unlockScript.Run(unlockCtx, l.client, []string{redisKey}, token).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		l.logger.Err(err).Str("key", redisKey).Msg("error releasing redis lock")
	}
}

// Close implements [Locker].
func (l *RedisLocker) Close() error {
	return l.client.Close()
}
