// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package locker

//go:generate mockgen -source=interfaces.go -destination=../mock/locker_mock.go -package=mock

import "context"

// Locker serializes work on a key.
type Locker interface {
	// Lock blocks until key is acquired or ctx is done. The returned unlock
	// function releases the key; calling it more than once is a no-op.
	Lock(ctx context.Context, key string) (unlock func(), err error)

	// Close releases the resources held by the locker.
	Close() error
}
