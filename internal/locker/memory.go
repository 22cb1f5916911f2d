// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package locker

import (
	"context"
	"fmt"
	"sync"
)

// MemoryLocker is an in-process keyed mutex. Entries are reference counted
// and removed once no goroutine holds or waits for the key.
type MemoryLocker struct {
	mu   sync.Mutex
	keys map[string]*keyLock
}

type keyLock struct {
	// sem has capacity one: a successful send acquires the key.
	sem  chan struct{}
	refs int
}

func NewMemoryLocker() *MemoryLocker {
	return &MemoryLocker{keys: make(map[string]*keyLock)}
}

// Lock implements [Locker].
func (l *MemoryLocker) Lock(ctx context.Context, key string) (func(), error) {
	k := l.acquire(key)

	select {
	case k.sem <- struct{}{}:
	case <-ctx.Done():
		l.release(key, k)
		return nil, fmt.Errorf("%w: %q: %w", ErrLockNotAcquired, key, ctx.Err())
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-k.sem
			l.release(key, k)
		})
	}, nil
}

// Close implements [Locker].
func (l *MemoryLocker) Close() error {
	return nil
}

func (l *MemoryLocker) acquire(key string) *keyLock {
	l.mu.Lock()
	defer l.mu.Unlock()

	k, ok := l.keys[key]
	if !ok {
		k = &keyLock{sem: make(chan struct{}, 1)}
		l.keys[key] = k
	}
	k.refs++

	return k
}

func (l *MemoryLocker) release(key string, k *keyLock) {
	l.mu.Lock()
	defer l.mu.Unlock()

	k.refs--
	if k.refs == 0 {
		delete(l.keys, key)
	}
}

func (l *MemoryLocker) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.keys)
}
