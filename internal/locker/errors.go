// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package locker

import "errors"

var (
	ErrLockNotAcquired = errors.New("lock not acquired")
	ErrLockUnavailable = errors.New("lock backend unavailable")
)
