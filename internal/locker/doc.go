// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package locker provides per-key mutual exclusion.
//
// Two implementations are available:
//   - MemoryLocker: an in-process keyed mutex, enough for a single replica;
//   - RedisLocker: a SET NX PX lock shared by every replica pointed at the
//     same Redis.
//
// Callers lock a key, do their check-then-act work and call the returned
// unlock function exactly once:
//
//	unlock, err := l.Lock(ctx, locker.FoodKey(foodID))
//	if err != nil {
//	    return err
//	}
//	defer unlock()
package locker
