// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrPhoneAlreadyExists is returned when a user cannot be created because
	// another user already registered the same phone.
	ErrPhoneAlreadyExists = errors.New("phone already exists")

	// ErrFoodNotFound is returned when the requested food id does not exist.
	ErrFoodNotFound = errors.New("food was not found")

	// ErrFoodSoldOut is returned when a reservation is attempted on a food
	// whose available quantity is zero.
	ErrFoodSoldOut = errors.New("food is sold out")

	// ErrAlreadyReserved is returned when the user already holds a
	// reservation of the food.
	ErrAlreadyReserved = errors.New("food already reserved by user")

	// ErrReservationNotFound is returned when the user holds no reservation
	// of the food.
	ErrReservationNotFound = errors.New("reservation was not found")

	// ErrConcurrentUpdate is returned when a conditional quantity update
	// keeps losing to concurrent writers until the retry budget is spent.
	ErrConcurrentUpdate = errors.New("food quantity changed concurrently")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a result
	// row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrUnsupportedDriver is returned for database drivers other than pgx
	// and sqlite3.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)
