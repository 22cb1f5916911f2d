// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport used to talk to the hosted tabular
// REST datastore (a PostgREST-compatible API under "<project>/rest/v1").
//
// The primary abstraction is [TableClient], which decouples the REST
// repositories from HTTP details: authentication headers, filter encoding,
// Prefer headers and response decoding.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/table_client_mock.go -package=mock

// TableClient performs row operations against named tables of the remote
// datastore. Every method decodes the JSON array returned by the datastore
// into out when out is non-nil; rows written or removed are only returned when
// out is non-nil.
type TableClient interface {
	// Select reads the rows of table matching q.
	Select(ctx context.Context, table string, q Query, out any) error

	// Insert creates rows (a struct or a slice of structs) in table.
	// Returns [ErrConflict] (wrapped) when a unique constraint is violated.
	Insert(ctx context.Context, table string, rows any, out any) error

	// Update applies patch to every row of table matching q. A row set that
	// matched nothing decodes to an empty slice, which is how conditional
	// updates report that their precondition no longer holds.
	Update(ctx context.Context, table string, q Query, patch any, out any) error

	// Delete removes the rows of table matching q.
	Delete(ctx context.Context, table string, q Query, out any) error

	// Ping checks that the datastore is reachable and the key is accepted by
	// reading at most one row of table.
	Ping(ctx context.Context, table string) error
}
