// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// UserResponse is returned by a successful registration or login.
type UserResponse struct {
	Success bool `json:"success"`
	User    User `json:"usuario"`
}

// FoodsResponse is the food list annotated for the caller.
type FoodsResponse struct {
	Foods []FoodView `json:"comidas"`
}

// ReservationResponse is returned by successful reserve and cancel calls.
// Reservation holds the created or removed reservation.
type ReservationResponse struct {
	Success     bool        `json:"success"`
	Reservation Reservation `json:"reserva"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthStatus describes the outcome of the last datastore probe.
type HealthStatus struct {
	Status    string    `json:"status"`
	CheckedAt time.Time `json:"checked_at"`
	Error     string    `json:"error,omitempty"`
}

// Health status values.
const (
	HealthStatusUp      = "up"
	HealthStatusDown    = "down"
	HealthStatusUnknown = "unknown"
)
