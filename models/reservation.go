// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ReservationTableName is the datastore table holding reservations.
const ReservationTableName = "reservas_festa"

// ReservationQuantity is the number of units a single reservation holds.
const ReservationQuantity = 1

// Reservation links a user to one unit of a food.
type Reservation struct {
	ID        int64     `json:"id,omitempty"`
	UserID    int64     `json:"usuario_id"`
	FoodID    int64     `json:"comida_id"`
	Quantity  int       `json:"quantidade"`
	CreatedAt Timestamp `json:"created_at"`
}

// ReservationRequest identifies the caller and the food of a reserve or
// cancel call.
type ReservationRequest struct {
	Identity Identity `json:"usuario"`
	FoodID   int64    `json:"comida_id" validate:"gt=0"`
}
