// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-festa/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository reads and creates party guests.
type UserRepository interface {
	// FindUsersByPhone returns every user registered with phone. The result
	// holds at most one user when phone uniqueness is enforced.
	FindUsersByPhone(ctx context.Context, phone string) ([]models.User, error)

	// FindUsersByName returns every user whose name equals name exactly.
	FindUsersByName(ctx context.Context, name string) ([]models.User, error)

	// CreateUser persists user and returns it with its assigned id.
	// Returns [ErrPhoneAlreadyExists] when the phone is already taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// ListUsers returns all users.
	ListUsers(ctx context.Context) ([]models.User, error)
}

// FoodRepository reads the party menu.
type FoodRepository interface {
	// ListFoods returns all foods ordered by name ascending.
	ListFoods(ctx context.Context) ([]models.Food, error)

	// GetFood returns the food with id or [ErrFoodNotFound].
	GetFood(ctx context.Context, id int64) (models.Food, error)
}

// ReservationRepository manages reservations together with the food
// quantities they consume.
type ReservationRepository interface {
	// ListReservations returns all reservations.
	ListReservations(ctx context.Context) ([]models.Reservation, error)

	// FindReservation returns the reservation userID holds of foodID or
	// [ErrReservationNotFound].
	FindReservation(ctx context.Context, userID, foodID int64) (models.Reservation, error)

	// Reserve takes one unit of foodID for userID and records the
	// reservation. Returns [ErrFoodNotFound], [ErrFoodSoldOut],
	// [ErrAlreadyReserved] or [ErrConcurrentUpdate].
	Reserve(ctx context.Context, userID, foodID int64) (models.Reservation, error)

	// Cancel removes the reservation userID holds of foodID and gives its
	// unit back. Returns the removed reservation, [ErrReservationNotFound] or
	// [ErrConcurrentUpdate].
	Cancel(ctx context.Context, userID, foodID int64) (models.Reservation, error)
}
