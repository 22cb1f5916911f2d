// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-festa/internal/locker"
	"github.com/MKhiriev/go-festa/internal/logger"
	"github.com/MKhiriev/go-festa/internal/store"
	"github.com/MKhiriev/go-festa/internal/validators"
	"github.com/MKhiriev/go-festa/models"
)

// reservationService authenticates the caller and runs the store operation
// while holding the food's lock. The store keeps quantities consistent on
// its own; the lock keeps replicas from fighting over the same food.
type reservationService struct {
	auth         AuthService
	reservations store.ReservationRepository
	locker       locker.Locker
	validator    validators.Validator

	logger *logger.Logger
}

func NewReservationService(auth AuthService, reservations store.ReservationRepository, l locker.Locker, v validators.Validator, logger *logger.Logger) ReservationService {
	return &reservationService{
		auth:         auth,
		reservations: reservations,
		locker:       l,
		validator:    v,
		logger:       logger,
	}
}

// Reserve takes one unit of the food for the caller.
//
// Returns the created reservation or:
//   - ErrInvalidDataProvided / ErrInvalidFoodID for bad input;
//   - ErrUserNotAuthenticated;
//   - store.ErrFoodNotFound, store.ErrFoodSoldOut, store.ErrAlreadyReserved;
//   - store.ErrConcurrentUpdate when the food kept changing underneath.
func (s *reservationService) Reserve(ctx context.Context, identity models.Identity, foodID int64) (models.Reservation, error) {
	return s.withFood(ctx, identity, foodID, "reserve", s.reservations.Reserve)
}

// Cancel gives the caller's unit of the food back. Returns the removed
// reservation or the errors of Reserve, with store.ErrReservationNotFound
// instead of the sold-out and already-reserved outcomes.
func (s *reservationService) Cancel(ctx context.Context, identity models.Identity, foodID int64) (models.Reservation, error) {
	return s.withFood(ctx, identity, foodID, "cancel", s.reservations.Cancel)
}

func (s *reservationService) withFood(
	ctx context.Context,
	identity models.Identity,
	foodID int64,
	action string,
	op func(ctx context.Context, userID, foodID int64) (models.Reservation, error),
) (models.Reservation, error) {
	log := logger.FromContext(ctx)

	req := models.ReservationRequest{Identity: identity.Normalize(), FoodID: foodID}
	if err := validate(ctx, s.validator, req); err != nil {
		return models.Reservation{}, err
	}

	user, err := s.auth.Authenticate(ctx, req.Identity)
	if err != nil {
		return models.Reservation{}, err
	}

	unlock, err := s.locker.Lock(ctx, locker.FoodKey(foodID))
	if err != nil {
		log.Err(err).Int64("food_id", foodID).Msg("error locking food")
		return models.Reservation{}, fmt.Errorf("%w: %w", ErrResourceBusy, err)
	}
	defer unlock()

	reservation, err := op(ctx, user.ID, foodID)
	if err != nil {
		return models.Reservation{}, fmt.Errorf("%s food %d: %w", action, foodID, err)
	}

	log.Info().
		Str("action", action).
		Int64("user_id", user.ID).
		Int64("food_id", foodID).
		Msg("reservation changed")

	return reservation, nil
}
