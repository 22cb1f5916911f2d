// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-festa/internal/adapter"
	"github.com/MKhiriev/go-festa/internal/logger"
	"github.com/MKhiriev/go-festa/models"
	"github.com/sethvargo/go-retry"
)

// restReservationRepository is the remote datastore implementation of
// [ReservationRepository]. The datastore offers no transactions, so food
// quantities are changed with a PATCH guarded by the quantity that was just
// read; a guard that matches nothing means another writer got there first and
// the change is retried with exponential backoff.
type restReservationRepository struct {
	client adapter.TableClient
	foods  FoodRepository
	logger *logger.Logger

	updateAttempts uint64
	updateBackoff  time.Duration
}

// reservationRow is the insert payload; id and created_at are left to the
// datastore defaults.
type reservationRow struct {
	UserID   int64 `json:"usuario_id"`
	FoodID   int64 `json:"comida_id"`
	Quantity int   `json:"quantidade"`
}

const defaultUpdateBackoff = 20 * time.Millisecond

type quantityPatch struct {
	Quantity int `json:"quantidade"`
}

// NewRESTReservationRepository constructs a [ReservationRepository] backed by
// client. Conditional quantity updates are retried up to attempts times,
// starting with a backoff delay that doubles on every retry.
func NewRESTReservationRepository(client adapter.TableClient, foods FoodRepository, attempts uint64, backoff time.Duration, logger *logger.Logger) ReservationRepository {
	logger.Debug().Msg("creating remote reservation repository")
	if backoff <= 0 {
		backoff = defaultUpdateBackoff
	}
	return &restReservationRepository{
		client:         client,
		foods:          foods,
		logger:         logger,
		updateAttempts: attempts,
		updateBackoff:  backoff,
	}
}

// ListReservations implements [ReservationRepository].
func (r *restReservationRepository) ListReservations(ctx context.Context) ([]models.Reservation, error) {
	reservations := make([]models.Reservation, 0)
	if err := r.client.Select(ctx, models.ReservationTableName, adapter.Query{}, &reservations); err != nil {
		return nil, fmt.Errorf("select reservations: %w", err)
	}
	return reservations, nil
}

// FindReservation implements [ReservationRepository].
func (r *restReservationRepository) FindReservation(ctx context.Context, userID, foodID int64) (models.Reservation, error) {
	var reservations []models.Reservation

	q := adapter.Where(adapter.Eq("usuario_id", userID), adapter.Eq("comida_id", foodID)).WithLimit(1)
	if err := r.client.Select(ctx, models.ReservationTableName, q, &reservations); err != nil {
		return models.Reservation{}, fmt.Errorf("select reservation: %w", err)
	}

	if len(reservations) == 0 {
		return models.Reservation{}, ErrReservationNotFound
	}

	return reservations[0], nil
}

// Reserve implements [ReservationRepository]. The unit is taken before the
// reservation row is written; if the write fails the unit is given back.
func (r *restReservationRepository) Reserve(ctx context.Context, userID, foodID int64) (models.Reservation, error) {
	_, err := r.FindReservation(ctx, userID, foodID)
	switch {
	case err == nil:
		return models.Reservation{}, ErrAlreadyReserved
	case !errors.Is(err, ErrReservationNotFound):
		return models.Reservation{}, err
	}

	if err = r.changeQuantity(ctx, foodID, -models.ReservationQuantity); err != nil {
		return models.Reservation{}, err
	}

	var created []models.Reservation
	row := []reservationRow{{UserID: userID, FoodID: foodID, Quantity: models.ReservationQuantity}}
	err = r.client.Insert(ctx, models.ReservationTableName, row, &created)
	if err == nil && len(created) == 0 {
		err = errors.New("datastore returned no rows")
	}
	if err != nil {
		r.compensate(ctx, foodID, models.ReservationQuantity)

		if errors.Is(err, adapter.ErrConflict) {
			return models.Reservation{}, ErrAlreadyReserved
		}
		return models.Reservation{}, fmt.Errorf("insert reservation: %w", err)
	}

	return created[0], nil
}

// Cancel implements [ReservationRepository].
func (r *restReservationRepository) Cancel(ctx context.Context, userID, foodID int64) (models.Reservation, error) {
	reservation, err := r.FindReservation(ctx, userID, foodID)
	if err != nil {
		return models.Reservation{}, err
	}

	var removed []models.Reservation
	if err = r.client.Delete(ctx, models.ReservationTableName, adapter.Where(adapter.Eq("id", reservation.ID)), &removed); err != nil {
		return models.Reservation{}, fmt.Errorf("delete reservation: %w", err)
	}

	// a concurrent cancel removed it first
	if len(removed) == 0 {
		return models.Reservation{}, ErrReservationNotFound
	}

	quantity := removed[0].Quantity
	if quantity <= 0 {
		quantity = models.ReservationQuantity
	}

	// the row is gone; give the unit back even if the caller went away
	if err = r.changeQuantity(context.WithoutCancel(ctx), foodID, quantity); err != nil {
		return models.Reservation{}, fmt.Errorf("restore quantity: %w", err)
	}

	return removed[0], nil
}

// changeQuantity adds delta to the food quantity with a compare-and-set on the
// current value. Decrements below zero fail with [ErrFoodSoldOut].
func (r *restReservationRepository) changeQuantity(ctx context.Context, foodID int64, delta int) error {
	backoff := retry.WithMaxRetries(r.updateAttempts, retry.NewExponential(r.updateBackoff))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		food, err := r.foods.GetFood(ctx, foodID)
		if err != nil {
			return err
		}

		next := food.Quantity + delta
		if next < 0 {
			return ErrFoodSoldOut
		}

		var updated []models.Food
		guard := adapter.Where(adapter.Eq("id", foodID), adapter.Eq("quantidade", food.Quantity))
		if err = r.client.Update(ctx, models.FoodTableName, guard, quantityPatch{Quantity: next}, &updated); err != nil {
			return fmt.Errorf("update food quantity: %w", err)
		}

		if len(updated) == 0 {
			logger.FromContext(ctx).Debug().
				Int64("food_id", foodID).
				Int("observed", food.Quantity).
				Msg("food quantity changed concurrently, retrying")
			return retry.RetryableError(ErrConcurrentUpdate)
		}

		return nil
	})
}

func (r *restReservationRepository) compensate(ctx context.Context, foodID int64, quantity int) {
	if err := r.changeQuantity(context.WithoutCancel(ctx), foodID, quantity); err != nil {
		r.logger.Err(err).
			Int64("food_id", foodID).
			Int("quantity", quantity).
			Msg("failed to give back food quantity after failed reservation")
	}
}
