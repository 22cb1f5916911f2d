// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-festa/internal/logger"
	"github.com/MKhiriev/go-festa/models"
	sq "github.com/Masterminds/squirrel"
)

// reservationRepository is the SQL implementation of [ReservationRepository].
// Reserve and Cancel each run in a single transaction: the quantity change
// and the reservation row commit or roll back together.
type reservationRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewReservationRepository constructs a [ReservationRepository] backed by db.
func NewReservationRepository(db *DB, logger *logger.Logger) ReservationRepository {
	logger.Debug().Msg("creating reservation repository")
	return &reservationRepository{db: db, logger: logger}
}

// ListReservations implements [ReservationRepository].
func (r *reservationRepository) ListReservations(ctx context.Context) ([]models.Reservation, error) {
	return selectReservations(ctx, r.db.DB, r.db, nil)
}

// FindReservation implements [ReservationRepository].
func (r *reservationRepository) FindReservation(ctx context.Context, userID, foodID int64) (models.Reservation, error) {
	return findReservation(ctx, r.db.DB, r.db, userID, foodID)
}

// Reserve implements [ReservationRepository].
//
// Inside the transaction:
//  1. an existing reservation → [ErrAlreadyReserved];
//  2. a guarded UPDATE takes one unit; when it touches no row the food is
//     either missing ([ErrFoodNotFound]) or sold out ([ErrFoodSoldOut]);
//  3. the reservation row is inserted; the UNIQUE(usuario_id, comida_id)
//     constraint turns a concurrent duplicate into [ErrAlreadyReserved].
func (r *reservationRepository) Reserve(ctx context.Context, userID, foodID int64) (models.Reservation, error) {
	var reservation models.Reservation

	err := r.db.withTx(ctx, func(tx *sql.Tx) error {
		_, err := findReservation(ctx, tx, r.db, userID, foodID)
		switch {
		case err == nil:
			return ErrAlreadyReserved
		case !errors.Is(err, ErrReservationNotFound):
			return err
		}

		query, args, err := buildTakeFoodQuery(r.db.builder, foodID, models.ReservationQuantity)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		affected, err := execAffected(ctx, tx, query, args)
		if err != nil {
			return err
		}

		if affected == 0 {
			if _, err = getFood(ctx, tx, r.db, foodID); err != nil {
				return err
			}
			return ErrFoodSoldOut
		}

		query, args, err = buildInsertReservationQuery(r.db.builder, userID, foodID, models.ReservationQuantity, models.NewTimestamp(time.Now()).Time)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		reservation, err = scanReservation(tx.QueryRowContext(ctx, query, args...))
		if err != nil {
			if r.db.errorClassificator.IsUniqueViolation(err) {
				return ErrAlreadyReserved
			}
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		return nil
	})
	if err != nil {
		logReservationError(ctx, err, "*reservationRepository.Reserve")
		return models.Reservation{}, err
	}

	return reservation, nil
}

// Cancel implements [ReservationRepository]. The reservation row is deleted
// and its units are added back to the food in the same transaction.
func (r *reservationRepository) Cancel(ctx context.Context, userID, foodID int64) (models.Reservation, error) {
	var reservation models.Reservation

	err := r.db.withTx(ctx, func(tx *sql.Tx) error {
		query, args, err := buildDeleteReservationQuery(r.db.builder, userID, foodID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		reservation, err = scanReservation(tx.QueryRowContext(ctx, query, args...))
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return ErrReservationNotFound
		case err != nil:
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		quantity := reservation.Quantity
		if quantity <= 0 {
			quantity = models.ReservationQuantity
		}

		query, args, err = buildGiveBackFoodQuery(r.db.builder, foodID, quantity)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		_, err = execAffected(ctx, tx, query, args)
		return err
	})
	if err != nil {
		logReservationError(ctx, err, "*reservationRepository.Cancel")
		return models.Reservation{}, err
	}

	return reservation, nil
}

func findReservation(ctx context.Context, q querier, db *DB, userID, foodID int64) (models.Reservation, error) {
	reservations, err := selectReservations(ctx, q, db, sq.Eq{"usuario_id": userID, "comida_id": foodID})
	if err != nil {
		return models.Reservation{}, err
	}

	if len(reservations) == 0 {
		return models.Reservation{}, ErrReservationNotFound
	}

	return reservations[0], nil
}

func selectReservations(ctx context.Context, q querier, db *DB, where sq.Eq) ([]models.Reservation, error) {
	query, args, err := buildSelectReservationsQuery(db.builder, where)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	reservations := make([]models.Reservation, 0)
	for rows.Next() {
		reservation, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		reservations = append(reservations, reservation)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return reservations, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservation(row rowScanner) (models.Reservation, error) {
	var reservation models.Reservation

	if err := row.Scan(&reservation.ID, &reservation.UserID, &reservation.FoodID, &reservation.Quantity, &reservation.CreatedAt); err != nil {
		return models.Reservation{}, err
	}

	return reservation, nil
}

func execAffected(ctx context.Context, q querier, query string, args []any) (int64, error) {
	result, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}

// logReservationError logs unexpected failures; domain outcomes are left to
// the caller.
func logReservationError(ctx context.Context, err error, fn string) {
	switch {
	case errors.Is(err, ErrAlreadyReserved),
		errors.Is(err, ErrFoodSoldOut),
		errors.Is(err, ErrFoodNotFound),
		errors.Is(err, ErrReservationNotFound):
		return
	}
	logger.FromContext(ctx).Err(err).Str("func", fn).Msg("reservation transaction failed")
}
