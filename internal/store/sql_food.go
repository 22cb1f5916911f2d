// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-festa/internal/logger"
	"github.com/MKhiriev/go-festa/models"
)

// foodRepository is the SQL implementation of [FoodRepository].
type foodRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewFoodRepository constructs a [FoodRepository] backed by db.
func NewFoodRepository(db *DB, logger *logger.Logger) FoodRepository {
	logger.Debug().Msg("creating food repository")
	return &foodRepository{db: db, logger: logger}
}

// ListFoods implements [FoodRepository].
func (r *foodRepository) ListFoods(ctx context.Context) ([]models.Food, error) {
	query, args, err := buildSelectFoodsQuery(r.db.builder)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*foodRepository.ListFoods").Msg("error selecting foods")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	foods := make([]models.Food, 0)
	for rows.Next() {
		var f models.Food
		if err = rows.Scan(&f.ID, &f.Name, &f.Quantity); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		foods = append(foods, f)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return foods, nil
}

// GetFood implements [FoodRepository].
func (r *foodRepository) GetFood(ctx context.Context, id int64) (models.Food, error) {
	return getFood(ctx, r.db.DB, r.db, id)
}

func getFood(ctx context.Context, q querier, db *DB, id int64) (models.Food, error) {
	query, args, err := buildSelectFoodQuery(db.builder, id)
	if err != nil {
		return models.Food{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var f models.Food
	err = q.QueryRowContext(ctx, query, args...).Scan(&f.ID, &f.Name, &f.Quantity)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Food{}, ErrFoodNotFound
	case err != nil:
		return models.Food{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return f, nil
}
