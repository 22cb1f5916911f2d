// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-festa/internal/adapter"
	"github.com/MKhiriev/go-festa/internal/logger"
	"github.com/MKhiriev/go-festa/models"
)

// restFoodRepository is the remote datastore implementation of
// [FoodRepository] over the "comidas_festa" table.
type restFoodRepository struct {
	client adapter.TableClient
	logger *logger.Logger
}

// NewRESTFoodRepository constructs a [FoodRepository] backed by client.
func NewRESTFoodRepository(client adapter.TableClient, logger *logger.Logger) FoodRepository {
	logger.Debug().Msg("creating remote food repository")
	return &restFoodRepository{client: client, logger: logger}
}

// ListFoods implements [FoodRepository].
func (r *restFoodRepository) ListFoods(ctx context.Context) ([]models.Food, error) {
	foods := make([]models.Food, 0)
	if err := r.client.Select(ctx, models.FoodTableName, adapter.Query{}.OrderBy("nome"), &foods); err != nil {
		return nil, fmt.Errorf("select foods: %w", err)
	}
	return foods, nil
}

// GetFood implements [FoodRepository].
func (r *restFoodRepository) GetFood(ctx context.Context, id int64) (models.Food, error) {
	var foods []models.Food
	if err := r.client.Select(ctx, models.FoodTableName, adapter.Where(adapter.Eq("id", id)).WithLimit(1), &foods); err != nil {
		return models.Food{}, fmt.Errorf("select food %d: %w", id, err)
	}

	if len(foods) == 0 {
		return models.Food{}, ErrFoodNotFound
	}

	return foods[0], nil
}
