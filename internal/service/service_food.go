// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-festa/internal/logger"
	"github.com/MKhiriev/go-festa/internal/store"
	"github.com/MKhiriev/go-festa/models"
	"golang.org/x/sync/errgroup"
)

type foodService struct {
	auth         AuthService
	foods        store.FoodRepository
	reservations store.ReservationRepository
	users        store.UserRepository

	logger *logger.Logger
}

func NewFoodService(auth AuthService, foods store.FoodRepository, reservations store.ReservationRepository, users store.UserRepository, logger *logger.Logger) FoodService {
	return &foodService{
		auth:         auth,
		foods:        foods,
		reservations: reservations,
		users:        users,
		logger:       logger,
	}
}

// ListForUser authenticates the caller and returns every food ordered by
// name, annotated with the first names of the guests who reserved it and
// whether the caller is one of them.
func (s *foodService) ListForUser(ctx context.Context, identity models.Identity) ([]models.FoodView, error) {
	user, err := s.auth.Authenticate(ctx, identity)
	if err != nil {
		return nil, err
	}

	var (
		foods        []models.Food
		reservations []models.Reservation
		users        []models.User
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		foods, err = s.foods.ListFoods(gctx)
		return err
	})
	g.Go(func() (err error) {
		reservations, err = s.reservations.ListReservations(gctx)
		return err
	})
	g.Go(func() (err error) {
		users, err = s.users.ListUsers(gctx)
		return err
	})

	if err = g.Wait(); err != nil {
		logger.FromContext(ctx).Err(err).Msg("error loading foods and reservations")
		return nil, fmt.Errorf("error loading foods and reservations: %w", err)
	}

	return annotateFoods(ctx, user, foods, reservations, users), nil
}

func annotateFoods(ctx context.Context, caller models.User, foods []models.Food, reservations []models.Reservation, users []models.User) []models.FoodView {
	names := make(map[int64]string, len(users))
	for _, u := range users {
		if u.ID != 0 && u.Name != "" {
			names[u.ID] = u.Name
		}
	}

	byFood := make(map[int64][]models.Reservation)
	for _, r := range reservations {
		byFood[r.FoodID] = append(byFood[r.FoodID], r)
	}

	views := make([]models.FoodView, 0, len(foods))
	for _, food := range foods {
		if food.ID == 0 {
			logger.FromContext(ctx).Warn().Any("comida", food).Msg("skipping food without id")
			continue
		}

		view := models.FoodView{Food: food, ReservedBy: make([]string, 0)}
		for _, r := range byFood[food.ID] {
			// reservations of deleted users still show, with an empty name
			view.ReservedBy = append(view.ReservedBy, models.FirstName(names[r.UserID]))
			if r.UserID == caller.ID {
				view.Reserved = true
			}
		}

		views = append(views, view)
	}

	return views
}
