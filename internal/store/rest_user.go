// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-festa/internal/adapter"
	"github.com/MKhiriev/go-festa/internal/logger"
	"github.com/MKhiriev/go-festa/models"
)

// restUserRepository is the remote datastore implementation of
// [UserRepository] over the "usuarios_festa" table.
type restUserRepository struct {
	client adapter.TableClient
	logger *logger.Logger
}

// NewRESTUserRepository constructs a [UserRepository] backed by client.
func NewRESTUserRepository(client adapter.TableClient, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating remote user repository")
	return &restUserRepository{client: client, logger: logger}
}

// FindUsersByPhone implements [UserRepository].
func (r *restUserRepository) FindUsersByPhone(ctx context.Context, phone string) ([]models.User, error) {
	return r.find(ctx, adapter.Where(adapter.Eq("telefone", phone)))
}

// FindUsersByName implements [UserRepository].
func (r *restUserRepository) FindUsersByName(ctx context.Context, name string) ([]models.User, error) {
	return r.find(ctx, adapter.Where(adapter.Eq("nome", name)))
}

// ListUsers implements [UserRepository].
func (r *restUserRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	return r.find(ctx, adapter.Query{})
}

// CreateUser implements [UserRepository]. A 409 from the datastore (the
// phone unique constraint) is reported as [ErrPhoneAlreadyExists].
func (r *restUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	var created []models.User

	err := r.client.Insert(ctx, models.UserTableName, []models.User{{Name: user.Name, Phone: user.Phone}}, &created)
	if err != nil {
		if errors.Is(err, adapter.ErrConflict) {
			return models.User{}, ErrPhoneAlreadyExists
		}
		return models.User{}, fmt.Errorf("create user: %w", err)
	}

	if len(created) == 0 {
		return models.User{}, fmt.Errorf("create user: datastore returned no rows")
	}

	return created[0], nil
}

func (r *restUserRepository) find(ctx context.Context, q adapter.Query) ([]models.User, error) {
	users := make([]models.User, 0)
	if err := r.client.Select(ctx, models.UserTableName, q, &users); err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	return users, nil
}
