// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-festa/internal/logger"
	"github.com/MKhiriev/go-festa/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUserRepo(t *testing.T) (UserRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return NewUserRepository(db, logger.Nop()), mock
}

func TestUserRepository_FindUsersByPhone(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM usuarios_festa WHERE telefone = $1")).
		WithArgs("11999990000").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(1, "Ana Souza", "11999990000"))

	users, err := repo.FindUsersByPhone(context.Background(), "11999990000")

	require.NoError(t, err)
	assert.Equal(t, []models.User{{ID: 1, Name: "Ana Souza", Phone: "11999990000"}}, users)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindUsersByName_Empty(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM usuarios_festa WHERE nome = $1")).
		WithArgs("Bruno").
		WillReturnRows(sqlmock.NewRows(userColumns))

	users, err := repo.FindUsersByName(context.Background(), "Bruno")

	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_ListUsers_QueryError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, nome, telefone FROM usuarios_festa ORDER BY id")).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.ListUsers(context.Background())

	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_ListUsers_ScanError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM usuarios_festa")).
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow("not-a-number", "Ana", "1"))

	_, err := repo.ListUsers(context.Background())

	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestUserRepository_CreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO usuarios_festa (nome,telefone) VALUES ($1,$2)")).
		WithArgs("Ana Souza", "11999990000").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(5, "Ana Souza", "11999990000"))

	created, err := repo.CreateUser(context.Background(), models.User{Name: "Ana Souza", Phone: "11999990000"})

	require.NoError(t, err)
	assert.Equal(t, int64(5), created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CreateUser_UniqueViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO usuarios_festa")).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Name: "Ana", Phone: "1"})

	assert.ErrorIs(t, err, ErrPhoneAlreadyExists)
}

func TestUserRepository_CreateUser_OtherError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO usuarios_festa")).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.NotNullViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Name: "Ana", Phone: "1"})

	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NotErrorIs(t, err, ErrPhoneAlreadyExists)
}
