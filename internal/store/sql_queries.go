// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"time"

	"github.com/MKhiriev/go-festa/models"
	sq "github.com/Masterminds/squirrel"
)

var (
	userColumns        = []string{"id", "nome", "telefone"}
	foodColumns        = []string{"id", "nome", "quantidade"}
	reservationColumns = []string{"id", "usuario_id", "comida_id", "quantidade", "created_at"}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// buildSelectUsersQuery selects users matching where (all users when nil),
// ordered by id.
func buildSelectUsersQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	q := b.Select(userColumns...).From(models.UserTableName)
	if where != nil {
		q = q.Where(where)
	}
	return q.OrderBy("id").ToSql()
}

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(models.UserTableName).
		Columns("nome", "telefone").
		Values(user.Name, user.Phone).
		Suffix(returning(userColumns)).
		ToSql()
}

func buildSelectFoodsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(foodColumns...).
		From(models.FoodTableName).
		OrderBy("nome ASC").
		ToSql()
}

func buildSelectFoodQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(foodColumns...).
		From(models.FoodTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// buildTakeFoodQuery decrements the quantity only while enough units are
// left, so concurrent takers can never drive it below zero.
func buildTakeFoodQuery(b sq.StatementBuilderType, id int64, quantity int) (string, []any, error) {
	return b.Update(models.FoodTableName).
		Set("quantidade", sq.Expr("quantidade - ?", quantity)).
		Where(sq.Eq{"id": id}).
		Where(sq.GtOrEq{"quantidade": quantity}).
		ToSql()
}

func buildGiveBackFoodQuery(b sq.StatementBuilderType, id int64, quantity int) (string, []any, error) {
	return b.Update(models.FoodTableName).
		Set("quantidade", sq.Expr("quantidade + ?", quantity)).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// buildSelectReservationsQuery selects reservations matching where (all
// reservations when nil), ordered by id.
func buildSelectReservationsQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	q := b.Select(reservationColumns...).From(models.ReservationTableName)
	if where != nil {
		q = q.Where(where)
	}
	return q.OrderBy("id").ToSql()
}

func buildInsertReservationQuery(b sq.StatementBuilderType, userID, foodID int64, quantity int, createdAt time.Time) (string, []any, error) {
	return b.Insert(models.ReservationTableName).
		Columns("usuario_id", "comida_id", "quantidade", "created_at").
		Values(userID, foodID, quantity, createdAt).
		Suffix(returning(reservationColumns)).
		ToSql()
}

func buildDeleteReservationQuery(b sq.StatementBuilderType, userID, foodID int64) (string, []any, error) {
	return b.Delete(models.ReservationTableName).
		Where(sq.Eq{"usuario_id": userID, "comida_id": foodID}).
		Suffix(returning(reservationColumns)).
		ToSql()
}
