// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FoodTableName is the datastore table holding foods.
const FoodTableName = "comidas_festa"

// Food is an item guests can reserve. Quantity is the number of units still
// available and never goes below zero.
type Food struct {
	ID       int64  `json:"id"`
	Name     string `json:"nome"`
	Quantity int    `json:"quantidade"`
}

// FoodView is a Food annotated for one caller: who reserved it, and whether
// the caller is one of them.
type FoodView struct {
	Food

	// ReservedBy holds the first names of all guests holding a reservation.
	ReservedBy []string `json:"reservados"`

	// Reserved is true when the caller holds a reservation of this food.
	Reserved bool `json:"reservado"`
}
