// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package locker

import "strconv"

// FoodKey is the lock key guarding the quantity and reservations of a food.
func FoodKey(foodID int64) string {
	return "comida:" + strconv.FormatInt(foodID, 10)
}

// UserKey is the lock key guarding registration of a phone number.
func UserKey(phone string) string {
	return "usuario:" + phone
}
