// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UserTableName is the datastore table holding users.
const UserTableName = "usuarios_festa"

// User is a party guest. The phone number is the identity key; the name is
// checked case-insensitively against it on every request.
type User struct {
	// ID is assigned by the datastore. It is omitted on insert so the
	// datastore can generate it.
	ID int64 `json:"id,omitempty"`

	// Name is the display name as typed at registration.
	Name string `json:"nome"`

	// Phone is the unique contact number used as the user's identity.
	Phone string `json:"telefone"`
}

// FirstName returns the part of Name before the first space. It is what
// other guests see next to the food they reserved.
func (u User) FirstName() string {
	return FirstName(u.Name)
}
