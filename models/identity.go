// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Identity is the name+phone pair every request body carries. There are no
// sessions or tokens: the pair itself is checked against the stored user.
type Identity struct {
	Name  string `json:"nome" validate:"required"`
	Phone string `json:"telefone" validate:"required"`
}

// Normalize returns a copy of the identity with surrounding whitespace removed.
func (i Identity) Normalize() Identity {
	return Identity{
		Name:  strings.TrimSpace(i.Name),
		Phone: strings.TrimSpace(i.Phone),
	}
}

// Matches reports whether user carries the same name as the identity,
// ignoring case.
func (i Identity) Matches(user User) bool {
	return user.Name != "" && strings.EqualFold(user.Name, i.Name)
}

// ToUser converts the identity into a user ready to be inserted.
func (i Identity) ToUser() User {
	return User{Name: i.Name, Phone: i.Phone}
}

// FirstName returns the part of name before the first space, or the whole
// name if it has none.
func FirstName(name string) string {
	first, _, _ := strings.Cut(name, " ")
	return first
}
