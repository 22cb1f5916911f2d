// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-festa/models"
)

var (
	ana         = models.User{ID: 1, Name: "Ana Souza", Phone: "11999990000"}
	anaIdentity = models.Identity{Name: "Ana Souza", Phone: "11999990000"}
)

// noopUnlock is returned by mocked lockers.
func noopUnlock() {}
