// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-festa/models"
	"github.com/go-chi/chi/v5"
)

var (
	errEmptyBody     = errors.New("empty request body")
	errInvalidFoodID = errors.New("food id must be a positive integer")
)

// decodeIdentity reads the caller's {"nome", "telefone"} from the body.
// Unknown fields are ignored.
func decodeIdentity(r *http.Request) (models.Identity, error) {
	var identity models.Identity
	if r.Body == nil {
		return identity, errEmptyBody
	}

	if err := json.NewDecoder(r.Body).Decode(&identity); err != nil {
		return identity, err
	}
	return identity, nil
}

func foodIDFromPath(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidFoodID
	}
	return id, nil
}
