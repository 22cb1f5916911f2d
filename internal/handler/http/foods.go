// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-festa/internal/app"
	"github.com/MKhiriev/go-festa/internal/logger"
	"github.com/MKhiriev/go-festa/internal/utils"
	"github.com/MKhiriev/go-festa/models"
)

func (h *Handler) listFoods(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	identity, err := decodeIdentity(r)
	if err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgMissingIdentity, http.StatusBadRequest)
		return
	}

	foods, err := h.services.FoodService.ListForUser(r.Context(), identity)
	if err != nil {
		writeServiceError(w, r, err, identity, app.MsgListFoodsFailed)
		return
	}

	if foods == nil {
		foods = []models.FoodView{}
	}
	utils.WriteJSON(w, models.FoodsResponse{Foods: foods}, http.StatusOK)
}
