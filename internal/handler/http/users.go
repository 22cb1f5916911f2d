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

// register handles POST /usuarios. A known phone with the same name logs
// the guest in.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	identity, err := decodeIdentity(r)
	if err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgMissingIdentity, http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.Register(r.Context(), identity)
	if err != nil {
		writeServiceError(w, r, err, identity, app.MsgRegistrationFailed)
		return
	}

	log.Debug().Int64("user_id", user.ID).Msg("user registered or logged in")
	utils.WriteJSON(w, models.UserResponse{Success: true, User: user}, http.StatusOK)
}
