// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-festa/internal/app"
	"github.com/MKhiriev/go-festa/internal/logger"
	"github.com/MKhiriev/go-festa/internal/utils"
	"github.com/MKhiriev/go-festa/models"
	"github.com/go-chi/chi/v5"
)

type reservationFunc func(ctx context.Context, identity models.Identity, foodID int64) (models.Reservation, error)

func (h *Handler) reserve(w http.ResponseWriter, r *http.Request) {
	h.handleReservation(w, r, h.services.ReservationService.Reserve, app.MsgReserveFailed)
}

func (h *Handler) cancel(w http.ResponseWriter, r *http.Request) {
	h.handleReservation(w, r, h.services.ReservationService.Cancel, app.MsgCancelFailed)
}

func (h *Handler) handleReservation(w http.ResponseWriter, r *http.Request, op reservationFunc, failureMsg string) {
	log := logger.FromRequest(r)

	foodID, err := foodIDFromPath(r)
	if err != nil {
		log.Debug().Err(err).Str("id", chi.URLParam(r, "id")).Msg("invalid food id")
		utils.WriteError(w, app.MsgInvalidFoodID, http.StatusBadRequest)
		return
	}

	identity, err := decodeIdentity(r)
	if err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgMissingIdentity, http.StatusBadRequest)
		return
	}

	reservation, err := op(r.Context(), identity, foodID)
	if err != nil {
		writeServiceError(w, r, err, identity, failureMsg)
		return
	}

	log.Debug().
		Int64("food_id", foodID).
		Int64("user_id", reservation.UserID).
		Msg("reservation updated")
	utils.WriteJSON(w, models.ReservationResponse{Success: true, Reservation: reservation}, http.StatusOK)
}
