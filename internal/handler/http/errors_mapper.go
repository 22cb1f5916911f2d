// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-festa/internal/app"
	"github.com/MKhiriev/go-festa/internal/logger"
	"github.com/MKhiriev/go-festa/internal/service"
	"github.com/MKhiriev/go-festa/internal/store"
	"github.com/MKhiriev/go-festa/internal/utils"
	"github.com/MKhiriev/go-festa/models"
)

type errorResponse struct {
	target  error
	status  int
	message string
}

// errorResponses is checked in order; the first target found in the error
// chain wins.
var errorResponses = []errorResponse{
	{service.ErrInvalidFoodID, http.StatusBadRequest, app.MsgInvalidFoodID},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgMissingIdentity},
	{service.ErrPhoneTakenByOtherName, http.StatusBadRequest, app.MsgPhoneTakenByOtherName},
	{service.ErrNameTakenByOtherPhone, http.StatusBadRequest, app.MsgNameTakenByOtherPhone},
	{service.ErrUserNotAuthenticated, http.StatusBadRequest, app.MsgUserNotAuthenticated},
	{service.ErrResourceBusy, http.StatusConflict, app.MsgConcurrentUpdate},

	{store.ErrFoodNotFound, http.StatusBadRequest, app.MsgFoodNotFound},
	{store.ErrFoodSoldOut, http.StatusBadRequest, app.MsgFoodSoldOut},
	{store.ErrAlreadyReserved, http.StatusBadRequest, app.MsgAlreadyReserved},
	{store.ErrReservationNotFound, http.StatusBadRequest, app.MsgReservationNotFound},
	{store.ErrConcurrentUpdate, http.StatusConflict, app.MsgConcurrentUpdate},

	{context.DeadlineExceeded, http.StatusGatewayTimeout, app.MsgRequestTimeout},
}

func statusFromError(err error) int {
	for _, resp := range errorResponses {
		if errors.Is(err, resp.target) {
			return resp.status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the client message for err, or fallback when err
// is unexpected.
func messageFromError(err error, identity models.Identity, fallback string) string {
	for _, resp := range errorResponses {
		if !errors.Is(err, resp.target) {
			continue
		}
		if resp.target == service.ErrPhoneTakenByOtherName {
			return fmt.Sprintf(resp.message, identity.Phone)
		}
		return resp.message
	}
	return fallback
}

// writeServiceError logs err and writes the mapped JSON error response.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, identity models.Identity, fallback string) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, messageFromError(err, identity.Normalize(), fallback), status)
}
