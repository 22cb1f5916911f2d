// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-festa/internal/utils"
	"github.com/MKhiriev/go-festa/models"
)

// getHealth reports the latest datastore probe. Only a failed probe turns
// the endpoint to 503; before the first probe the status is "unknown".
func (h *Handler) getHealth(w http.ResponseWriter, r *http.Request) {
	status := h.services.HealthService.Status(r.Context())

	code := http.StatusOK
	if status.Status == models.HealthStatusDown {
		code = http.StatusServiceUnavailable
	}

	utils.WriteJSON(w, status, code)
}
