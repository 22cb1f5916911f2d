// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-festa/internal/app"
	"github.com/MKhiriev/go-festa/internal/config"
	"github.com/MKhiriev/go-festa/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetServerVersion(t *testing.T) {
	router, m := newTestRouter(t, defaultServerConfig())
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	rec := serve(router, http.MethodGet, "/api/version", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1.2.3", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
}

func TestGetHealth(t *testing.T) {
	checkedAt := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		status     models.HealthStatus
		wantStatus int
	}{
		{"up", models.HealthStatus{Status: models.HealthStatusUp, CheckedAt: checkedAt}, http.StatusOK},
		{"unknown", models.HealthStatus{Status: models.HealthStatusUnknown}, http.StatusOK},
		{"down", models.HealthStatus{Status: models.HealthStatusDown, CheckedAt: checkedAt, Error: "timeout"}, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t, defaultServerConfig())
			m.health.EXPECT().Status(gomock.Any()).Return(tt.status)

			rec := serve(router, http.MethodGet, "/health", nil)

			require.Equal(t, tt.wantStatus, rec.Code)

			var got models.HealthStatus
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, tt.status.Status, got.Status)
			assert.Equal(t, tt.status.Error, got.Error)
		})
	}
}

func TestRouter_NotFound(t *testing.T) {
	router, _ := newTestRouter(t, defaultServerConfig())

	rec := serve(router, http.MethodPost, "/bebidas", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, app.MsgNotFound, decodeError(t, rec))
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	router, _ := newTestRouter(t, defaultServerConfig())

	rec := serve(router, http.MethodGet, "/comidas/1/reservar", nil)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, app.MsgMethodNotAllowed, decodeError(t, rec))
	assert.Equal(t, []string{http.MethodPost}, rec.Header().Values("Allow"))
}

func TestRouter_CORSPreflight(t *testing.T) {
	router, _ := newTestRouter(t, defaultServerConfig())

	req := httptest.NewRequest(http.MethodOptions, "/comidas/1/reservar", nil)
	req.Header.Set("Origin", "http://festa.local")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Content-Type")
}

func TestRouter_CORSConfiguredOrigins(t *testing.T) {
	cfg := defaultServerConfig()
	cfg.AllowedOrigins = []string{"http://festa.local"}
	router, _ := newTestRouter(t, cfg)

	allowed := httptest.NewRequest(http.MethodOptions, "/usuarios", nil)
	allowed.Header.Set("Origin", "http://festa.local")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, allowed)

	assert.Equal(t, "http://festa.local", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "Origin", rec.Header().Get("Vary"))

	other := httptest.NewRequest(http.MethodOptions, "/usuarios", nil)
	other.Header.Set("Origin", "http://evil.example")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, other)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_TraceID(t *testing.T) {
	router, m := newTestRouter(t, defaultServerConfig())
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1").Times(2)

	rec := serve(router, http.MethodGet, "/api/version", nil)
	generated := rec.Header().Get(traceIDHeader)
	assert.Len(t, generated, 36)

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set(traceIDHeader, "trace-from-client")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "trace-from-client", rec.Header().Get(traceIDHeader))
}

func TestRouter_GzipResponse(t *testing.T) {
	router, m := newTestRouter(t, defaultServerConfig())
	m.foods.EXPECT().ListForUser(gomock.Any(), ana).Return([]models.FoodView{
		{Food: models.Food{ID: 1, Name: "Coxinha", Quantity: 2}, ReservedBy: []string{}},
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/comidas-usuario", jsonBody(t, ana))
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	assert.JSONEq(t,
		`{"comidas":[{"id":1,"nome":"Coxinha","quantidade":2,"reservados":[],"reservado":false}]}`,
		string(gunzip(t, rec.Body.Bytes())),
	)
}

func TestRouter_GzipRequest(t *testing.T) {
	router, m := newTestRouter(t, defaultServerConfig())
	m.auth.EXPECT().Register(gomock.Any(), ana).Return(models.User{ID: 1, Name: ana.Name, Phone: ana.Phone}, nil)

	raw, err := json.Marshal(ana)
	require.NoError(t, err)

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err = zw.Write(raw)
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	req := httptest.NewRequest(http.MethodPost, "/usuarios", &buf)
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_InvalidGzipRequest(t *testing.T) {
	router, _ := newTestRouter(t, defaultServerConfig())

	req := httptest.NewRequest(http.MethodPost, "/usuarios", bytes.NewBufferString("plain text"))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgInvalidGzipBody, decodeError(t, rec))
}

func TestRouter_RecoversPanics(t *testing.T) {
	router, m := newTestRouter(t, config.Server{})
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).DoAndReturn(func(context.Context) string {
		panic("boom")
	})

	rec := serve(router, http.MethodGet, "/api/version", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
