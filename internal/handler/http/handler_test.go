// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-festa/internal/config"
	"github.com/MKhiriev/go-festa/internal/logger"
	"github.com/MKhiriev/go-festa/internal/mock"
	"github.com/MKhiriev/go-festa/internal/service"
	"github.com/MKhiriev/go-festa/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var ana = models.Identity{Name: "Ana Souza", Phone: "11999990000"}

type testServices struct {
	auth         *mock.MockAuthService
	foods        *mock.MockFoodService
	reservations *mock.MockReservationService
	appInfo      *mock.MockAppInfoService
	health       *mock.MockHealthService
}

// newTestRouter builds the full router over mocked services.
func newTestRouter(t *testing.T, cfg config.Server) (http.Handler, testServices) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mocks := testServices{
		auth:         mock.NewMockAuthService(ctrl),
		foods:        mock.NewMockFoodService(ctrl),
		reservations: mock.NewMockReservationService(ctrl),
		appInfo:      mock.NewMockAppInfoService(ctrl),
		health:       mock.NewMockHealthService(ctrl),
	}

	h := NewHandler(&service.Services{
		AuthService:        mocks.auth,
		FoodService:        mocks.foods,
		ReservationService: mocks.reservations,
		AppInfoService:     mocks.appInfo,
		HealthService:      mocks.health,
	}, cfg, logger.Nop())

	return h.Init(), mocks
}

func defaultServerConfig() config.Server {
	return config.Server{HTTPAddress: ":0", RequestTimeout: 5 * time.Second}
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func serve(router http.Handler, method, target string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body.Error
}

func gunzip(t *testing.T, b []byte) []byte {
	t.Helper()
	zr, err := gzip.NewReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer zr.Close()

	out, err := io.ReadAll(zr)
	require.NoError(t, err)
	return out
}
