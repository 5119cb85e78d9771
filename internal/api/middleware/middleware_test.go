package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberShop/pkg/logger"
	"github.com/m04kA/SMC-BarberShop/pkg/metrics"
)

type fakeVerifier struct {
	pin string
	err error
}

func (f fakeVerifier) VerifyPin(_ context.Context, candidate string) (bool, error) {
	return candidate == f.pin, f.err
}

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestOwnerAuth(t *testing.T) {
	tests := []struct {
		name       string
		verifier   fakeVerifier
		header     string
		wantStatus int
	}{
		{name: "valid pin", verifier: fakeVerifier{pin: "0000"}, header: "0000", wantStatus: http.StatusOK},
		{name: "missing header", verifier: fakeVerifier{pin: "0000"}, wantStatus: http.StatusUnauthorized},
		{name: "wrong pin", verifier: fakeVerifier{pin: "0000"}, header: "1234", wantStatus: http.StatusUnauthorized},
		{name: "storage error", verifier: fakeVerifier{err: errors.New("down")}, header: "0000", wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := OwnerAuth(tt.verifier, logger.NewNop())(http.HandlerFunc(okHandler))
			req := httptest.NewRequest(http.MethodGet, "/api/v1/owner/appointments", nil)
			if tt.header != "" {
				req.Header.Set(HeaderOwnerPin, tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRequestID_Generated(t *testing.T) {
	var seen string
	handler := RequestID(logger.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = GetRequestID(r.Context())
	}))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(HeaderRequestID))
}

func TestRequestID_KeepsClientValue(t *testing.T) {
	var seen string
	handler := RequestID(logger.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = GetRequestID(r.Context())
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", rec.Header().Get(HeaderRequestID))
}

func TestGetRequestID_Missing(t *testing.T) {
	_, ok := GetRequestID(context.Background())

	assert.False(t, ok)
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	m := metrics.NewWithRegisterer("barbershop_test", prometheus.NewRegistry())

	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.HandleFunc("/api/v1/bookings/{reference}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodDelete)

	for _, ref := range []string{"11111", "22222"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/bookings/"+ref, nil))
		require.Equal(t, http.StatusNotFound, rec.Code)
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(
		m.HTTPRequestsTotal.WithLabelValues(http.MethodDelete, "/api/v1/bookings/{reference}", "404")))
}
