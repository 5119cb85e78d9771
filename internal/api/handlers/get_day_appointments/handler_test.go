package get_day_appointments

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberShop/internal/domain"
	"github.com/m04kA/SMC-BarberShop/internal/service/bookings/models"
	"github.com/m04kA/SMC-BarberShop/pkg/logger"
)

type fakeService struct {
	got  time.Time
	resp []*models.AppointmentResponse
	err  error
}

func (f *fakeService) ListForDate(_ context.Context, date time.Time) ([]*models.AppointmentResponse, error) {
	f.got = date
	return f.resp, f.err
}

func serve(svc *fakeService, target string) *httptest.ResponseRecorder {
	h := NewHandler(svc, logger.NewNop())
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_ListsWithPrice(t *testing.T) {
	svc := &fakeService{resp: []*models.AppointmentResponse{
		{Reference: "48213", StartTime: "10:00", Price: 20000},
	}}

	rec := serve(svc, "/api/v1/owner/appointments?date=2025-06-11")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2025-06-11", svc.got.Format(domain.DateFormat))
	assert.Contains(t, rec.Body.String(), `"price":20000`)
	assert.Contains(t, rec.Body.String(), `"date":"2025-06-11"`)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, "/api/v1/owner/appointments").Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, "/api/v1/owner/appointments?date=11-06-2025").Code)
	assert.Equal(t, http.StatusInternalServerError,
		serve(&fakeService{err: errors.New("x")}, "/api/v1/owner/appointments?date=2025-06-11").Code)
}
