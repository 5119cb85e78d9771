package get_weekly_availability

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberShop/internal/domain"
	"github.com/m04kA/SMC-BarberShop/internal/service/availability"
	"github.com/m04kA/SMC-BarberShop/pkg/logger"
	"github.com/m04kA/SMC-BarberShop/pkg/types"
)

type fakeService struct {
	gotStart  time.Time
	gotOffset int
	weekErr   error
}

func (f *fakeService) WeeklyAvailability(_ context.Context, startDate time.Time) (*domain.WeekAvailability, error) {
	f.gotStart = startDate
	if f.weekErr != nil {
		return nil, f.weekErr
	}
	return &domain.WeekAvailability{
		Slots: []types.TimeString{"09:00", "09:30"},
		Days: []domain.DayAvailability{{
			Date:   startDate,
			Free:   []bool{true, false},
			States: []domain.BlockState{domain.BlockFree, domain.BlockBusy},
		}},
	}, nil
}

func (f *fakeService) WeekStart(offset int) (time.Time, error) {
	f.gotOffset = offset
	if offset < 0 || offset > domain.MaxWeekOffset {
		return time.Time{}, availability.ErrInvalidWeekOffset
	}
	return time.Date(2025, 6, 10+offset*7, 0, 0, 0, 0, time.UTC), nil
}

func serve(svc *fakeService, target string) *httptest.ResponseRecorder {
	h := NewHandler(svc, logger.NewNop())
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_DefaultsToCurrentWeek(t *testing.T) {
	svc := &fakeService{gotOffset: -1}

	rec := serve(svc, "/api/v1/availability/week")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, svc.gotOffset)
	assert.Equal(t, "2025-06-10", svc.gotStart.Format(domain.DateFormat))

	var resp WeeklyAvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"09:00", "09:30"}, resp.Slots)
	require.Len(t, resp.Days, 1)
	assert.Equal(t, []string{"free", "busy"}, resp.Days[0].States)
	assert.Equal(t, 1, resp.Days[0].FreeCount)
}

func TestHandle_WeekOffset(t *testing.T) {
	svc := &fakeService{}

	rec := serve(svc, "/api/v1/availability/week?weekOffset=2")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2025-06-24", svc.gotStart.Format(domain.DateFormat))
}

func TestHandle_StartWins(t *testing.T) {
	svc := &fakeService{gotOffset: -1}

	rec := serve(svc, "/api/v1/availability/week?start=2025-07-01&weekOffset=3")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2025-07-01", svc.gotStart.Format(domain.DateFormat))
	assert.Equal(t, -1, svc.gotOffset)
}

func TestHandle_BadParams(t *testing.T) {
	for _, target := range []string{
		"/api/v1/availability/week?weekOffset=4",
		"/api/v1/availability/week?weekOffset=-1",
		"/api/v1/availability/week?weekOffset=next",
		"/api/v1/availability/week?start=2025-13-01",
	} {
		t.Run(target, func(t *testing.T) {
			rec := serve(&fakeService{}, target)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandle_InternalError(t *testing.T) {
	rec := serve(&fakeService{weekErr: errors.New("db down")}, "/api/v1/availability/week")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
