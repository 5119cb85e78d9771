package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberShop/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-BarberShop/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-BarberShop/pkg/clock"
	"github.com/m04kA/SMC-BarberShop/pkg/logger"
)

type fakeRepo struct {
	byRef map[string]*domain.Appointment
	err   error

	lastPhone    string
	lastFromDate time.Time
}

func newFakeRepo(appts ...*domain.Appointment) *fakeRepo {
	r := &fakeRepo{byRef: make(map[string]*domain.Appointment)}
	for _, a := range appts {
		r.byRef[a.Reference] = a
	}
	return r
}

func (r *fakeRepo) DeleteByReference(_ context.Context, reference string) (*domain.Appointment, error) {
	if r.err != nil {
		return nil, r.err
	}
	appt, ok := r.byRef[reference]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	delete(r.byRef, reference)
	return appt, nil
}

func (r *fakeRepo) GetByDate(_ context.Context, date time.Time) ([]*domain.Appointment, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]*domain.Appointment, 0)
	for _, a := range r.byRef {
		if a.Date.Equal(date) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeRepo) GetFutureByPhone(_ context.Context, phone string, fromDate time.Time) ([]*domain.Appointment, error) {
	r.lastPhone = phone
	r.lastFromDate = fromDate
	if r.err != nil {
		return nil, r.err
	}
	out := make([]*domain.Appointment, 0)
	for _, a := range r.byRef {
		if a.Phone == phone && !a.Date.Before(fromDate) {
			out = append(out, a)
		}
	}
	return out, nil
}

type countingMetrics struct {
	cancelled int
}

func (m *countingMetrics) IncBookingCancelled() { m.cancelled++ }

var testNow = time.Date(2025, 6, 10, 11, 52, 0, 0, clock.FixedZone(-5))

func newTestService(repo *fakeRepo) (*Service, *countingMetrics) {
	m := &countingMetrics{}
	return NewService(repo, domain.DefaultCatalog(), clock.Fixed{At: testNow}, m, logger.NewNop()), m
}

func sampleAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:         1,
		Reference:  "48213",
		ClientName: "Ana",
		Phone:      "3001234567",
		Service:    "Corte + Barba",
		Date:       time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC),
		StartTime:  "10:00",
	}
}

func TestListServices(t *testing.T) {
	svc, _ := newTestService(newFakeRepo())

	services := svc.ListServices()

	require.Len(t, services, 3)
	assert.Equal(t, "Corte", services[0].Name)
	assert.Equal(t, 45, services[0].DurationMinutes)
	assert.Equal(t, int64(20000), services[1].Price)
	assert.Equal(t, "Barba", services[2].Name)
}

func TestCancelByReference(t *testing.T) {
	svc, m := newTestService(newFakeRepo(sampleAppointment()))

	resp, err := svc.CancelByReference(context.Background(), " 48213 ")

	require.NoError(t, err)
	assert.Equal(t, "48213", resp.Reference)
	assert.Equal(t, "2025-06-11", resp.Date)
	assert.Equal(t, "10:00", resp.StartTime)
	assert.Equal(t, int64(20000), resp.Price)
	assert.Equal(t, 1, m.cancelled)
}

func TestCancelByReference_TwiceIsNotFound(t *testing.T) {
	repo := newFakeRepo(sampleAppointment())
	svc, m := newTestService(repo)

	_, err := svc.CancelByReference(context.Background(), "48213")
	require.NoError(t, err)

	_, err = svc.CancelByReference(context.Background(), "48213")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
	assert.Equal(t, 1, m.cancelled)
	assert.Empty(t, repo.byRef)
}

func TestCancelByReference_EmptyReference(t *testing.T) {
	svc, _ := newTestService(newFakeRepo())

	_, err := svc.CancelByReference(context.Background(), "  ")

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancelByReference_RepositoryError(t *testing.T) {
	repo := newFakeRepo()
	repo.err = errors.New("connection reset")
	svc, _ := newTestService(repo)

	_, err := svc.CancelByReference(context.Background(), "48213")

	assert.ErrorIs(t, err, ErrInternal)
}

func TestFindUpcomingByPhone(t *testing.T) {
	past := sampleAppointment()
	past.Reference = "11111"
	past.Date = time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)

	repo := newFakeRepo(sampleAppointment(), past)
	svc, _ := newTestService(repo)

	resp, err := svc.FindUpcomingByPhone(context.Background(), " 3001234567 ")

	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "48213", resp[0].Reference)
	assert.Equal(t, "3001234567", repo.lastPhone)
	assert.Equal(t, "2025-06-10", repo.lastFromDate.Format(domain.DateFormat))
}

func TestFindUpcomingByPhone_EmptyPhone(t *testing.T) {
	svc, _ := newTestService(newFakeRepo())

	_, err := svc.FindUpcomingByPhone(context.Background(), "")

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestListForDate_UnknownServiceHasNoPrice(t *testing.T) {
	retired := sampleAppointment()
	retired.Reference = "22222"
	retired.Service = "Tinte"
	retired.StartTime = "15:00"

	svc, _ := newTestService(newFakeRepo(sampleAppointment(), retired))

	resp, err := svc.ListForDate(context.Background(), time.Date(2025, 6, 11, 18, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	require.Len(t, resp, 2)
	for _, a := range resp {
		if a.Service == "Tinte" {
			assert.Zero(t, a.Price)
		} else {
			assert.Equal(t, int64(20000), a.Price)
		}
	}
}

func TestListForDate_RepositoryError(t *testing.T) {
	repo := newFakeRepo()
	repo.err = errors.New("timeout")
	svc, _ := newTestService(repo)

	_, err := svc.ListForDate(context.Background(), testNow)

	assert.ErrorIs(t, err, ErrInternal)
}
