package availability

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberShop/internal/domain"
	"github.com/m04kA/SMC-BarberShop/internal/slotgrid"
	"github.com/m04kA/SMC-BarberShop/pkg/clock"
	"github.com/m04kA/SMC-BarberShop/pkg/logger"
	"github.com/m04kA/SMC-BarberShop/pkg/types"
)

var bogota = clock.FixedZone(domain.DefaultUTCOffsetHours)

type fakeRepo struct {
	appointments []*domain.Appointment
	err          error
}

func (r *fakeRepo) GetByDate(_ context.Context, date time.Time) ([]*domain.Appointment, error) {
	return r.GetByDateRange(context.Background(), date, date)
}

func (r *fakeRepo) GetByDateRange(_ context.Context, from, to time.Time) ([]*domain.Appointment, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]*domain.Appointment, 0)
	for _, a := range r.appointments {
		if !a.Date.Before(domain.DateOnly(from)) && !a.Date.After(domain.DateOnly(to)) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeRepo) book(date time.Time, start types.TimeString, service string) {
	r.appointments = append(r.appointments, &domain.Appointment{
		Reference: fmt.Sprintf("%05d", 10000+len(r.appointments)),
		Service:   service,
		Date:      domain.DateOnly(date),
		StartTime: start,
	})
}

// now: вторник 2025-06-10 11:52 по Боготе
func newTestService(repo *fakeRepo) (*Service, time.Time) {
	now := time.Date(2025, 6, 10, 11, 52, 0, 0, bogota)
	svc := NewService(repo, domain.DefaultCatalog(), domain.DefaultShopHours(), clock.Fixed{At: now}, logger.NewNop())
	return svc, now
}

func TestAvailableStartTimes_UnknownService(t *testing.T) {
	svc, now := newTestService(&fakeRepo{})

	_, err := svc.AvailableStartTimes(context.Background(), now, "Tinte")

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestAvailableStartTimes_RepositoryError(t *testing.T) {
	svc, now := newTestService(&fakeRepo{err: errors.New("connection refused")})

	_, err := svc.AvailableStartTimes(context.Background(), now.AddDate(0, 0, 1), "Corte")

	assert.ErrorIs(t, err, ErrInternal)
}

func TestAvailableStartTimes_LeadTimeToday(t *testing.T) {
	svc, now := newTestService(&fakeRepo{})

	slots, err := svc.AvailableStartTimes(context.Background(), now, "Corte")
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	assert.Equal(t, types.TimeString("13:00"), slots[0])
	for _, s := range slots {
		assert.False(t, s.IsBefore("12:52"), "slot %s offered inside lead time", s)
	}
	assert.NotContains(t, slots, types.TimeString("12:30"))
}

func TestAvailableStartTimes_LeadTimeCrossesMidnight(t *testing.T) {
	now := time.Date(2025, 6, 10, 23, 30, 0, 0, bogota)
	svc := NewService(&fakeRepo{}, domain.DefaultCatalog(), domain.DefaultShopHours(), clock.Fixed{At: now}, logger.NewNop())

	slots, err := svc.AvailableStartTimes(context.Background(), now, "Barba")

	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestAvailableStartTimes_PastAndFarDates(t *testing.T) {
	svc, now := newTestService(&fakeRepo{})

	slots, err := svc.AvailableStartTimes(context.Background(), now.AddDate(0, 0, -1), "Corte")
	require.NoError(t, err)
	assert.Empty(t, slots)

	slots, err = svc.AvailableStartTimes(context.Background(), now.AddDate(0, 0, domain.DefaultAdvanceBookingDays+1), "Corte")
	require.NoError(t, err)
	assert.Empty(t, slots)

	slots, err = svc.AvailableStartTimes(context.Background(), now.AddDate(0, 0, domain.DefaultAdvanceBookingDays), "Corte")
	require.NoError(t, err)
	assert.NotEmpty(t, slots)
}

func TestAvailableStartTimes_TwoBlockServiceStopsBeforeClosing(t *testing.T) {
	svc, now := newTestService(&fakeRepo{})

	slots, err := svc.AvailableStartTimes(context.Background(), now.AddDate(0, 0, 1), "Corte + Barba")
	require.NoError(t, err)

	assert.Equal(t, types.TimeString("09:00"), slots[0])
	assert.Equal(t, types.TimeString("18:00"), slots[len(slots)-1])
	assert.NotContains(t, slots, types.TimeString("18:30"))
}

func TestAvailableStartTimes_BarbaBlocksCorteAtNine(t *testing.T) {
	repo := &fakeRepo{}
	svc, now := newTestService(repo)
	tomorrow := now.AddDate(0, 0, 1)
	repo.book(tomorrow, "09:00", "Barba")

	slots, err := svc.AvailableStartTimes(context.Background(), tomorrow, "Corte")
	require.NoError(t, err)

	assert.NotContains(t, slots, types.TimeString("09:00"))
	assert.Contains(t, slots, types.TimeString("09:30"))
}

func TestAvailableStartTimes_LongBookingBlocksPreviousStart(t *testing.T) {
	repo := &fakeRepo{}
	svc, now := newTestService(repo)
	tomorrow := now.AddDate(0, 0, 1)
	repo.book(tomorrow, "10:00", "Corte")

	slots, err := svc.AvailableStartTimes(context.Background(), tomorrow, "Corte")
	require.NoError(t, err)

	// 09:30 требует 09:30 и 10:00, 10:30 занят второй половиной записи
	assert.Contains(t, slots, types.TimeString("09:00"))
	assert.NotContains(t, slots, types.TimeString("09:30"))
	assert.NotContains(t, slots, types.TimeString("10:00"))
	assert.NotContains(t, slots, types.TimeString("10:30"))
	assert.Contains(t, slots, types.TimeString("11:00"))
}

func TestAvailableStartTimes_UnknownServiceOccupiesOneBlock(t *testing.T) {
	repo := &fakeRepo{}
	svc, now := newTestService(repo)
	tomorrow := now.AddDate(0, 0, 1)
	repo.book(tomorrow, "14:00", "Servicio retirado")

	slots, err := svc.AvailableStartTimes(context.Background(), tomorrow, "Barba")
	require.NoError(t, err)

	assert.NotContains(t, slots, types.TimeString("14:00"))
	assert.Contains(t, slots, types.TimeString("14:30"))
}

func TestAvailableStartTimes_OfferedStartsNeverOverlap(t *testing.T) {
	repo := &fakeRepo{}
	svc, now := newTestService(repo)
	hours := domain.DefaultShopHours()
	catalog := domain.DefaultCatalog()

	for _, day := range []time.Time{now, now.AddDate(0, 0, 1), now.AddDate(0, 0, 2)} {
		repo.book(day, "09:00", "Barba")
		repo.book(day, "10:30", "Corte + Barba")
		repo.book(day, "13:00", "Corte")
		repo.book(day, "15:30", "Barba")
		repo.book(day, "18:00", "Corte")
	}

	for _, day := range []time.Time{now, now.AddDate(0, 0, 1), now.AddDate(0, 0, 2)} {
		existing, err := repo.GetByDate(context.Background(), day)
		require.NoError(t, err)
		occupied := svc.occupiedSet(existing)

		for _, service := range catalog.All() {
			slots, err := svc.AvailableStartTimes(context.Background(), day, service.Name)
			require.NoError(t, err)

			blocks := slotgrid.BlocksForDuration(service.DurationMinutes, hours.IntervalMinutes)
			for _, start := range slots {
				assert.True(t, occupied.AllFree(slotgrid.OccupiedBlocks(start, blocks, hours.IntervalMinutes)),
					"%s at %s overlaps an existing appointment", service.Name, start)

				minutes, err := start.Minutes()
				require.NoError(t, err)
				assert.LessOrEqual(t, minutes+blocks*hours.IntervalMinutes, hours.CloseMinutes())
			}
		}
	}
}

func TestWeeklyAvailability_States(t *testing.T) {
	repo := &fakeRepo{}
	svc, now := newTestService(repo)
	yesterday := now.AddDate(0, 0, -1)
	tomorrow := now.AddDate(0, 0, 1)

	repo.book(yesterday, "12:00", "Barba")
	repo.book(now, "15:00", "Corte")
	repo.book(now, "10:00", "Barba")
	repo.book(tomorrow, "09:00", "Corte + Barba")

	week, err := svc.WeeklyAvailability(context.Background(), yesterday)
	require.NoError(t, err)

	require.Len(t, week.Slots, 20)
	require.Len(t, week.Days, 7)
	assert.Equal(t, "2025-06-09", week.Days[0].Date.Format(domain.DateFormat))
	assert.Equal(t, "2025-06-15", week.Days[6].Date.Format(domain.DateFormat))

	idx := func(label types.TimeString) int {
		for i, s := range week.Slots {
			if s == label {
				return i
			}
		}
		t.Fatalf("block %s not in grid", label)
		return -1
	}

	// вчера: всё в прошлом, даже занятый блок
	for _, state := range week.Days[0].States {
		assert.Equal(t, domain.BlockPast, state)
	}
	assert.False(t, week.Days[0].Free[idx("12:00")])

	// сегодня: до 11:52 включительно прошлое, дальше свободно/занято
	today := week.Days[1]
	assert.Equal(t, domain.BlockPast, today.States[idx("10:00")])
	assert.False(t, today.Free[idx("10:00")])
	assert.Equal(t, domain.BlockPast, today.States[idx("11:30")])
	assert.Equal(t, domain.BlockFree, today.States[idx("12:00")])
	assert.Equal(t, domain.BlockBusy, today.States[idx("15:00")])
	assert.Equal(t, domain.BlockBusy, today.States[idx("15:30")])
	assert.Equal(t, domain.BlockFree, today.States[idx("16:00")])

	// завтра: запись на два блока
	assert.Equal(t, domain.BlockBusy, week.Days[2].States[idx("09:00")])
	assert.Equal(t, domain.BlockBusy, week.Days[2].States[idx("09:30")])
	assert.Equal(t, domain.BlockFree, week.Days[2].States[idx("10:00")])
	assert.Equal(t, len(week.Slots)-2, week.Days[2].FreeCount())
}

func TestWeeklyAvailability_RepositoryError(t *testing.T) {
	svc, now := newTestService(&fakeRepo{err: errors.New("timeout")})

	_, err := svc.WeeklyAvailability(context.Background(), now)

	assert.ErrorIs(t, err, ErrInternal)
}

func TestWeekStart(t *testing.T) {
	svc, _ := newTestService(&fakeRepo{})

	tests := []struct {
		name    string
		offset  int
		want    string
		wantErr bool
	}{
		{name: "current week clamps monday to today", offset: 0, want: "2025-06-10"},
		{name: "next week starts monday", offset: 1, want: "2025-06-16"},
		{name: "last allowed week", offset: 3, want: "2025-06-30"},
		{name: "too far ahead", offset: 4, wantErr: true},
		{name: "negative", offset: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, err := svc.WeekStart(tt.offset)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidWeekOffset)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, start.Format(domain.DateFormat))
		})
	}
}
