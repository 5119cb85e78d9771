package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberShop/internal/domain"
	"github.com/m04kA/SMC-BarberShop/internal/slotgrid"
	"github.com/m04kA/SMC-BarberShop/pkg/types"
)

// Service движок доступности: свободные начала для услуги и недельная карта занятости
type Service struct {
	repo         AppointmentRepository
	catalog      *domain.Catalog
	hours        domain.ShopHours
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр движка доступности
func NewService(
	repo AppointmentRepository,
	catalog *domain.Catalog,
	hours domain.ShopHours,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		repo:         repo,
		catalog:      catalog,
		hours:        hours,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// AvailableStartTimes возвращает свободные времена начала услуги на дату
// Пустой результат не является ошибкой
// Если в контексте есть транзакция, записи читаются в ней (повторная проверка при бронировании)
func (s *Service) AvailableStartTimes(ctx context.Context, date time.Time, serviceName string) ([]types.TimeString, error) {
	service, ok := s.catalog.Get(serviceName)
	if !ok {
		s.logger.Warn("AvailableStartTimes: service=%q not found", serviceName)
		return nil, ErrServiceNotFound
	}

	date = domain.DateOnly(date)
	now := s.timeProvider.Now()
	today := domain.DateOnly(now)

	// Прошедшие даты и даты за пределами окна бронирования не предлагаются
	if date.Before(today) || date.After(today.AddDate(0, 0, s.hours.AdvanceBookingDays)) {
		s.logger.Info("AvailableStartTimes: date=%s outside bookable window", date.Format(domain.DateFormat))
		return []types.TimeString{}, nil
	}

	blockCount := slotgrid.BlocksForDuration(service.DurationMinutes, s.hours.IntervalMinutes)
	candidates := slotgrid.CanonicalSlots(s.hours.OpenHour, s.hours.CloseHour, s.hours.IntervalMinutes, blockCount)

	// Для сегодняшнего дня отсекаем всё раньше now + lead time
	var cutoff types.TimeString
	if date.Equal(today) {
		earliest := now.Add(time.Duration(s.hours.LeadTimeMinutes) * time.Minute)
		if !domain.IsSameDay(earliest, now) {
			s.logger.Info("AvailableStartTimes: lead time crosses midnight, nothing left today")
			return []types.TimeString{}, nil
		}
		cutoff = types.NewTimeString(earliest)
	}

	appointments, err := s.repo.GetByDate(ctx, date)
	if err != nil {
		s.logger.Error("AvailableStartTimes: failed to get appointments for date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: AvailableStartTimes - repository error: %w", ErrInternal, err)
	}

	occupied := s.occupiedSet(appointments)

	free := make([]types.TimeString, 0, len(candidates))
	for _, start := range candidates {
		if !cutoff.IsZero() && start.IsBefore(cutoff) {
			continue
		}
		if occupied.AllFree(slotgrid.OccupiedBlocks(start, blockCount, s.hours.IntervalMinutes)) {
			free = append(free, start)
		}
	}

	s.logger.Info("AvailableStartTimes: service=%q date=%s, %d of %d starts free",
		serviceName, date.Format(domain.DateFormat), len(free), len(candidates))

	return free, nil
}

// WeeklyAvailability строит карту занятости на 7 дней начиная со startDate
// Каждый блок оценивается отдельно, независимо от услуги
func (s *Service) WeeklyAvailability(ctx context.Context, startDate time.Time) (*domain.WeekAvailability, error) {
	startDate = domain.DateOnly(startDate)
	endDate := startDate.AddDate(0, 0, domain.DaysInWeek-1)

	appointments, err := s.repo.GetByDateRange(ctx, startDate, endDate)
	if err != nil {
		s.logger.Error("WeeklyAvailability: failed to get appointments %s..%s: %v",
			startDate.Format(domain.DateFormat), endDate.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: WeeklyAvailability - repository error: %w", ErrInternal, err)
	}

	byDate := make(map[string][]*domain.Appointment)
	for _, appt := range appointments {
		key := appt.DateString()
		byDate[key] = append(byDate[key], appt)
	}

	now := s.timeProvider.Now()
	today := domain.DateOnly(now)
	nowLabel := types.NewTimeString(now)
	blocks := slotgrid.DayBlocks(s.hours.OpenHour, s.hours.CloseHour, s.hours.IntervalMinutes)

	week := &domain.WeekAvailability{
		Slots: blocks,
		Days:  make([]domain.DayAvailability, 0, domain.DaysInWeek),
	}

	for i := 0; i < domain.DaysInWeek; i++ {
		date := startDate.AddDate(0, 0, i)
		occupied := s.occupiedSet(byDate[date.Format(domain.DateFormat)])

		day := domain.DayAvailability{
			Date:   date,
			Free:   make([]bool, len(blocks)),
			States: make([]domain.BlockState, len(blocks)),
		}

		for j, block := range blocks {
			free := !occupied.Has(block)
			day.Free[j] = free

			switch {
			case date.Before(today), date.Equal(today) && !block.IsAfter(nowLabel):
				day.States[j] = domain.BlockPast
			case free:
				day.States[j] = domain.BlockFree
			default:
				day.States[j] = domain.BlockBusy
			}
		}

		week.Days = append(week.Days, day)
	}

	s.logger.Info("WeeklyAvailability: built heat map %s..%s from %d appointments",
		startDate.Format(domain.DateFormat), endDate.Format(domain.DateFormat), len(appointments))

	return week, nil
}

// WeekStart возвращает первый день недельного вида для смещения offset (0 - текущая неделя)
// Неделя начинается с понедельника, но не раньше сегодняшнего дня
func (s *Service) WeekStart(offset int) (time.Time, error) {
	if offset < 0 || offset > domain.MaxWeekOffset {
		return time.Time{}, fmt.Errorf("%w: %d not in 0..%d", ErrInvalidWeekOffset, offset, domain.MaxWeekOffset)
	}

	today := domain.DateOnly(s.timeProvider.Now())
	daysSinceMonday := (int(today.Weekday()) + 6) % 7
	start := today.AddDate(0, 0, -daysSinceMonday+offset*domain.DaysInWeek)

	if start.Before(today) {
		return today, nil
	}
	return start, nil
}

// occupiedSet объединяет блоки, занятые записями
// Длительность берётся из каталога; запись с неизвестной услугой занимает один блок
func (s *Service) occupiedSet(appointments []*domain.Appointment) slotgrid.Set {
	occupied := slotgrid.Set{}
	for _, appt := range appointments {
		blockCount := 1
		if service, ok := s.catalog.Get(appt.Service); ok {
			blockCount = slotgrid.BlocksForDuration(service.DurationMinutes, s.hours.IntervalMinutes)
		} else {
			s.logger.Warn("occupiedSet: appointment ref=%s has unknown service=%q, counting one block",
				appt.Reference, appt.Service)
		}
		occupied.Add(slotgrid.OccupiedBlocks(appt.StartTime, blockCount, s.hours.IntervalMinutes)...)
	}
	return occupied
}
