package create_booking

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"slices"

	"github.com/m04kA/SMC-BarberShop/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-BarberShop/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-BarberShop/pkg/txmanager"
)

// Причины отказа для метрики bookings_rejected_total
const (
	rejectValidation = "validation"
	rejectSlotTaken  = "slot_taken"
	rejectInternal   = "internal"
)

// UseCase use case для создания записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	availability    AvailabilityChecker
	catalog         ServiceCatalog
	hours           domain.ShopHours
	txManager       TransactionManager
	timeProvider    TimeProvider
	metrics         Metrics
	logger          Logger

	randIntN func(n int) int
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	availability AvailabilityChecker,
	catalog ServiceCatalog,
	hours domain.ShopHours,
	txManager TransactionManager,
	timeProvider TimeProvider,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		availability:    availability,
		catalog:         catalog,
		hours:           hours,
		txManager:       txManager,
		timeProvider:    timeProvider,
		metrics:         metrics,
		logger:          logger,
		randIntN:        rand.Intn,
	}
}

// Execute выполняет use case создания записи
// Повторная проверка доступности и вставка идут в одной транзакции под блокировкой даты,
// поэтому две записи на пересекающиеся блоки невозможны
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	normalizeRequest(req)

	uc.logger.Info("CreateBooking: service=%q, date=%s, time=%s",
		req.Service, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация формы
	now := uc.timeProvider.Now()
	if errs := validateRequest(req, uc.catalog, uc.hours, now); errs != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", errs)
		uc.metrics.IncBookingRejected(rejectValidation)
		return nil, errs
	}

	service, _ := uc.catalog.Get(req.Service)

	// 2. Проверка и запись; при коллизии кода или конфликте транзакции - новая транзакция
	var (
		result *domain.Appointment
		err    error
	)
	for attempt := 1; attempt <= domain.MaxReferenceAttempts; attempt++ {
		result, err = uc.book(ctx, req)
		if err == nil || !isRetryable(err) {
			break
		}
		uc.logger.Warn("CreateBooking: attempt %d/%d failed, retrying: %v", attempt, domain.MaxReferenceAttempts, err)
	}

	if err != nil {
		switch {
		case errors.Is(err, ErrSlotTaken):
			uc.metrics.IncBookingRejected(rejectSlotTaken)
			return nil, ErrSlotTaken
		case errors.Is(err, ErrInternal):
			uc.metrics.IncBookingRejected(rejectInternal)
			return nil, err
		default:
			uc.logger.Error("CreateBooking: transaction failed: %v", err)
			uc.metrics.IncBookingRejected(rejectInternal)
			return nil, fmt.Errorf("%w: transaction failed: %w", ErrInternal, err)
		}
	}

	uc.metrics.IncBookingCreated()
	uc.logger.Info("CreateBooking: created appointment id=%d reference=%s", result.ID, result.Reference)

	return &Response{
		ID:              result.ID,
		Reference:       result.Reference,
		ClientName:      result.ClientName,
		Phone:           result.Phone,
		Service:         result.Service,
		Date:            result.Date,
		StartTime:       result.StartTime,
		DurationMinutes: service.DurationMinutes,
		Price:           service.Price,
		CreatedAt:       result.CreatedAt,
	}, nil
}

// book одна попытка записи в транзакции READ COMMITTED
// Блокировка даты берётся первым запросом, последующие чтения видят всё, что закоммитили до её получения
func (uc *UseCase) book(ctx context.Context, req *Request) (*domain.Appointment, error) {
	var result *domain.Appointment

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 2.1. Сериализуем все записи на эту дату
		if err := uc.appointmentRepo.LockDate(txCtx, req.Date); err != nil {
			uc.logger.Error("CreateBooking: failed to lock date=%s: %v", req.Date.Format(domain.DateFormat), err)
			return fmt.Errorf("%w: failed to lock date: %w", ErrInternal, err)
		}

		// 2.2. Пересчитываем доступность на момент отправки
		free, err := uc.availability.AvailableStartTimes(txCtx, req.Date, req.Service)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to recompute availability: %v", err)
			return fmt.Errorf("%w: failed to recompute availability: %w", ErrInternal, err)
		}

		if !slices.Contains(free, req.StartTime) {
			uc.logger.Warn("CreateBooking: slot %s %s is no longer free",
				req.Date.Format(domain.DateFormat), req.StartTime)
			return ErrSlotTaken
		}

		// 2.3. Код бронирования
		reference, err := uc.generateReference(txCtx)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to generate reference: %v", err)
			return err
		}

		// 2.4. Сохраняем запись
		created, err := uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			Reference:  reference,
			ClientName: req.ClientName,
			Phone:      req.Phone,
			Service:    req.Service,
			Date:       req.Date,
			StartTime:  req.StartTime,
		})
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrDuplicateReference) {
				uc.logger.Warn("CreateBooking: reference=%s taken concurrently on insert", reference)
			} else {
				uc.logger.Error("CreateBooking: failed to create appointment: %v", err)
			}
			return fmt.Errorf("%w: failed to create appointment: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	return result, err
}

// isRetryable ошибки, после которых новая транзакция может пройти
// Коллизия кода возможна между записями на разные даты: они берут разные блокировки
func isRetryable(err error) bool {
	return errors.Is(err, appointmentRepo.ErrDuplicateReference) || txmanager.IsSerializationFailure(err)
}
