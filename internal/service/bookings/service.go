package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-BarberShop/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-BarberShop/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-BarberShop/internal/service/bookings/models"
)

// Service сервис для работы с записями: каталог, отмена, поиск по телефону, список на день
type Service struct {
	appointmentRepo AppointmentRepository
	catalog         *domain.Catalog
	timeProvider    TimeProvider
	metrics         Metrics
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	catalog *domain.Catalog,
	timeProvider TimeProvider,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		catalog:         catalog,
		timeProvider:    timeProvider,
		metrics:         metrics,
		logger:          logger,
	}
}

// ListServices возвращает каталог услуг в порядке конфигурации
func (s *Service) ListServices() []models.ServiceResponse {
	services := s.catalog.All()
	out := make([]models.ServiceResponse, 0, len(services))
	for _, svc := range services {
		out = append(out, models.FromDomainService(svc))
	}
	return out
}

// CancelByReference удаляет запись по коду
// Владение не проверяется: достаточно знать код. Повторная отмена возвращает ErrAppointmentNotFound
func (s *Service) CancelByReference(ctx context.Context, reference string) (*models.AppointmentResponse, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return nil, fmt.Errorf("%w: reference is required", ErrInvalidInput)
	}

	s.logger.Info("CancelByReference: cancelling reference=%s", reference)

	appt, err := s.appointmentRepo.DeleteByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("CancelByReference: reference=%s not found", reference)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("CancelByReference: repository error for reference=%s: %v", reference, err)
		return nil, fmt.Errorf("%w: CancelByReference - repository error: %v", ErrInternal, err)
	}

	s.metrics.IncBookingCancelled()
	s.logger.Info("CancelByReference: cancelled appointment id=%d reference=%s on %s %s",
		appt.ID, appt.Reference, appt.DateString(), appt.StartTime)

	return models.FromDomainAppointment(appt, s.catalog), nil
}

// FindUpcomingByPhone возвращает записи клиента начиная с сегодняшнего дня
// Телефон сравнивается точно, после удаления пробелов по краям
func (s *Service) FindUpcomingByPhone(ctx context.Context, phone string) ([]*models.AppointmentResponse, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}

	today := domain.DateOnly(s.timeProvider.Now())

	appts, err := s.appointmentRepo.GetFutureByPhone(ctx, phone, today)
	if err != nil {
		s.logger.Error("FindUpcomingByPhone: repository error: %v", err)
		return nil, fmt.Errorf("%w: FindUpcomingByPhone - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("FindUpcomingByPhone: found %d upcoming appointments", len(appts))
	return models.FromDomainAppointmentList(appts, s.catalog), nil
}

// ListForDate возвращает записи на дату по времени начала (вид барбера, с ценой)
func (s *Service) ListForDate(ctx context.Context, date time.Time) ([]*models.AppointmentResponse, error) {
	date = domain.DateOnly(date)

	appts, err := s.appointmentRepo.GetByDate(ctx, date)
	if err != nil {
		s.logger.Error("ListForDate: repository error for date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: ListForDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListForDate: %d appointments on %s", len(appts), date.Format(domain.DateFormat))
	return models.FromDomainAppointmentList(appts, s.catalog), nil
}
