package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarberShop/internal/domain"
	"github.com/m04kA/SMC-BarberShop/pkg/types"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	ExistsReference(ctx context.Context, reference string) (bool, error)
	LockDate(ctx context.Context, date time.Time) error
}

// AvailabilityChecker пересчитывает свободные начала на момент отправки формы
type AvailabilityChecker interface {
	AvailableStartTimes(ctx context.Context, date time.Time, serviceName string) ([]types.TimeString, error)
}

// ServiceCatalog каталог услуг
type ServiceCatalog interface {
	Get(name string) (domain.Service, bool)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени в поясе барбершопа
type TimeProvider interface {
	Now() time.Time
}

// Metrics счётчики бронирований
type Metrics interface {
	IncBookingCreated()
	IncBookingRejected(reason string)
	IncReferenceFallback()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
