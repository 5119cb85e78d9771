package bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarberShop/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	DeleteByReference(ctx context.Context, reference string) (*domain.Appointment, error)
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error)
	GetFutureByPhone(ctx context.Context, phone string, fromDate time.Time) ([]*domain.Appointment, error)
}

// TimeProvider интерфейс для получения текущего времени в поясе барбершопа
type TimeProvider interface {
	Now() time.Time
}

// Metrics счётчики отмен
type Metrics interface {
	IncBookingCancelled()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
