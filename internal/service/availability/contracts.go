package availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarberShop/internal/domain"
)

// AppointmentRepository интерфейс чтения записей
type AppointmentRepository interface {
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error)
	GetByDateRange(ctx context.Context, from, to time.Time) ([]*domain.Appointment, error)
}

// TimeProvider интерфейс для получения текущего времени в поясе барбершопа
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
