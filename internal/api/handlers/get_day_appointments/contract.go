package get_day_appointments

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarberShop/internal/service/bookings/models"
)

type BookingService interface {
	ListForDate(ctx context.Context, date time.Time) ([]*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
