package get_client_bookings

import (
	"context"

	"github.com/m04kA/SMC-BarberShop/internal/service/bookings/models"
)

type BookingService interface {
	FindUpcomingByPhone(ctx context.Context, phone string) ([]*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
