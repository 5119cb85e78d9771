package cancel_booking

import (
	"context"

	"github.com/m04kA/SMC-BarberShop/internal/service/bookings/models"
)

type BookingService interface {
	CancelByReference(ctx context.Context, reference string) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
