package cancel_booking

import (
	"github.com/m04kA/SMC-BarberShop/internal/service/bookings/models"
)

// CancelBookingResponse HTTP response model
type CancelBookingResponse struct {
	Message     string                      `json:"message"`
	Appointment *models.AppointmentResponse `json:"appointment"`
}
