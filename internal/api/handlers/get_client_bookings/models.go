package get_client_bookings

import (
	"github.com/m04kA/SMC-BarberShop/internal/service/bookings/models"
)

// ClientBookingsResponse HTTP response model
type ClientBookingsResponse struct {
	Appointments []*models.AppointmentResponse `json:"appointments"`
}
