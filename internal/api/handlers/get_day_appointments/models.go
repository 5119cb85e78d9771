package get_day_appointments

import (
	"github.com/m04kA/SMC-BarberShop/internal/service/bookings/models"
)

// DayAppointmentsResponse HTTP response model
type DayAppointmentsResponse struct {
	Date         string                        `json:"date"`
	Appointments []*models.AppointmentResponse `json:"appointments"`
}
