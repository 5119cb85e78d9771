package list_services

import (
	"github.com/m04kA/SMC-BarberShop/internal/service/bookings/models"
)

// ListServicesResponse HTTP response model
type ListServicesResponse struct {
	Services []models.ServiceResponse `json:"services"`
}
