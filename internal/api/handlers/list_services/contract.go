package list_services

import (
	"github.com/m04kA/SMC-BarberShop/internal/service/bookings/models"
)

type ServiceCatalog interface {
	ListServices() []models.ServiceResponse
}

type Logger interface {
	Info(format string, v ...interface{})
}
