package list_services

import (
	"net/http"

	"github.com/m04kA/SMC-BarberShop/internal/api/handlers"
)

type Handler struct {
	service ServiceCatalog
	logger  Logger
}

func NewHandler(service ServiceCatalog, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	services := h.service.ListServices()

	h.logger.Info("GET /services - Returned %d services", len(services))
	handlers.RespondJSON(w, http.StatusOK, ListServicesResponse{Services: services})
}
