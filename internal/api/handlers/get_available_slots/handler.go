package get_available_slots

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-BarberShop/internal/api/handlers"
	"github.com/m04kA/SMC-BarberShop/internal/domain"
	"github.com/m04kA/SMC-BarberShop/internal/service/availability"
)

const (
	msgMissingService  = "El servicio es obligatorio."
	msgMissingDate     = "La fecha es obligatoria."
	msgInvalidDate     = "La fecha no es válida, usa el formato AAAA-MM-DD."
	msgServiceNotFound = "El servicio no existe."
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-slots
// Query params: service (required), date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceName := strings.TrimSpace(r.URL.Query().Get("service"))
	if serviceName == "" {
		h.logger.Warn("GET /available-slots - Missing service")
		handlers.RespondBadRequest(w, msgMissingService)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := domain.ParseDate(dateStr)
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	times, err := h.service.AvailableStartTimes(r.Context(), date, serviceName)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrServiceNotFound):
			h.logger.Warn("GET /available-slots - Service not found: service=%q", serviceName)
			handlers.RespondNotFound(w, msgServiceNotFound)

		default:
			h.logger.Error("GET /available-slots - Failed to get start times: service=%q, date=%s, error=%v",
				serviceName, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /available-slots - %d start times: service=%q, date=%s", len(times), serviceName, dateStr)
	handlers.RespondJSON(w, http.StatusOK, FromStartTimes(serviceName, date, times))
}
