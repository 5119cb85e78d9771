package get_day_appointments

import (
	"net/http"

	"github.com/m04kA/SMC-BarberShop/internal/api/handlers"
	"github.com/m04kA/SMC-BarberShop/internal/domain"
)

const (
	msgMissingDate = "La fecha es obligatoria."
	msgInvalidDate = "La fecha no es válida, usa el formato AAAA-MM-DD."
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/owner/appointments?date=
// Только для барбера (OwnerAuth)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /owner/appointments - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := domain.ParseDate(dateStr)
	if err != nil {
		h.logger.Warn("GET /owner/appointments - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.ListForDate(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /owner/appointments - Failed to list appointments: date=%s, error=%v", dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /owner/appointments - %d appointments on %s", len(result), dateStr)
	handlers.RespondJSON(w, http.StatusOK, DayAppointmentsResponse{
		Date:         date.Format(domain.DateFormat),
		Appointments: result,
	})
}
