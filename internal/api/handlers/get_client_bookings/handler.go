package get_client_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberShop/internal/api/handlers"
	"github.com/m04kA/SMC-BarberShop/internal/service/bookings"
)

const (
	msgMissingPhone = "El teléfono es obligatorio."
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

// Handle GET /api/v1/bookings?phone=
// Публичный endpoint: телефон работает как слабый идентификатор клиента
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	phone := r.URL.Query().Get("phone")

	result, err := h.service.FindUpcomingByPhone(r.Context(), phone)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings - Missing phone")
			handlers.RespondBadRequest(w, msgMissingPhone)

		default:
			h.logger.Error("GET /bookings - Failed to find bookings: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Found %d upcoming appointments", len(result))
	handlers.RespondJSON(w, http.StatusOK, ClientBookingsResponse{Appointments: result})
}
