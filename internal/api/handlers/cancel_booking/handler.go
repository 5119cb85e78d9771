package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberShop/internal/api/handlers"
	"github.com/m04kA/SMC-BarberShop/internal/service/bookings"
)

const (
	msgMissingReference = "El código de reserva es obligatorio."
	msgCancelFailed     = "No se pudo cancelar la cita."
	msgCancelled        = "Cita cancelada."
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

// Handle DELETE /api/v1/bookings/{reference}
// Тот же обработчик висит на DELETE /api/v1/owner/appointments/{reference}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reference := mux.Vars(r)["reference"]

	result, err := h.service.CancelByReference(r.Context(), reference)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("DELETE %s - Missing reference", r.URL.Path)
			handlers.RespondBadRequest(w, msgMissingReference)

		case errors.Is(err, bookings.ErrAppointmentNotFound):
			h.logger.Warn("DELETE %s - Appointment not found: reference=%s", r.URL.Path, reference)
			handlers.RespondNotFound(w, msgCancelFailed)

		default:
			h.logger.Error("DELETE %s - Failed to cancel: reference=%s, error=%v", r.URL.Path, reference, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE %s - Appointment cancelled: reference=%s", r.URL.Path, result.Reference)
	handlers.RespondJSON(w, http.StatusOK, CancelBookingResponse{Message: msgCancelled, Appointment: result})
}
