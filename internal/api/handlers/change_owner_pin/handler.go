package change_owner_pin

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberShop/internal/api/handlers"
	"github.com/m04kA/SMC-BarberShop/internal/service/access"
)

const (
	msgInvalidRequestBody = "El cuerpo de la solicitud no es válido."
	msgMissingFields      = "Completa todos los campos."
	msgInvalidPinFormat   = "El nuevo PIN debe ser exactamente 4 dígitos."
	msgPinMismatch        = "Los PINs nuevos no coinciden."
	msgWrongCurrentPin    = "El PIN actual es incorrecto."
	msgPinChanged         = "PIN actualizado."
)

type Handler struct {
	service AccessService
	logger  Logger
}

func NewHandler(service AccessService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/owner/pin
// Только для барбера (OwnerAuth); текущий PIN всё равно проверяется ещё раз
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ChangePinRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /owner/pin - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err := h.service.ChangePin(r.Context(), req.CurrentPin, req.NewPin, req.ConfirmPin)
	if err != nil {
		switch {
		case errors.Is(err, access.ErrInvalidInput):
			h.logger.Warn("PUT /owner/pin - Missing fields")
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, access.ErrInvalidPinFormat):
			h.logger.Warn("PUT /owner/pin - Invalid new pin format")
			handlers.RespondBadRequest(w, msgInvalidPinFormat)

		case errors.Is(err, access.ErrPinMismatch):
			h.logger.Warn("PUT /owner/pin - Confirmation does not match")
			handlers.RespondBadRequest(w, msgPinMismatch)

		case errors.Is(err, access.ErrWrongPin):
			h.logger.Warn("PUT /owner/pin - Wrong current pin")
			handlers.RespondForbidden(w, msgWrongCurrentPin)

		default:
			h.logger.Error("PUT /owner/pin - Failed to change pin: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /owner/pin - Pin changed")
	handlers.RespondJSON(w, http.StatusOK, ChangePinResponse{Message: msgPinChanged})
}
