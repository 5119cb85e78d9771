package verify_owner_pin

import (
	"net/http"

	"github.com/m04kA/SMC-BarberShop/internal/api/handlers"
)

const (
	msgInvalidRequestBody = "El cuerpo de la solicitud no es válido."
	msgWrongPin           = "PIN incorrecto."
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

// Handle POST /api/v1/owner/login
// Сессии нет: клиент дальше передаёт PIN в заголовке X-Owner-PIN
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req VerifyPinRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /owner/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	ok, err := h.service.VerifyPin(r.Context(), req.Pin)
	if err != nil {
		h.logger.Error("POST /owner/login - Failed to verify pin: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	if !ok {
		h.logger.Warn("POST /owner/login - Wrong pin from %s", r.RemoteAddr)
		handlers.RespondUnauthorized(w, msgWrongPin)
		return
	}

	h.logger.Info("POST /owner/login - Owner authenticated")
	handlers.RespondJSON(w, http.StatusOK, VerifyPinResponse{Authenticated: true})
}
