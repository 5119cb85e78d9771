package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberShop/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-BarberShop/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "El cuerpo de la solicitud no es válido."
	msgValidationFailed   = "Revisa los datos de la reserva."
	msgInvalidDate        = "La fecha no es válida."
	msgSlotTaken          = "Ese horario acaba de ser reservado. Por favor elige otro."
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, dateErr := req.ToUseCaseRequest()
	if dateErr != nil {
		h.logger.Warn("POST /bookings - Failed to parse date %q: %v", req.Date, dateErr)
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var validationErrs createBooking.ValidationErrors
		switch {
		case errors.As(err, &validationErrs):
			h.logger.Warn("POST /bookings - Validation failed: %v", err)
			if dateErr != nil {
				validationErrs = withInvalidDate(validationErrs)
			}
			handlers.RespondValidationError(w, msgValidationFailed, validationErrs)

		case dateErr != nil:
			handlers.RespondValidationError(w, msgValidationFailed, withInvalidDate(nil))

		case errors.Is(err, createBooking.ErrSlotTaken):
			h.logger.Warn("POST /bookings - Slot taken: service=%q, date=%s, start=%s",
				req.Service, req.Date, req.StartTime)
			handlers.RespondConflict(w, msgSlotTaken)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: date=%s, start=%s, error=%v",
				req.Date, req.StartTime, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: id=%d, reference=%s", result.ID, result.Reference)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

// withInvalidDate заменяет сообщение по полю date на "дата не разобрана" или добавляет его
func withInvalidDate(errs createBooking.ValidationErrors) createBooking.ValidationErrors {
	out := make(createBooking.ValidationErrors, 0, len(errs)+1)
	found := false
	for _, fe := range errs {
		if fe.Field == "date" {
			fe.Message = msgInvalidDate
			found = true
		}
		out = append(out, fe)
	}
	if !found {
		out = append(out, createBooking.FieldError{Field: "date", Message: msgInvalidDate})
	}
	return out
}
