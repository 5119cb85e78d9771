package get_weekly_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-BarberShop/internal/api/handlers"
	"github.com/m04kA/SMC-BarberShop/internal/domain"
	"github.com/m04kA/SMC-BarberShop/internal/service/availability"
)

const (
	msgInvalidStart      = "La fecha de inicio no es válida, usa el formato AAAA-MM-DD."
	msgInvalidWeekOffset = "La semana solicitada no es válida."
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

// Handle GET /api/v1/availability/week
// Query params: start (YYYY-MM-DD) или weekOffset (0..3, по умолчанию 0); start имеет приоритет
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	startDate, ok := h.resolveStart(w, r)
	if !ok {
		return
	}

	week, err := h.service.WeeklyAvailability(r.Context(), startDate)
	if err != nil {
		h.logger.Error("GET /availability/week - Failed to build heat map: start=%s, error=%v",
			startDate.Format(domain.DateFormat), err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /availability/week - Heat map built: start=%s", startDate.Format(domain.DateFormat))
	handlers.RespondJSON(w, http.StatusOK, FromDomain(week))
}

func (h *Handler) resolveStart(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	query := r.URL.Query()

	if startStr := query.Get("start"); startStr != "" {
		start, err := domain.ParseDate(startStr)
		if err != nil {
			h.logger.Warn("GET /availability/week - Invalid start date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStart)
			return time.Time{}, false
		}
		return start, true
	}

	offset := 0
	if offsetStr := query.Get("weekOffset"); offsetStr != "" {
		parsed, err := strconv.Atoi(offsetStr)
		if err != nil {
			h.logger.Warn("GET /availability/week - Invalid week offset: %v", err)
			handlers.RespondBadRequest(w, msgInvalidWeekOffset)
			return time.Time{}, false
		}
		offset = parsed
	}

	start, err := h.service.WeekStart(offset)
	if err != nil {
		if errors.Is(err, availability.ErrInvalidWeekOffset) {
			h.logger.Warn("GET /availability/week - Week offset out of range: %d", offset)
			handlers.RespondBadRequest(w, msgInvalidWeekOffset)
			return time.Time{}, false
		}
		h.logger.Error("GET /availability/week - Failed to resolve week start: %v", err)
		handlers.RespondInternalError(w)
		return time.Time{}, false
	}

	return start, true
}
