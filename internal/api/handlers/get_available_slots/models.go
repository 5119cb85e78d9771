package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-BarberShop/internal/domain"
	"github.com/m04kA/SMC-BarberShop/pkg/types"
)

// AvailableSlotsResponse HTTP response model
// Пустой список означает "No hay horarios disponibles" для выбранного дня
type AvailableSlotsResponse struct {
	Service    string   `json:"service"`
	Date       string   `json:"date"`
	StartTimes []string `json:"startTimes"`
}

// FromStartTimes конвертирует список времён в HTTP response
func FromStartTimes(serviceName string, date time.Time, times []types.TimeString) *AvailableSlotsResponse {
	startTimes := make([]string, 0, len(times))
	for _, t := range times {
		startTimes = append(startTimes, t.String())
	}
	return &AvailableSlotsResponse{
		Service:    serviceName,
		Date:       date.Format(domain.DateFormat),
		StartTimes: startTimes,
	}
}
