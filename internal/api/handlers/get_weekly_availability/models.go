package get_weekly_availability

import (
	"github.com/m04kA/SMC-BarberShop/internal/domain"
)

// DayResponse одна колонка тепловой карты
type DayResponse struct {
	Date      string   `json:"date"`
	Free      []bool   `json:"free"`
	States    []string `json:"states"`
	FreeCount int      `json:"freeCount"`
}

// WeeklyAvailabilityResponse HTTP response model
type WeeklyAvailabilityResponse struct {
	Slots []string      `json:"slots"`
	Days  []DayResponse `json:"days"`
}

// FromDomain конвертирует domain.WeekAvailability в HTTP response
func FromDomain(week *domain.WeekAvailability) *WeeklyAvailabilityResponse {
	resp := &WeeklyAvailabilityResponse{
		Slots: make([]string, 0, len(week.Slots)),
		Days:  make([]DayResponse, 0, len(week.Days)),
	}

	for _, slot := range week.Slots {
		resp.Slots = append(resp.Slots, slot.String())
	}

	for i := range week.Days {
		day := &week.Days[i]
		states := make([]string, 0, len(day.States))
		for _, s := range day.States {
			states = append(states, string(s))
		}
		resp.Days = append(resp.Days, DayResponse{
			Date:      day.Date.Format(domain.DateFormat),
			Free:      day.Free,
			States:    states,
			FreeCount: day.FreeCount(),
		})
	}

	return resp
}
