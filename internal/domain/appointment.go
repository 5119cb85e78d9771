package domain

import (
	"time"

	"github.com/m04kA/SMC-BarberShop/pkg/types"
)

// Appointment represents a booked service in the single-chair schedule.
// There is no status: cancelling deletes the row.
type Appointment struct {
	ID         int64
	Reference  string // 5-digit public code, unique among existing appointments
	ClientName string
	Phone      string
	Service    string // Catalog key at creation time
	Date       time.Time
	StartTime  types.TimeString
	CreatedAt  time.Time
}

// DateString returns the appointment date as YYYY-MM-DD
func (a *Appointment) DateString() string {
	return a.Date.Format(DateFormat)
}
