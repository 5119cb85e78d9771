package domain

import (
	"time"

	"github.com/m04kA/SMC-BarberShop/pkg/types"
)

// BlockState is the heat-map state of a single block
type BlockState string

const (
	BlockFree BlockState = "free"
	BlockBusy BlockState = "busy"
	BlockPast BlockState = "past" // already elapsed, never bookable
)

// DayAvailability is one column of the weekly heat map
type DayAvailability struct {
	Date   time.Time
	Free   []bool       // block not occupied by any appointment
	States []BlockState // Free combined with the current time
}

// FreeCount returns the number of bookable blocks
func (d *DayAvailability) FreeCount() int {
	n := 0
	for _, s := range d.States {
		if s == BlockFree {
			n++
		}
	}
	return n
}

// WeekAvailability is the service-agnostic busy/free view of seven days
type WeekAvailability struct {
	Slots []types.TimeString // every block of the day, in order
	Days  []DayAvailability
}
