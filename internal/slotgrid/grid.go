// Package slotgrid maps service durations onto the shop's fixed block grid.
// Every function is pure; inputs are trusted to be well formed.
package slotgrid

import "github.com/m04kA/SMC-BarberShop/pkg/types"

// BlocksForDuration returns ceil(duration/interval), at least 1
func BlocksForDuration(durationMinutes, intervalMinutes int) int {
	if intervalMinutes <= 0 {
		return 1
	}
	blocks := (durationMinutes + intervalMinutes - 1) / intervalMinutes
	if blocks < 1 {
		return 1
	}
	return blocks
}

// CanonicalSlots enumerates every legal start for a booking of blockCount blocks:
// t runs from the opening hour in interval steps while t + blockCount*interval <= close
func CanonicalSlots(openHour, closeHour, intervalMinutes, blockCount int) []types.TimeString {
	slots := make([]types.TimeString, 0)
	if intervalMinutes <= 0 {
		return slots
	}

	span := blockCount * intervalMinutes
	limit := closeHour * 60
	for t := openHour * 60; t+span <= limit; t += intervalMinutes {
		slots = append(slots, types.FromMinutes(t))
	}

	return slots
}

// DayBlocks returns every single block of the day
func DayBlocks(openHour, closeHour, intervalMinutes int) []types.TimeString {
	return CanonicalSlots(openHour, closeHour, intervalMinutes, 1)
}

// OccupiedBlocks returns the blockCount consecutive labels starting at start.
// An unparsable start occupies nothing.
func OccupiedBlocks(start types.TimeString, blockCount, intervalMinutes int) []types.TimeString {
	base, err := start.Minutes()
	if err != nil {
		return nil
	}

	blocks := make([]types.TimeString, 0, blockCount)
	for b := 0; b < blockCount; b++ {
		blocks = append(blocks, types.FromMinutes(base+b*intervalMinutes))
	}

	return blocks
}

// Set is a collection of occupied block labels
type Set map[types.TimeString]struct{}

// Add marks every block as occupied
func (s Set) Add(blocks ...types.TimeString) {
	for _, b := range blocks {
		s[b] = struct{}{}
	}
}

// Has reports whether the block is occupied
func (s Set) Has(block types.TimeString) bool {
	_, ok := s[block]
	return ok
}

// AllFree reports whether none of the blocks is occupied
func (s Set) AllFree(blocks []types.TimeString) bool {
	for _, b := range blocks {
		if s.Has(b) {
			return false
		}
	}
	return true
}
