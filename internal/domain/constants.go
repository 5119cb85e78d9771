package domain

// Default shop schedule values
const (
	DefaultOpenHour           = 9  // 09:00
	DefaultCloseHour          = 19 // 19:00, last start depends on the service
	DefaultIntervalMinutes    = 30 // block size
	DefaultLeadTimeMinutes    = 60 // minimum notice for same-day bookings
	DefaultAdvanceBookingDays = 30 // bookable window: today..today+30
	DefaultUTCOffsetHours     = -5 // Colombia, no DST
)

// Business validation constants
const (
	MinIntervalMinutes = 5
	MaxIntervalMinutes = 240
	MaxLeadTimeMinutes = 24 * 60
	MaxAdvanceDays     = 365
	MaxWeekOffset      = 3 // weekly view navigates up to three weeks ahead
	DaysInWeek         = 7
)

// Reference code constants
const (
	ReferenceMin         = 10000
	ReferenceMax         = 99999
	ReferenceDigits      = 5
	MaxReferenceAttempts = 100
)

// Owner access
const (
	PinConfigKey = "pin_barbero"
	DefaultPin   = "0000"
	PinLength    = 4
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
