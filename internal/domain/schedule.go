package domain

// ShopHours describes the daily grid and booking policy
type ShopHours struct {
	OpenHour           int
	CloseHour          int
	IntervalMinutes    int
	LeadTimeMinutes    int
	AdvanceBookingDays int
}

// DefaultShopHours returns the standard 09:00-19:00 grid with 30-minute blocks
func DefaultShopHours() ShopHours {
	return ShopHours{
		OpenHour:           DefaultOpenHour,
		CloseHour:          DefaultCloseHour,
		IntervalMinutes:    DefaultIntervalMinutes,
		LeadTimeMinutes:    DefaultLeadTimeMinutes,
		AdvanceBookingDays: DefaultAdvanceBookingDays,
	}
}

// OpenMinutes returns the opening time in minutes since midnight
func (h ShopHours) OpenMinutes() int {
	return h.OpenHour * 60
}

// CloseMinutes returns the closing time in minutes since midnight
func (h ShopHours) CloseMinutes() int {
	return h.CloseHour * 60
}
