package get_weekly_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarberShop/internal/domain"
)

type AvailabilityService interface {
	WeeklyAvailability(ctx context.Context, startDate time.Time) (*domain.WeekAvailability, error)
	WeekStart(offset int) (time.Time, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
