package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarberShop/pkg/types"
)

type AvailabilityService interface {
	AvailableStartTimes(ctx context.Context, date time.Time, serviceName string) ([]types.TimeString, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
