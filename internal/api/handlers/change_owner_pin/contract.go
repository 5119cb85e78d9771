package change_owner_pin

import (
	"context"
)

type AccessService interface {
	ChangePin(ctx context.Context, current, newPin, confirm string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
