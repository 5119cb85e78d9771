package verify_owner_pin

import (
	"context"
)

type AccessService interface {
	VerifyPin(ctx context.Context, candidate string) (bool, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
