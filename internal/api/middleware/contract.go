package middleware

import (
	"context"
)

// HTTPObserver собирает метрики HTTP запросов
type HTTPObserver interface {
	ObserveHTTP(method, route string, status int, seconds float64)
}

// PinVerifier проверяет PIN барбера
type PinVerifier interface {
	VerifyPin(ctx context.Context, candidate string) (bool, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
