package access

import "context"

// ConfigRepository хранилище ключ-значение с compare-and-set
type ConfigRepository interface {
	Get(ctx context.Context, key string) (string, error)
	SetIfAbsent(ctx context.Context, key, value string) (bool, error)
	CompareAndSet(ctx context.Context, key, expected, value string) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
