package availability

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуги нет в каталоге
	ErrServiceNotFound = errors.New("availability: service not found")

	// ErrInvalidWeekOffset возвращается, когда смещение недели вне допустимого диапазона
	ErrInvalidWeekOffset = errors.New("availability: invalid week offset")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("availability: internal error")
)
