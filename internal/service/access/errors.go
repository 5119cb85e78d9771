package access

import "errors"

var (
	// ErrInvalidInput возвращается, когда не заполнены все поля смены PIN
	ErrInvalidInput = errors.New("access: all fields are required")

	// ErrInvalidPinFormat возвращается, когда новый PIN не из 4 цифр
	ErrInvalidPinFormat = errors.New("access: new pin must be exactly 4 digits")

	// ErrPinMismatch возвращается, когда новый PIN и подтверждение не совпадают
	ErrPinMismatch = errors.New("access: new pin and confirmation do not match")

	// ErrWrongPin возвращается, когда текущий PIN указан неверно
	ErrWrongPin = errors.New("access: wrong pin")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("access: internal error")
)
