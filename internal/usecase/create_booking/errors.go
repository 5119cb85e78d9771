package create_booking

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных (оборачивается ValidationErrors)
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrSlotTaken возвращается, когда выбранное время заняли между показом и отправкой формы
	ErrSlotTaken = errors.New("create_booking: slot was just taken")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// FieldError ошибка конкретного поля формы
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors список ошибок валидации, показывается пользователю целиком
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, fe := range v {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return ErrInvalidInput.Error() + ": " + strings.Join(parts, "; ")
}

// Unwrap позволяет проверять errors.Is(err, ErrInvalidInput)
func (v ValidationErrors) Unwrap() error {
	return ErrInvalidInput
}
