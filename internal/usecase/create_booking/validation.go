package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-BarberShop/internal/domain"
)

// Сообщения для клиента
const (
	msgNameRequired    = "El nombre es obligatorio."
	msgPhoneRequired   = "El teléfono es obligatorio."
	msgTimeRequired    = "No hay horarios disponibles."
	msgTimeInvalid     = "El horario no es válido."
	msgServiceUnknown  = "El servicio no existe."
	msgDateRequired    = "La fecha es obligatoria."
	msgDateOutOfWindow = "La fecha debe estar entre hoy y los próximos %d días."
)

// normalizeRequest убирает пробелы по краям имени и телефона
func normalizeRequest(req *Request) {
	req.ClientName = strings.TrimSpace(req.ClientName)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Service = strings.TrimSpace(req.Service)
	req.Date = domain.DateOnly(req.Date)
}

// validateRequest собирает все ошибки формы сразу, а не только первую
func validateRequest(req *Request, catalog ServiceCatalog, hours domain.ShopHours, now time.Time) ValidationErrors {
	var errs ValidationErrors

	if req.ClientName == "" {
		errs = append(errs, FieldError{Field: "clientName", Message: msgNameRequired})
	}

	if req.Phone == "" {
		errs = append(errs, FieldError{Field: "phone", Message: msgPhoneRequired})
	}

	if _, ok := catalog.Get(req.Service); !ok {
		errs = append(errs, FieldError{Field: "service", Message: msgServiceUnknown})
	}

	if fe, ok := validateDate(req.Date, now, hours.AdvanceBookingDays); !ok {
		errs = append(errs, fe)
	}

	if fe, ok := validateStartTime(req, hours); !ok {
		errs = append(errs, fe)
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// validateDate проверяет окно бронирования: сегодня .. сегодня + advanceDays
func validateDate(date, now time.Time, advanceDays int) (FieldError, bool) {
	if date.IsZero() {
		return FieldError{Field: "date", Message: msgDateRequired}, false
	}

	today := domain.DateOnly(now)
	if date.Before(today) || date.After(today.AddDate(0, 0, advanceDays)) {
		return FieldError{Field: "date", Message: fmt.Sprintf(msgDateOutOfWindow, advanceDays)}, false
	}

	return FieldError{}, true
}

// validateStartTime проверяет формат HH:MM и попадание в сетку блоков
// Занятость и lead time проверяются позже, при пересчёте доступности
func validateStartTime(req *Request, hours domain.ShopHours) (FieldError, bool) {
	if req.StartTime.IsZero() {
		return FieldError{Field: "startTime", Message: msgTimeRequired}, false
	}

	minutes, err := req.StartTime.Minutes()
	if err != nil {
		return FieldError{Field: "startTime", Message: msgTimeInvalid}, false
	}

	if minutes < hours.OpenMinutes() || minutes >= hours.CloseMinutes() ||
		(minutes-hours.OpenMinutes())%hours.IntervalMinutes != 0 {
		return FieldError{Field: "startTime", Message: msgTimeInvalid}, false
	}

	return FieldError{}, true
}
