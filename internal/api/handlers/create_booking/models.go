package create_booking

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-BarberShop/internal/domain"
	createBooking "github.com/m04kA/SMC-BarberShop/internal/usecase/create_booking"
	"github.com/m04kA/SMC-BarberShop/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ClientName string `json:"clientName"`
	Phone      string `json:"phone"`
	Service    string `json:"service"`
	Date       string `json:"date"`      // "2025-06-11"
	StartTime  string `json:"startTime"` // "10:00"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64  `json:"id"`
	Reference       string `json:"reference"`
	ClientName      string `json:"clientName"`
	Phone           string `json:"phone"`
	Service         string `json:"service"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Price           int64  `json:"price"`
	CreatedAt       string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Парсится только дата; время начала проверяет use case
// Если дату разобрать не удалось, запрос всё равно возвращается (с нулевой датой) вместе с ошибкой,
// чтобы остальные поля прошли валидацию
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	req := &createBooking.Request{
		ClientName: r.ClientName,
		Phone:      r.Phone,
		Service:    r.Service,
		StartTime:  types.TimeString(strings.TrimSpace(r.StartTime)),
	}

	if dateStr := strings.TrimSpace(r.Date); dateStr != "" {
		parsed, err := domain.ParseDate(dateStr)
		if err != nil {
			return req, err
		}
		req.Date = parsed
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		Reference:       resp.Reference,
		ClientName:      resp.ClientName,
		Phone:           resp.Phone,
		Service:         resp.Service,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Price:           resp.Price,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
