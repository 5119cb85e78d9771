package models

import (
	"github.com/m04kA/SMC-BarberShop/internal/domain"
)

// ServiceResponse услуга из каталога
type ServiceResponse struct {
	Name            string `json:"name"`
	DurationMinutes int    `json:"durationMinutes"`
	Price           int64  `json:"price"`
}

// AppointmentResponse запись клиента
// Длительность и цена берутся из текущего каталога; для удалённой из каталога услуги они нулевые
type AppointmentResponse struct {
	ID              int64  `json:"id"`
	Reference       string `json:"reference"`
	ClientName      string `json:"clientName"`
	Phone           string `json:"phone"`
	Service         string `json:"service"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes,omitempty"`
	Price           int64  `json:"price,omitempty"`
}

// FromDomainService конвертирует domain.Service в ServiceResponse
func FromDomainService(s domain.Service) ServiceResponse {
	return ServiceResponse{
		Name:            s.Name,
		DurationMinutes: s.DurationMinutes,
		Price:           s.Price,
	}
}

// FromDomainAppointment конвертирует domain.Appointment в AppointmentResponse
func FromDomainAppointment(appt *domain.Appointment, catalog *domain.Catalog) *AppointmentResponse {
	resp := &AppointmentResponse{
		ID:         appt.ID,
		Reference:  appt.Reference,
		ClientName: appt.ClientName,
		Phone:      appt.Phone,
		Service:    appt.Service,
		Date:       appt.DateString(),
		StartTime:  appt.StartTime.String(),
	}

	if s, ok := catalog.Get(appt.Service); ok {
		resp.DurationMinutes = s.DurationMinutes
		resp.Price = s.Price
	}

	return resp
}

// FromDomainAppointmentList конвертирует список записей
func FromDomainAppointmentList(appts []*domain.Appointment, catalog *domain.Catalog) []*AppointmentResponse {
	out := make([]*AppointmentResponse, 0, len(appts))
	for _, appt := range appts {
		out = append(out, FromDomainAppointment(appt, catalog))
	}
	return out
}
