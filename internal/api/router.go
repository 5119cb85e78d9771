package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/m04kA/SMC-BarberShop/internal/api/handlers/cancel_booking"
	changeOwnerPinHandler "github.com/m04kA/SMC-BarberShop/internal/api/handlers/change_owner_pin"
	createBookingHandler "github.com/m04kA/SMC-BarberShop/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/m04kA/SMC-BarberShop/internal/api/handlers/get_available_slots"
	getClientBookingsHandler "github.com/m04kA/SMC-BarberShop/internal/api/handlers/get_client_bookings"
	getDayAppointmentsHandler "github.com/m04kA/SMC-BarberShop/internal/api/handlers/get_day_appointments"
	getWeeklyAvailabilityHandler "github.com/m04kA/SMC-BarberShop/internal/api/handlers/get_weekly_availability"
	listServicesHandler "github.com/m04kA/SMC-BarberShop/internal/api/handlers/list_services"
	verifyOwnerPinHandler "github.com/m04kA/SMC-BarberShop/internal/api/handlers/verify_owner_pin"
	"github.com/m04kA/SMC-BarberShop/internal/api/middleware"
)

// Handlers обработчики всех endpoint'ов
type Handlers struct {
	ListServices          *listServicesHandler.Handler
	GetAvailableSlots     *getAvailableSlotsHandler.Handler
	CreateBooking         *createBookingHandler.Handler
	CancelBooking         *cancelBookingHandler.Handler
	GetClientBookings     *getClientBookingsHandler.Handler
	GetWeeklyAvailability *getWeeklyAvailabilityHandler.Handler
	VerifyOwnerPin        *verifyOwnerPinHandler.Handler
	GetDayAppointments    *getDayAppointmentsHandler.Handler
	ChangeOwnerPin        *changeOwnerPinHandler.Handler
}

// RouterOptions инфраструктура роутера
// Observer может быть nil - тогда HTTP метрики и /metrics не подключаются
type RouterOptions struct {
	Observer    middleware.HTTPObserver
	MetricsPath string
	PinVerifier middleware.PinVerifier
	Logger      middleware.Logger
}

// NewRouter собирает маршруты API
func NewRouter(h Handlers, opts RouterOptions) *mux.Router {
	r := mux.NewRouter()

	r.Use(middleware.RequestID(opts.Logger))

	if opts.Observer != nil {
		r.Use(middleware.MetricsMiddleware(opts.Observer))
		r.Handle(opts.MetricsPath, promhttp.Handler()).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (клиенты, без аутентификации)
	// ============================================================

	api.HandleFunc("/services", h.ListServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/available-slots", h.GetAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability/week", h.GetWeeklyAvailability.Handle).Methods(http.MethodGet)

	api.HandleFunc("/bookings", h.CreateBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", h.GetClientBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{reference}", h.CancelBooking.Handle).Methods(http.MethodDelete)

	api.HandleFunc("/owner/login", h.VerifyOwnerPin.Handle).Methods(http.MethodPost)

	// ============================================================
	// OWNER ROUTES (требуют X-Owner-PIN header)
	// ============================================================

	owner := api.PathPrefix("/owner").Subrouter()
	owner.Use(middleware.OwnerAuth(opts.PinVerifier, opts.Logger))

	owner.HandleFunc("/appointments", h.GetDayAppointments.Handle).Methods(http.MethodGet)
	owner.HandleFunc("/appointments/{reference}", h.CancelBooking.Handle).Methods(http.MethodDelete)
	owner.HandleFunc("/pin", h.ChangeOwnerPin.Handle).Methods(http.MethodPut)

	return r
}
