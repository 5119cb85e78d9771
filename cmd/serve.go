package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/urfave/cli/v2"

	"github.com/m04kA/SMC-BarberShop/internal/api"
	cancelBookingHandler "github.com/m04kA/SMC-BarberShop/internal/api/handlers/cancel_booking"
	changeOwnerPinHandler "github.com/m04kA/SMC-BarberShop/internal/api/handlers/change_owner_pin"
	createBookingHandler "github.com/m04kA/SMC-BarberShop/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/m04kA/SMC-BarberShop/internal/api/handlers/get_available_slots"
	getClientBookingsHandler "github.com/m04kA/SMC-BarberShop/internal/api/handlers/get_client_bookings"
	getDayAppointmentsHandler "github.com/m04kA/SMC-BarberShop/internal/api/handlers/get_day_appointments"
	getWeeklyAvailabilityHandler "github.com/m04kA/SMC-BarberShop/internal/api/handlers/get_weekly_availability"
	listServicesHandler "github.com/m04kA/SMC-BarberShop/internal/api/handlers/list_services"
	verifyOwnerPinHandler "github.com/m04kA/SMC-BarberShop/internal/api/handlers/verify_owner_pin"
	"github.com/m04kA/SMC-BarberShop/internal/config"
	appointmentRepo "github.com/m04kA/SMC-BarberShop/internal/infra/storage/appointment"
	configRepo "github.com/m04kA/SMC-BarberShop/internal/infra/storage/config"
	accessService "github.com/m04kA/SMC-BarberShop/internal/service/access"
	availabilityService "github.com/m04kA/SMC-BarberShop/internal/service/availability"
	bookingsService "github.com/m04kA/SMC-BarberShop/internal/service/bookings"
	createBookingUC "github.com/m04kA/SMC-BarberShop/internal/usecase/create_booking"
	"github.com/m04kA/SMC-BarberShop/pkg/clock"
	"github.com/m04kA/SMC-BarberShop/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberShop/pkg/logger"
	"github.com/m04kA/SMC-BarberShop/pkg/metrics"
	"github.com/m04kA/SMC-BarberShop/pkg/txmanager"
)

func runServe(c *cli.Context) error {
	// Загружаем конфигурацию
	configPath := c.String("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer log.Close()

	log.Info("Starting SMC-BarberShop...")
	log.Info("Configuration loaded from %s", configPath)

	// Схема применяется до открытия основного пула
	if cfg.Database.AutoMigrate {
		mg, err := openMigrator(cfg.Database)
		if err != nil {
			return err
		}
		err = mg.Up()
		mg.Close()
		if err != nil {
			return err
		}
		log.Info("Database migrations applied")
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.PingContext(c.Context); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	stopMetricsCh := make(chan struct{})
	defer close(stopMetricsCh)

	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	// Время салона: фиксированный сдвиг от UTC
	shopClock := clock.NewFixedOffset(cfg.Shop.UTCOffsetHours)
	catalog := cfg.Catalog()
	hours := cfg.ShopHours()
	log.Info("Shop hours %02d:00-%02d:00, interval %dm, lead %dm, %d services, UTC%+d",
		hours.OpenHour, hours.CloseHour, hours.IntervalMinutes, hours.LeadTimeMinutes,
		catalog.Len(), cfg.Shop.UTCOffsetHours)

	// Репозитории
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB)
	configRepository := configRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Сервисы
	availabilitySvc := availabilityService.NewService(appointmentRepository, catalog, hours, shopClock, log)
	bookingSvc := bookingsService.NewService(appointmentRepository, catalog, shopClock, metricsCollector, log)
	accessSvc := accessService.NewService(configRepository, cfg.Shop.DefaultPin, log)

	if err := accessSvc.EnsureDefaultPin(c.Context); err != nil {
		return err
	}

	// Use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		appointmentRepository,
		availabilitySvc,
		catalog,
		hours,
		txMgr,
		shopClock,
		metricsCollector,
		log,
	)

	handlers := api.Handlers{
		ListServices:          listServicesHandler.NewHandler(bookingSvc, log),
		GetAvailableSlots:     getAvailableSlotsHandler.NewHandler(availabilitySvc, log),
		CreateBooking:         createBookingHandler.NewHandler(createBookingUseCase, log),
		CancelBooking:         cancelBookingHandler.NewHandler(bookingSvc, log),
		GetClientBookings:     getClientBookingsHandler.NewHandler(bookingSvc, log),
		GetWeeklyAvailability: getWeeklyAvailabilityHandler.NewHandler(availabilitySvc, log),
		VerifyOwnerPin:        verifyOwnerPinHandler.NewHandler(accessSvc, log),
		GetDayAppointments:    getDayAppointmentsHandler.NewHandler(bookingSvc, log),
		ChangeOwnerPin:        changeOwnerPinHandler.NewHandler(accessSvc, log),
	}

	opts := api.RouterOptions{
		MetricsPath: cfg.Metrics.Path,
		PinVerifier: accessSvc,
		Logger:      log,
	}
	if cfg.Metrics.Enabled {
		opts.Observer = metricsCollector
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      api.NewRouter(handlers, opts),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	case <-quit:
	}

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
