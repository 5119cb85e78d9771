package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"

	"github.com/m04kA/SMC-BarberShop/internal/domain"
)

// EnvPrefix префикс переменных окружения, переопределяющих файл (BARBER_DATABASE_PASSWORD и т.п.)
const EnvPrefix = "BARBER"

var (
	// ErrLoadConfig возвращается, если файл конфигурации не удалось прочитать
	ErrLoadConfig = errors.New("config: failed to load")

	// ErrInvalidConfig возвращается при недопустимых значениях
	ErrInvalidConfig = errors.New("config: invalid value")
)

// Config конфигурация приложения
type Config struct {
	Server   ServerConfig    `toml:"server"`
	Database DatabaseConfig  `toml:"database"`
	Logs     LogsConfig      `toml:"logs"`
	Metrics  MetricsConfig   `toml:"metrics"`
	Shop     ShopConfig      `toml:"shop"`
	Services []ServiceConfig `toml:"services" ignored:"true"`
}

// ServerConfig параметры HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port" split_words:"true"`
	ReadTimeout     int `toml:"read_timeout" split_words:"true"`
	WriteTimeout    int `toml:"write_timeout" split_words:"true"`
	IdleTimeout     int `toml:"idle_timeout" split_words:"true"`
	ShutdownTimeout int `toml:"shutdown_timeout" split_words:"true"`
}

// DatabaseConfig параметры подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns" split_words:"true"`
	MaxIdleConns    int    `toml:"max_idle_conns" split_words:"true"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" split_words:"true"` // секунды
	AutoMigrate     bool   `toml:"auto_migrate" split_words:"true"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig параметры логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"` // пусто - только stdout
}

// MetricsConfig параметры Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name" split_words:"true"`
}

// ShopConfig расписание и политика записи
type ShopConfig struct {
	OpenHour           int    `toml:"open_hour" split_words:"true"`
	CloseHour          int    `toml:"close_hour" split_words:"true"`
	IntervalMinutes    int    `toml:"interval_minutes" split_words:"true"`
	LeadTimeMinutes    int    `toml:"lead_time_minutes" split_words:"true"`
	AdvanceBookingDays int    `toml:"advance_booking_days" split_words:"true"`
	UTCOffsetHours     int    `toml:"utc_offset_hours" envconfig:"UTC_OFFSET_HOURS"`
	DefaultPin         string `toml:"default_pin" split_words:"true"`
}

// ServiceConfig услуга каталога
type ServiceConfig struct {
	Name            string `toml:"name"`
	DurationMinutes int    `toml:"duration_minutes"`
	Price           int64  `toml:"price"`
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "barbershop",
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "barbershop",
		},
		Shop: ShopConfig{
			OpenHour:           domain.DefaultOpenHour,
			CloseHour:          domain.DefaultCloseHour,
			IntervalMinutes:    domain.DefaultIntervalMinutes,
			LeadTimeMinutes:    domain.DefaultLeadTimeMinutes,
			AdvanceBookingDays: domain.DefaultAdvanceBookingDays,
			UTCOffsetHours:     domain.DefaultUTCOffsetHours,
			DefaultPin:         domain.DefaultPin,
		},
	}
}

// Load читает TOML файл поверх значений по умолчанию, затем применяет переменные окружения
// Пустой path означает "только значения по умолчанию и окружение"
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("%w: decode %s: %v", ErrLoadConfig, path, err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("%w: environment overrides: %v", ErrLoadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет согласованность значений
func (c *Config) Validate() error {
	s := c.Shop

	if s.OpenHour < 0 || s.CloseHour > 24 || s.OpenHour >= s.CloseHour {
		return fmt.Errorf("%w: shop hours %d..%d", ErrInvalidConfig, s.OpenHour, s.CloseHour)
	}
	if s.IntervalMinutes < domain.MinIntervalMinutes || s.IntervalMinutes > domain.MaxIntervalMinutes {
		return fmt.Errorf("%w: interval_minutes %d not in %d..%d",
			ErrInvalidConfig, s.IntervalMinutes, domain.MinIntervalMinutes, domain.MaxIntervalMinutes)
	}
	if 60%s.IntervalMinutes != 0 && s.IntervalMinutes%60 != 0 {
		return fmt.Errorf("%w: interval_minutes %d must divide an hour", ErrInvalidConfig, s.IntervalMinutes)
	}
	if s.LeadTimeMinutes < 0 || s.LeadTimeMinutes > domain.MaxLeadTimeMinutes {
		return fmt.Errorf("%w: lead_time_minutes %d", ErrInvalidConfig, s.LeadTimeMinutes)
	}
	if s.AdvanceBookingDays < 0 || s.AdvanceBookingDays > domain.MaxAdvanceDays {
		return fmt.Errorf("%w: advance_booking_days %d", ErrInvalidConfig, s.AdvanceBookingDays)
	}
	if s.UTCOffsetHours < -12 || s.UTCOffsetHours > 14 {
		return fmt.Errorf("%w: utc_offset_hours %d", ErrInvalidConfig, s.UTCOffsetHours)
	}
	if !isPin(s.DefaultPin) {
		return fmt.Errorf("%w: default_pin must be %d digits", ErrInvalidConfig, domain.PinLength)
	}

	seen := make(map[string]struct{}, len(c.Services))
	for _, svc := range c.Services {
		if svc.Name == "" {
			return fmt.Errorf("%w: service without name", ErrInvalidConfig)
		}
		if _, dup := seen[svc.Name]; dup {
			return fmt.Errorf("%w: duplicate service %q", ErrInvalidConfig, svc.Name)
		}
		seen[svc.Name] = struct{}{}
		if svc.DurationMinutes <= 0 {
			return fmt.Errorf("%w: service %q duration must be positive", ErrInvalidConfig, svc.Name)
		}
		if svc.DurationMinutes > (s.CloseHour-s.OpenHour)*60 {
			return fmt.Errorf("%w: service %q does not fit in the working day", ErrInvalidConfig, svc.Name)
		}
		if svc.Price < 0 {
			return fmt.Errorf("%w: service %q price must not be negative", ErrInvalidConfig, svc.Name)
		}
	}

	return nil
}

// Catalog строит каталог услуг; без [[services]] используется стандартный
func (c *Config) Catalog() *domain.Catalog {
	if len(c.Services) == 0 {
		return domain.DefaultCatalog()
	}

	services := make([]domain.Service, 0, len(c.Services))
	for _, svc := range c.Services {
		services = append(services, domain.Service{
			Name:            svc.Name,
			DurationMinutes: svc.DurationMinutes,
			Price:           svc.Price,
		})
	}
	return domain.NewCatalog(services...)
}

// ShopHours сетка и политика записи для движка доступности
func (c *Config) ShopHours() domain.ShopHours {
	return domain.ShopHours{
		OpenHour:           c.Shop.OpenHour,
		CloseHour:          c.Shop.CloseHour,
		IntervalMinutes:    c.Shop.IntervalMinutes,
		LeadTimeMinutes:    c.Shop.LeadTimeMinutes,
		AdvanceBookingDays: c.Shop.AdvanceBookingDays,
	}
}

func isPin(s string) bool {
	if len(s) != domain.PinLength {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
