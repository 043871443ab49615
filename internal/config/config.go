package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/roombooker/booking-service/internal/domain"
)

// Config is the full service configuration loaded from config.toml.
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Logs          LogsConfig          `toml:"logs"`
	Storage       StorageConfig       `toml:"storage"`
	Metrics       MetricsConfig       `toml:"metrics"`
	Mailer        MailerConfig        `toml:"mailer"`
	Notifications NotificationsConfig `toml:"notifications"`
	Booking       BookingConfig       `toml:"booking"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// StorageConfig selects the persistence collaborator. The memory
// driver owns seed-initialized in-process state; postgres is the real
// backend.
type StorageConfig struct {
	Driver string `toml:"driver"` // "memory" or "postgres"

	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN builds the postgres connection string.
func (s StorageConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		s.Host, s.Port, s.User, s.Password, s.DBName, s.SSLMode)
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// MailerConfig selects the confirmation mail sender: "log" writes
// simulated emails to the service log, "http" posts them to an external
// mailer service.
type MailerConfig struct {
	Mode    string `toml:"mode"`
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

type NotificationsConfig struct {
	TTLSeconds int `toml:"ttl_seconds"`
}

// TTL returns the notification auto-dismiss delay.
func (n NotificationsConfig) TTL() time.Duration {
	return time.Duration(n.TTLSeconds) * time.Second
}

// BookingConfig carries the scheduling-window policy.
type BookingConfig struct {
	WorkDayStartHour   int `toml:"work_day_start_hour"`
	WorkDayEndHour     int `toml:"work_day_end_hour"`
	SlotStepMinutes    int `toml:"slot_step_minutes"`
	MaxDurationMinutes int `toml:"max_duration_minutes"`
}

// SlotWindow converts the booking section into the domain window.
func (b BookingConfig) SlotWindow() domain.SlotWindow {
	return domain.SlotWindow{
		StartHour:   b.WorkDayStartHour,
		EndHour:     b.WorkDayEndHour,
		StepMinutes: b.SlotStepMinutes,
	}
}

// MaxDuration returns the booking duration cap.
func (b BookingConfig) MaxDuration() time.Duration {
	return time.Duration(b.MaxDurationMinutes) * time.Minute
}

// Load reads the TOML file at path, applies defaults and validates.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Logs: LogsConfig{Level: "info"},
		Storage: StorageConfig{
			Driver:          "memory",
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "booking-service",
		},
		Mailer: MailerConfig{
			Mode:    "log",
			Timeout: 5,
		},
		Notifications: NotificationsConfig{TTLSeconds: 3},
		Booking: BookingConfig{
			WorkDayStartHour:   domain.DefaultWorkDayStartHour,
			WorkDayEndHour:     domain.DefaultWorkDayEndHour,
			SlotStepMinutes:    domain.DefaultSlotStepMinutes,
			MaxDurationMinutes: domain.DefaultMaxBookingDurationMinutes,
		},
	}
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case "memory":
	case "postgres":
		if c.Storage.Host == "" || c.Storage.DBName == "" {
			return fmt.Errorf("config: postgres driver requires host and dbname")
		}
	default:
		return fmt.Errorf("config: unknown storage driver %q", c.Storage.Driver)
	}

	switch c.Mailer.Mode {
	case "log":
	case "http":
		if c.Mailer.URL == "" {
			return fmt.Errorf("config: http mailer requires url")
		}
	default:
		return fmt.Errorf("config: unknown mailer mode %q", c.Mailer.Mode)
	}

	if !c.Booking.SlotWindow().IsValid() {
		return fmt.Errorf("config: invalid booking window %d:00-%d:00 step %dm",
			c.Booking.WorkDayStartHour, c.Booking.WorkDayEndHour, c.Booking.SlotStepMinutes)
	}
	if c.Booking.MaxDurationMinutes <= 0 {
		return fmt.Errorf("config: max_duration_minutes must be positive")
	}
	return nil
}
