package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-ChefReservationService/pkg/retry"
)

// Config конфигурация сервиса
type Config struct {
	Server         ServerConfig    `toml:"server"`
	Database       DatabaseConfig  `toml:"database"`
	Redis          RedisConfig     `toml:"redis"`
	Logs           LogsConfig      `toml:"logs"`
	Metrics        MetricsConfig   `toml:"metrics"`
	ChefCatalog    ServiceConfig   `toml:"chef_catalog"`
	PaymentService ServiceConfig   `toml:"payment_service"`
	Booking        BookingConfig   `toml:"booking"`
	RateLimit      RateLimitConfig `toml:"rate_limit"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
	AutoMigrate     bool   `toml:"auto_migrate"`
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// URL строка подключения для golang-migrate
func (c DatabaseConfig) URL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     c.DBName,
		RawQuery: "sslmode=" + c.SSLMode,
	}
	return u.String()
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	Channel  string `toml:"channel"`
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// ServiceConfig адрес внешнего HTTP-сервиса
type ServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

type BookingConfig struct {
	DepositPercent      int    `toml:"deposit_percent"`
	RefundPolicy        string `toml:"refund_policy"`
	RetryAttempts       uint   `toml:"retry_attempts"`
	RetryInitialMs      int    `toml:"retry_initial_ms"`
	RetryMaxMs          int    `toml:"retry_max_ms"`
	StartWorkerInterval int    `toml:"start_worker_interval"` // секунды, 0 - воркер выключен
	StartWorkerBatch    uint64 `toml:"start_worker_batch"`
}

// RetryBudget бюджет повторов для оптимистичных конфликтов
func (c BookingConfig) RetryBudget() retry.Budget {
	return retry.Budget{
		MaxAttempts:     c.RetryAttempts,
		InitialInterval: time.Duration(c.RetryInitialMs) * time.Millisecond,
		MaxInterval:     time.Duration(c.RetryMaxMs) * time.Millisecond,
	}
}

type RateLimitConfig struct {
	Enabled bool    `toml:"enabled"`
	RPS     float64 `toml:"rps"`
	Burst   int     `toml:"burst"`
}

// Load читает TOML-файл, затем .env и переменные окружения.
// Переменные окружения имеют приоритет над файлом
func Load(path string) (*Config, error) {
	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
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
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Redis: RedisConfig{
			Addr:    "localhost:6379",
			Channel: "reservation-events",
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "chef_reservation_service",
		},
		ChefCatalog:    ServiceConfig{Timeout: 5},
		PaymentService: ServiceConfig{Timeout: 10},
		Booking: BookingConfig{
			DepositPercent:      30,
			RefundPolicy:        "full",
			RetryAttempts:       3,
			RetryInitialMs:      50,
			RetryMaxMs:          500,
			StartWorkerInterval: 60,
			StartWorkerBatch:    100,
		},
		RateLimit: RateLimitConfig{
			RPS:   10,
			Burst: 20,
		},
	}
}

func applyEnv(cfg *Config) error {
	setString(&cfg.Database.Host, "DB_HOST")
	setString(&cfg.Database.User, "DB_USER")
	setString(&cfg.Database.Password, "DB_PASSWORD")
	setString(&cfg.Database.DBName, "DB_NAME")
	setString(&cfg.Redis.Addr, "REDIS_ADDR")
	setString(&cfg.Redis.Password, "REDIS_PASSWORD")
	setString(&cfg.ChefCatalog.URL, "CHEF_CATALOG_URL")
	setString(&cfg.PaymentService.URL, "PAYMENT_SERVICE_URL")
	setString(&cfg.Logs.Level, "LOG_LEVEL")

	if err := setInt(&cfg.Server.HTTPPort, "HTTP_PORT"); err != nil {
		return err
	}
	if err := setInt(&cfg.Database.Port, "DB_PORT"); err != nil {
		return err
	}
	return nil
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("config: %s must be an integer: %w", key, err)
	}
	*dst = n
	return nil
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("config: invalid server.http_port %d", c.Server.HTTPPort)
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return errors.New("config: database.host and database.dbname are required")
	}
	if c.ChefCatalog.URL == "" {
		return errors.New("config: chef_catalog.url is required")
	}
	if c.PaymentService.URL == "" {
		return errors.New("config: payment_service.url is required")
	}
	if c.Booking.DepositPercent < 0 || c.Booking.DepositPercent > 100 {
		return fmt.Errorf("config: booking.deposit_percent must be in [0, 100], got %d", c.Booking.DepositPercent)
	}
	if c.RateLimit.Enabled && (c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0) {
		return errors.New("config: rate_limit.rps and rate_limit.burst must be positive")
	}
	return nil
}
