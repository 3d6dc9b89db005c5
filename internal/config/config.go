package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config конфигурация сервиса
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Database   DatabaseConfig   `toml:"database"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Scheduling SchedulingConfig `toml:"scheduling"`
	Mail       MailConfig       `toml:"mail"`
	CORS       CORSConfig       `toml:"cors"`
	RateLimit  RateLimitConfig  `toml:"rate_limit"`
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
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type SchedulingConfig struct {
	Timezone    string `toml:"timezone"`
	HorizonDays int    `toml:"horizon_days"`
	LoadOnStart bool   `toml:"load_on_start"`
	LoadTimeout int    `toml:"load_timeout"` // секунды
}

// Location часовой пояс, в котором считаются даты и слоты
func (c SchedulingConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

type MailConfig struct {
	APIURL           string `toml:"api_url"`
	APIKey           string `toml:"api_key"`
	AdminEmail       string `toml:"admin_email"`
	FromDemo         string `toml:"from_demo"`
	FromContact      string `toml:"from_contact"`
	FromRegistration string `toml:"from_registration"`
	Timeout          int    `toml:"timeout"` // секунды
}

type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
	MaxAge         int      `toml:"max_age"` // секунды
}

type RateLimitConfig struct {
	Enabled        bool `toml:"enabled"`
	RequestsPerMin int  `toml:"requests_per_minute"`
}

// Переменные окружения, которые перекрывают значения из файла
// Секреты не должны храниться в config.toml
const (
	envDatabasePassword = "DATABASE_PASSWORD"
	envDatabaseHost     = "DATABASE_HOST"
	envDatabasePort     = "DATABASE_PORT"
	envMailAPIKey       = "RESEND_API_KEY"
	envAdminEmail       = "ADMIN_EMAIL"
	envHTTPPort         = "HTTP_PORT"
)

// Load читает TOML-файл, подмешивает .env (если есть) и переменные окружения
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	// .env необязателен
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default значения по умолчанию
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
			ServiceName: "edu_booking",
		},
		Scheduling: SchedulingConfig{
			Timezone:    "Africa/Johannesburg",
			HorizonDays: 30,
			LoadOnStart: true,
			LoadTimeout: 5,
		},
		Mail: MailConfig{
			APIURL:           "https://api.resend.com",
			FromDemo:         "EduSchools Demo <onboarding@resend.dev>",
			FromContact:      "EduSchools Contact <onboarding@resend.dev>",
			FromRegistration: "EduSchools Registration <onboarding@resend.dev>",
			Timeout:          10,
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
			MaxAge:         300,
		},
		RateLimit: RateLimitConfig{
			Enabled:        true,
			RequestsPerMin: 20,
		},
	}
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(envDatabasePassword); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv(envDatabaseHost); v != "" {
		c.Database.Host = v
	}
	if v := os.Getenv(envDatabasePort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s=%q: %w", envDatabasePort, v, err)
		}
		c.Database.Port = port
	}
	if v := os.Getenv(envMailAPIKey); v != "" {
		c.Mail.APIKey = v
	}
	if v := os.Getenv(envAdminEmail); v != "" {
		c.Mail.AdminEmail = v
	}
	if v := os.Getenv(envHTTPPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s=%q: %w", envHTTPPort, v, err)
		}
		c.Server.HTTPPort = port
	}
	return nil
}

// Validate проверяет обязательные поля
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 {
		return errors.New("config: server.http_port must be positive")
	}
	if c.Database.DBName == "" {
		return errors.New("config: database.dbname is required")
	}
	if c.Scheduling.HorizonDays <= 0 {
		return errors.New("config: scheduling.horizon_days must be positive")
	}
	if _, err := c.Scheduling.Location(); err != nil {
		return fmt.Errorf("config: invalid scheduling.timezone %q: %w", c.Scheduling.Timezone, err)
	}
	if c.Mail.AdminEmail == "" {
		return errors.New("config: mail.admin_email is required")
	}
	if c.Mail.APIKey == "" {
		return fmt.Errorf("config: mail.api_key is required (or set %s)", envMailAPIKey)
	}
	return nil
}
