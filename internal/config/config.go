package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

var (
	// ErrInvalidConfig возвращается при некорректной конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config корневая конфигурация сервиса
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	Backend      BackendConfig      `toml:"backend"`
	Availability AvailabilityConfig `toml:"availability"`
	Sessions     SessionsConfig     `toml:"sessions"`
	Redis        RedisConfig        `toml:"redis"`
	Auth         AuthConfig         `toml:"auth"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
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

// BackendConfig настройки бэкенда эскейп-рума
type BackendConfig struct {
	URL              string `toml:"url"`
	Timeout          int    `toml:"timeout"` // секунды
	CredentialHeader string `toml:"credential_header"`
	Credential       string `toml:"credential"`
	UploadBase       string `toml:"upload_base"` // база для относительных имен картинок тем
}

type AvailabilityConfig struct {
	MaxParallel int    `toml:"max_parallel"`
	TimeZone    string `toml:"time_zone"`
}

type SessionsConfig struct {
	TTLMinutes           int `toml:"ttl_minutes"`
	SweepIntervalSeconds int `toml:"sweep_interval_seconds"`
}

type RedisConfig struct {
	Enabled         bool   `toml:"enabled"`
	Addr            string `toml:"addr"`
	Password        string `toml:"password"`
	DB              int    `toml:"db"`
	ThemeTTLSeconds int    `toml:"theme_ttl_seconds"`
}

type AuthConfig struct {
	JWTSecret string `toml:"jwt_secret"`
}

// Load читает TOML-файл, затем применяет переопределения из .env и окружения.
// Секреты (учетные данные бэкенда, ключ JWT, пароль Redis) принято держать в окружении.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	// .env не обязателен
	_ = godotenv.Load()

	if err := cfg.applyEnv(); err != nil {
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
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "keystone_front",
		},
		Backend: BackendConfig{
			Timeout:          5,
			CredentialHeader: "X-ADMIN-KEY",
		},
		Availability: AvailabilityConfig{
			MaxParallel: 8,
			TimeZone:    "Asia/Seoul",
		},
		Sessions: SessionsConfig{
			TTLMinutes:           30,
			SweepIntervalSeconds: 60,
		},
		Redis: RedisConfig{
			Addr:            "localhost:6379",
			ThemeTTLSeconds: 300,
		},
	}
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("BACKEND_URL"); v != "" {
		c.Backend.URL = v
	}
	if v := os.Getenv("BACKEND_CREDENTIAL"); v != "" {
		c.Backend.Credential = v
	}
	if v := os.Getenv("AUTH_JWT_SECRET"); v != "" {
		c.Auth.JWTSecret = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
	if v := os.Getenv("HTTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: HTTP_PORT=%q is not a number", ErrInvalidConfig, v)
		}
		c.Server.HTTPPort = port
	}
	return nil
}

// Validate проверяет обязательные поля
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port out of range", ErrInvalidConfig)
	}
	if c.Backend.URL == "" {
		return fmt.Errorf("%w: backend.url is required", ErrInvalidConfig)
	}
	if c.Backend.Timeout <= 0 {
		return fmt.Errorf("%w: backend.timeout must be positive", ErrInvalidConfig)
	}
	if c.Availability.MaxParallel <= 0 {
		return fmt.Errorf("%w: availability.max_parallel must be positive", ErrInvalidConfig)
	}
	if c.Sessions.TTLMinutes <= 0 {
		return fmt.Errorf("%w: sessions.ttl_minutes must be positive", ErrInvalidConfig)
	}
	if c.Sessions.SweepIntervalSeconds <= 0 {
		return fmt.Errorf("%w: sessions.sweep_interval_seconds must be positive", ErrInvalidConfig)
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("%w: auth.jwt_secret is required (or AUTH_JWT_SECRET)", ErrInvalidConfig)
	}
	return nil
}
