package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Logs    LogsConfig    `toml:"logs"`
	Metrics MetricsConfig `toml:"metrics"`
	Redis   RedisConfig   `toml:"redis"`
	Booking BookingConfig `toml:"booking"`
	Admin   AdminConfig   `toml:"admin"`
	MSGraph MSGraphConfig `toml:"msgraph"`
	Notion  NotionConfig  `toml:"notion"`
	Resend  ResendConfig  `toml:"resend"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int    `toml:"http_port"`
	BaseURL         string `toml:"base_url"` // публичный URL для ссылок в письмах
	ReadTimeout     int    `toml:"read_timeout"`
	WriteTimeout    int    `toml:"write_timeout"`
	IdleTimeout     int    `toml:"idle_timeout"`
	ShutdownTimeout int    `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// RedisConfig настройки key-value хранилища (конфигурация + rate limiter)
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// BookingConfig бизнес-настройки бронирования
type BookingConfig struct {
	Timezone               string `toml:"timezone"` // IANA, напр. "Europe/Berlin"
	DefaultDurationMinutes int    `toml:"default_duration_minutes"`
}

// AdminConfig shared-secret токены админки и крона
type AdminConfig struct {
	Token      string `toml:"token"`
	CronSecret string `toml:"cron_secret"`
}

// MSGraphConfig доступ к Microsoft Graph (календарь + Teams).
// Пустые значения переключают сервис в mock-режим календаря.
type MSGraphConfig struct {
	TenantID     string `toml:"tenant_id"`
	ClientID     string `toml:"client_id"`
	ClientSecret string `toml:"client_secret"`
	UserID       string `toml:"user_id"` // почтовый ящик, чей календарь бронируется
	Timeout      int    `toml:"timeout"` // секунды
}

// Configured сообщает, заданы ли все учетные данные Graph
func (c *MSGraphConfig) Configured() bool {
	return c.TenantID != "" && c.ClientID != "" && c.ClientSecret != "" && c.UserID != ""
}

// NotionConfig доступ к базе бронирований
type NotionConfig struct {
	APIKey     string `toml:"api_key"`
	DatabaseID string `toml:"database_id"`
	Timeout    int    `toml:"timeout"` // секунды
}

// ResendConfig доступ к почтовому провайдеру
type ResendConfig struct {
	APIKey        string `toml:"api_key"`
	FromEmail     string `toml:"from_email"`
	FromName      string `toml:"from_name"`
	OperatorEmail string `toml:"operator_email"` // получатель резервных копий CV
	Timeout       int    `toml:"timeout"`        // секунды
}

// Load читает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 30
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10
	}
	if cfg.Logs.Level == "" {
		cfg.Logs.Level = "info"
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "tkm-booking-service"
	}
	if cfg.Booking.Timezone == "" {
		cfg.Booking.Timezone = "Europe/Berlin"
	}
	if cfg.Booking.DefaultDurationMinutes == 0 {
		cfg.Booking.DefaultDurationMinutes = 30
	}
	if cfg.MSGraph.Timeout == 0 {
		cfg.MSGraph.Timeout = 30
	}
	if cfg.Notion.Timeout == 0 {
		cfg.Notion.Timeout = 30
	}
	if cfg.Resend.Timeout == 0 {
		cfg.Resend.Timeout = 30
	}
}

func validate(cfg *Config) error {
	if cfg.Admin.Token == "" {
		return fmt.Errorf("config: admin.token is required")
	}
	if cfg.Admin.CronSecret == "" {
		return fmt.Errorf("config: admin.cron_secret is required")
	}
	if cfg.Notion.APIKey == "" || cfg.Notion.DatabaseID == "" {
		return fmt.Errorf("config: notion.api_key and notion.database_id are required")
	}
	if cfg.Resend.APIKey == "" || cfg.Resend.FromEmail == "" {
		return fmt.Errorf("config: resend.api_key and resend.from_email are required")
	}
	return nil
}
