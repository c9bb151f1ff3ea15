package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	CMS       CMSConfig       `toml:"cms"`
	Dashboard DashboardConfig `toml:"dashboard"`
	Session   SessionConfig   `toml:"session"`
	Redis     RedisConfig     `toml:"redis"`
	Database  DatabaseConfig  `toml:"database"`
	Scheduler SchedulerConfig `toml:"scheduler"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// CMSConfig параметры headless CMS (источник бронирований и компаньонов)
type CMSConfig struct {
	URL      string `toml:"url"`
	APIToken string `toml:"api_token"`
	Timeout  int    `toml:"timeout"` // секунды
	Locale   string `toml:"locale"`
}

type DashboardConfig struct {
	PageSize          int    `toml:"page_size"`
	NotificationTTLMs int    `toml:"notification_ttl_ms"`
	CurrencySymbol    string `toml:"currency_symbol"`
	CurrencyLocale    string `toml:"currency_locale"`
}

type SessionConfig struct {
	TTLMinutes   int    `toml:"ttl_minutes"`
	CookieName   string `toml:"cookie_name"`
	CookieSecure bool   `toml:"cookie_secure"`
}

type RedisConfig struct {
	Address   string `toml:"address"`
	Password  string `toml:"password"`
	DB        int    `toml:"db"`
	PoolSize  int    `toml:"pool_size"`
	KeyPrefix string `toml:"key_prefix"`
}

// DatabaseConfig Postgres для журнала смены статусов
type DatabaseConfig struct {
	Enabled         bool   `toml:"enabled"`
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
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type SchedulerConfig struct {
	ResyncSpec string `toml:"resync_spec"` // пустая строка - фоновая синхронизация выключена
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

var (
	// ErrInvalidConfig возвращается при некорректных значениях конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Load загружает конфигурацию из toml файла.
// Затем подгружает .env (если есть) и применяет переопределения из окружения.
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg.applyEnv()

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
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		CMS: CMSConfig{
			URL:     "http://localhost:1337",
			Timeout: 10,
			Locale:  "pl",
		},
		Dashboard: DashboardConfig{
			PageSize:          5,
			NotificationTTLMs: 3000,
			CurrencySymbol:    "R$",
			CurrencyLocale:    "pt-BR",
		},
		Session: SessionConfig{
			TTLMinutes: 720,
			CookieName: "admin_session",
		},
		Redis: RedisConfig{
			Address:   "localhost:6379",
			PoolSize:  10,
			KeyPrefix: "companion-admin",
		},
		Database: DatabaseConfig{
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Scheduler: SchedulerConfig{
			ResyncSpec: "@every 1m",
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "companion_admin",
		},
	}
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if strings.TrimSpace(c.CMS.URL) == "" {
		return fmt.Errorf("%w: cms.url is required", ErrInvalidConfig)
	}
	if c.Dashboard.PageSize <= 0 {
		return fmt.Errorf("%w: dashboard.page_size must be positive", ErrInvalidConfig)
	}
	if c.Dashboard.NotificationTTLMs <= 0 {
		return fmt.Errorf("%w: dashboard.notification_ttl_ms must be positive", ErrInvalidConfig)
	}
	if c.Session.TTLMinutes <= 0 {
		return fmt.Errorf("%w: session.ttl_minutes must be positive", ErrInvalidConfig)
	}
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port out of range", ErrInvalidConfig)
	}
	return nil
}

// NotificationTTL время жизни уведомления
func (c *Config) NotificationTTL() time.Duration {
	return time.Duration(c.Dashboard.NotificationTTLMs) * time.Millisecond
}

// SessionTTL время жизни сессии администратора
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.Session.TTLMinutes) * time.Minute
}

func (c *Config) applyEnv() {
	if v := os.Getenv("CMS_API_URL"); v != "" {
		c.CMS.URL = v
	}
	if v := os.Getenv("CMS_API_TOKEN"); v != "" {
		c.CMS.APIToken = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
	c.CMS.URL = strings.TrimRight(c.CMS.URL, "/")
}
