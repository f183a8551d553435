package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
)

type Config struct {
	App       AppConfig
	Storage   StorageConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Session   SessionConfig
	Email     EmailConfig
	Notify    NotifyConfig
	Admin     AdminConfig
	RateLimit RateLimitConfig
	Metrics   MetricsConfig
}

type AppConfig struct {
	Name           string
	Port           string
	Debug          bool
	LogPath        string
	AllowedOrigins []string
	// TrustProxy takes the client address from X-Forwarded-For/X-Real-IP.
	// Enable only behind a proxy that overwrites those headers.
	TrustProxy bool
}

type StorageConfig struct {
	Driver string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	MaxConns int32
	Migrate  bool
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type SessionConfig struct {
	Store           string
	ExpiryHours     int
	CleanupSchedule string
	CookieSecure    bool
}

func (c SessionConfig) TTL() time.Duration {
	return time.Duration(c.ExpiryHours) * time.Hour
}

type EmailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	To       string
}

type NotifyConfig struct {
	QueueSize      int
	TimeoutSeconds int
}

func (c NotifyConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

type AdminConfig struct {
	Username string
	Password string
	Email    string
}

type RateLimitConfig struct {
	RPS   float64
	Burst int
}

type MetricsConfig struct {
	Prefix string
}

// LoadConfig reads path (a .env file, optional) and the process environment.
// Environment variables win over file values.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "murray-moving")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("TRUST_PROXY", false)
	v.SetDefault("STORAGE_DRIVER", StorageMemory)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MIGRATE", true)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("SESSION_STORE", "")
	v.SetDefault("SESSION_EXPIRY_HOURS", 24)
	v.SetDefault("SESSION_CLEANUP_SCHEDULE", "@every 1h")
	v.SetDefault("SESSION_COOKIE_SECURE", false)
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("EMAIL_FROM", `"Murray Moving" <test@murraymoving.com>`)
	v.SetDefault("EMAIL_TO", "murraymovingcompany@gmail.com")
	v.SetDefault("NOTIFY_QUEUE_SIZE", 100)
	v.SetDefault("NOTIFY_TIMEOUT_SECONDS", 15)
	v.SetDefault("ADMIN_USERNAME", "admin")
	v.SetDefault("ADMIN_PASSWORD", "admin")
	v.SetDefault("ADMIN_EMAIL", "admin@movemasters.com")
	v.SetDefault("RATE_LIMIT_RPS", 1.0)
	v.SetDefault("RATE_LIMIT_BURST", 5)
	v.SetDefault("METRICS_PREFIX", "murray_moving")

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:           v.GetString("APP_NAME"),
			Port:           v.GetString("PORT"),
			Debug:          v.GetBool("DEBUG"),
			LogPath:        v.GetString("LOG_PATH"),
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
			TrustProxy:     v.GetBool("TRUST_PROXY"),
		},
		Storage: StorageConfig{
			Driver: strings.ToLower(v.GetString("STORAGE_DRIVER")),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASS"),
			SSLMode:  v.GetString("DB_SSLMODE"),
			MaxConns: v.GetInt32("DB_MAX_CONNS"),
			Migrate:  v.GetBool("DB_MIGRATE"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Session: SessionConfig{
			Store:           strings.ToLower(v.GetString("SESSION_STORE")),
			ExpiryHours:     v.GetInt("SESSION_EXPIRY_HOURS"),
			CleanupSchedule: v.GetString("SESSION_CLEANUP_SCHEDULE"),
			CookieSecure:    v.GetBool("SESSION_COOKIE_SECURE"),
		},
		Email: EmailConfig{
			Host:     v.GetString("SMTP_HOST"),
			Port:     v.GetInt("SMTP_PORT"),
			User:     v.GetString("SMTP_USER"),
			Password: v.GetString("SMTP_PASS"),
			From:     v.GetString("EMAIL_FROM"),
			To:       v.GetString("EMAIL_TO"),
		},
		Notify: NotifyConfig{
			QueueSize:      v.GetInt("NOTIFY_QUEUE_SIZE"),
			TimeoutSeconds: v.GetInt("NOTIFY_TIMEOUT_SECONDS"),
		},
		Admin: AdminConfig{
			Username: v.GetString("ADMIN_USERNAME"),
			Password: v.GetString("ADMIN_PASSWORD"),
			Email:    v.GetString("ADMIN_EMAIL"),
		},
		RateLimit: RateLimitConfig{
			RPS:   v.GetFloat64("RATE_LIMIT_RPS"),
			Burst: v.GetInt("RATE_LIMIT_BURST"),
		},
		Metrics: MetricsConfig{
			Prefix: v.GetString("METRICS_PREFIX"),
		},
	}

	// Sessions follow the record store unless configured separately
	if config.Session.Store == "" {
		config.Session.Store = config.Storage.Driver
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) Validate() error {
	if c.App.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	switch c.Storage.Driver {
	case StorageMemory, StoragePostgres:
	default:
		return fmt.Errorf("invalid STORAGE_DRIVER %q: want memory or postgres", c.Storage.Driver)
	}

	switch c.Session.Store {
	case StorageMemory, StoragePostgres, StorageRedis:
	default:
		return fmt.Errorf("invalid SESSION_STORE %q: want memory, postgres or redis", c.Session.Store)
	}

	if c.Session.Store == StoragePostgres && c.Storage.Driver != StoragePostgres {
		return fmt.Errorf("SESSION_STORE=postgres requires STORAGE_DRIVER=postgres")
	}

	if c.Storage.Driver == StoragePostgres && c.Database.Name == "" {
		return fmt.Errorf("DB_NAME is required for postgres storage")
	}

	if c.Session.ExpiryHours <= 0 {
		return fmt.Errorf("SESSION_EXPIRY_HOURS must be positive")
	}

	if c.Notify.QueueSize <= 0 {
		return fmt.Errorf("NOTIFY_QUEUE_SIZE must be positive")
	}

	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
