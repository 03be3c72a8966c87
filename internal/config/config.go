package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv string

	HTTPAddr    string
	DatabaseURL string

	// RabbitMQ
	RabbitURL      string
	RabbitExchange string

	// Redis & caching
	RedisURL        string
	CacheTTLDetails time.Duration

	// Rate limiting
	RLEnabled bool
	RLLimit   int
	RLWindow  time.Duration

	// Check-in notifier
	NotifierDriver string // "smtp" or "fake"
	NotifyTimeout  time.Duration
	SMTPHost       string
	SMTPPort       int
	SMTPUser       string
	SMTPPass       string
	SMTPFrom       string
	SMTPInsecure   bool

	// Demo admin bootstrap
	SeedAdminEnabled bool
	SeedAdminID      string
	SeedAdminEmail   string
	SeedAdminName    string
	SeedAdminPass    string

	LogLevel  string
	LogFormat string

	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.AppEnv = getEnv("APP_ENV", "dev")
	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":8080")
	cfg.DatabaseURL = getEnv("DATABASE_URL", "")

	cfg.RabbitURL = getEnv("RABBIT_URL", "")
	cfg.RabbitExchange = getEnv("RABBIT_EXCHANGE", "invite.events")

	cfg.RedisURL = getEnv("REDIS_URL", "")
	cfg.CacheTTLDetails = getDuration("CACHE_TTL_DETAILS", 5*time.Minute)

	cfg.RLEnabled = getEnv("RL_ENABLED", "true") == "true"
	cfg.RLLimit = getIntEnv("RL_IP_LIMIT", 100)
	cfg.RLWindow = getDuration("RL_IP_WINDOW", 1*time.Minute)

	cfg.NotifierDriver = getEnv("NOTIFIER_DRIVER", "fake")
	cfg.NotifyTimeout = getDuration("NOTIFY_TIMEOUT", 10*time.Second)
	cfg.SMTPHost = getEnv("SMTP_HOST", "")
	cfg.SMTPPort = getIntEnv("SMTP_PORT", 587)
	cfg.SMTPUser = getEnv("SMTP_USER", "")
	cfg.SMTPPass = getEnv("SMTP_PASS", "")
	cfg.SMTPFrom = getEnv("SMTP_FROM", "")
	cfg.SMTPInsecure = getEnv("SMTP_INSECURE", "false") == "true"

	cfg.SeedAdminEnabled = getEnv("SEED_ADMIN_ENABLED", "true") == "true"
	cfg.SeedAdminID = getEnv("SEED_ADMIN_ID", "demo-admin")
	cfg.SeedAdminEmail = getEnv("SEED_ADMIN_EMAIL", "demo@invite.local")
	cfg.SeedAdminName = getEnv("SEED_ADMIN_NAME", "demo")
	cfg.SeedAdminPass = getEnv("SEED_ADMIN_PASS", "demo123")

	cfg.LogLevel = getEnv("LOG_LEVEL", "info")
	cfg.LogFormat = getEnv("LOG_FORMAT", "console")

	cfg.HTTPReadTimeout = getDuration("HTTP_READ_TIMEOUT", 10*time.Second)
	cfg.HTTPWriteTimeout = getDuration("HTTP_WRITE_TIMEOUT", 20*time.Second)
	cfg.HTTPIdleTimeout = getDuration("HTTP_IDLE_TIMEOUT", 60*time.Second)

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("missing DATABASE_URL")
	}
	if cfg.NotifierDriver != "smtp" && cfg.NotifierDriver != "fake" {
		return nil, fmt.Errorf("NOTIFIER_DRIVER must be smtp or fake, got %q", cfg.NotifierDriver)
	}
	if cfg.NotifierDriver == "smtp" && cfg.SMTPHost == "" {
		return nil, fmt.Errorf("missing SMTP_HOST (required when NOTIFIER_DRIVER=smtp)")
	}
	// Rabbit: optional in dev, required otherwise
	if cfg.AppEnv != "dev" && cfg.RabbitURL == "" {
		return nil, fmt.Errorf("missing RABBIT_URL (required when APP_ENV != dev)")
	}

	return cfg, nil
}

func getEnv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func getIntEnv(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}
