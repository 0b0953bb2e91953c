package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings" // For LogLevel normalization
	"time"

	"github.com/joho/godotenv"
)

// ErrMissingEnv is wrapped by Load when a required variable is absent.
var ErrMissingEnv = errors.New("required environment variable is not set")

// State backends understood by STATE_BACKEND.
const (
	StateBackendMemory   = "memory"
	StateBackendPostgres = "postgres"
	StateBackendRedis    = "redis"
)

const (
	defaultEndpoint       = "https://practicum.yandex.ru/api/user_api/homework_statuses/"
	defaultPollSchedule   = "@every 600s"
	defaultRequestTimeout = 30 * time.Second
)

// AppConfig holds all configuration for the application.
// It is built once at startup and never mutated afterwards.
type AppConfig struct {
	PracticumToken    string
	PracticumEndpoint string
	TelegramToken     string
	TelegramChatID    int64
	TelegramAPIURL    string        // empty means the public Bot API
	PollSchedule      string        // cron spec, e.g. "@every 600s"
	RequestTimeout    time.Duration // 0 disables the timeout
	NotifyOnError     bool
	LogLevel          string
	Environment       string
	LogFile           string
	StateBackend      string
	DatabaseURL       string
	RedisURL          string
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{}
	var err error

	cfg.PracticumToken = os.Getenv("PRACTICUM_TOKEN")
	if cfg.PracticumToken == "" {
		return nil, fmt.Errorf("PRACTICUM_TOKEN: %w", ErrMissingEnv)
	}

	cfg.TelegramToken = os.Getenv("TELEGRAM_TOKEN")
	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_TOKEN: %w", ErrMissingEnv)
	}

	chatIDStr := os.Getenv("TELEGRAM_CHAT_ID")
	if chatIDStr == "" {
		return nil, fmt.Errorf("TELEGRAM_CHAT_ID: %w", ErrMissingEnv)
	}
	cfg.TelegramChatID, err = strconv.ParseInt(chatIDStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
	}

	cfg.TelegramAPIURL = os.Getenv("TELEGRAM_API_URL")

	cfg.PracticumEndpoint = os.Getenv("PRACTICUM_ENDPOINT")
	if cfg.PracticumEndpoint == "" {
		cfg.PracticumEndpoint = defaultEndpoint
	}

	cfg.PollSchedule = os.Getenv("POLL_SCHEDULE")
	if cfg.PollSchedule == "" {
		cfg.PollSchedule = defaultPollSchedule // Default: every 10 minutes
	}

	cfg.RequestTimeout = defaultRequestTimeout
	if raw := os.Getenv("REQUEST_TIMEOUT"); raw != "" {
		cfg.RequestTimeout, err = time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid REQUEST_TIMEOUT: %w", err)
		}
		if cfg.RequestTimeout < 0 {
			return nil, errors.New("invalid REQUEST_TIMEOUT: must not be negative")
		}
	}

	cfg.NotifyOnError = true
	if raw := os.Getenv("NOTIFY_ON_ERROR"); raw != "" {
		cfg.NotifyOnError, err = strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid NOTIFY_ON_ERROR: %w", err)
		}
	}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	cfg.LogFile = os.Getenv("LOG_FILE")

	cfg.StateBackend = strings.ToLower(os.Getenv("STATE_BACKEND"))
	if cfg.StateBackend == "" {
		cfg.StateBackend = StateBackendMemory
	}

	switch cfg.StateBackend {
	case StateBackendMemory:
	case StateBackendPostgres:
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL: %w", ErrMissingEnv)
		}
	case StateBackendRedis:
		cfg.RedisURL = os.Getenv("REDIS_URL")
		if cfg.RedisURL == "" {
			return nil, fmt.Errorf("REDIS_URL: %w", ErrMissingEnv)
		}
	default:
		return nil, fmt.Errorf("invalid STATE_BACKEND %q", cfg.StateBackend)
	}

	return cfg, nil
}
