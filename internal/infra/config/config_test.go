package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("PRACTICUM_TOKEN", "practicum")
	t.Setenv("TELEGRAM_TOKEN", "telegram")
	t.Setenv("TELEGRAM_CHAT_ID", "123456")
	for _, key := range []string{
		"PRACTICUM_ENDPOINT", "TELEGRAM_API_URL", "POLL_SCHEDULE", "REQUEST_TIMEOUT", "NOTIFY_ON_ERROR",
		"LOG_LEVEL", "ENVIRONMENT", "LOG_FILE", "STATE_BACKEND", "DATABASE_URL", "REDIS_URL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "practicum", cfg.PracticumToken)
	assert.Equal(t, "telegram", cfg.TelegramToken)
	assert.Equal(t, int64(123456), cfg.TelegramChatID)
	assert.Equal(t, defaultEndpoint, cfg.PracticumEndpoint)
	assert.Equal(t, "@every 600s", cfg.PollSchedule)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.True(t, cfg.NotifyOnError)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, StateBackendMemory, cfg.StateBackend)
}

func TestLoad_MissingCredentials(t *testing.T) {
	for _, key := range []string{"PRACTICUM_TOKEN", "TELEGRAM_TOKEN", "TELEGRAM_CHAT_ID"} {
		t.Run(key, func(t *testing.T) {
			setRequired(t)
			t.Setenv(key, "")

			_, err := Load()
			assert.ErrorIs(t, err, ErrMissingEnv)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("POLL_SCHEDULE", "@every 1m")
	t.Setenv("REQUEST_TIMEOUT", "0")
	t.Setenv("NOTIFY_ON_ERROR", "false")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("STATE_BACKEND", "redis")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "@every 1m", cfg.PollSchedule)
	assert.Zero(t, cfg.RequestTimeout)
	assert.False(t, cfg.NotifyOnError)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, StateBackendRedis, cfg.StateBackend)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := map[string]string{
		"TELEGRAM_CHAT_ID": "not-a-number",
		"REQUEST_TIMEOUT":  "soon",
		"NOTIFY_ON_ERROR":  "maybe",
		"STATE_BACKEND":    "sqlite",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			setRequired(t)
			t.Setenv(key, value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoad_BackendRequiresURL(t *testing.T) {
	setRequired(t)
	t.Setenv("STATE_BACKEND", "postgres")

	_, err := Load()
	assert.ErrorIs(t, err, ErrMissingEnv)
}
