package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "test-token-123")
	t.Setenv("NEWS_FEED_URL", "")
	t.Setenv("NEWS_FETCH_TIMEOUT", "")
	t.Setenv("SERVICE_PORT", "")
	t.Setenv("LOG_FORMAT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test-token-123", cfg.Telegram.BotToken)
	assert.Equal(t, DefaultFeedURL, cfg.News.FeedURL)
	assert.Equal(t, 15*time.Second, cfg.News.FetchTimeout)
	assert.Equal(t, "8080", cfg.Service.Port)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoad_MissingToken(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")

	cfg, err := Load()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "TELEGRAM_BOT_TOKEN is required")
}

func TestLoad_InvalidTimeout(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "test-token-123")
	t.Setenv("NEWS_FETCH_TIMEOUT", "soon")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NEWS_FETCH_TIMEOUT")
}

func TestValidate_NonPositiveTimeout(t *testing.T) {
	cfg := &Config{
		Telegram: TelegramConfig{BotToken: "token"},
		News:     NewsConfig{FetchTimeout: 0},
		Logging:  LoggingConfig{Format: "console"},
		Service:  ServiceConfig{Port: "8080"},
	}

	assert.Error(t, cfg.Validate())
}

func TestOut_ExposesParts(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "test-token-123")

	res, err := Out()
	require.NoError(t, err)

	assert.Same(t, &res.Config.Telegram, res.Telegram)
	assert.Same(t, &res.Config.News, res.News)
	assert.Same(t, &res.Config.Service, res.Service)
}

func TestLoad_LogFormat(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "test-token-123")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Logging.Format)

	t.Setenv("LOG_FORMAT", "xml")
	_, err = Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOG_FORMAT")
}
