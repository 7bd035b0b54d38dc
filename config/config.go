package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// DefaultFeedURL is the Google News RSS search endpoint
const DefaultFeedURL = "https://news.google.com/rss/search"

// Config holds all configuration for the IPC news bot
type Config struct {
	Telegram TelegramConfig
	News     NewsConfig
	Logging  LoggingConfig
	Service  ServiceConfig
}

// TelegramConfig holds Telegram bot configuration
type TelegramConfig struct {
	BotToken string
}

// NewsConfig holds news feed configuration
type NewsConfig struct {
	FeedURL      string
	FetchTimeout time.Duration
	UserAgent    string
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string
	// Format is "console" for humans or "json" for log collectors
	Format string
}

// ServiceConfig holds service configuration
type ServiceConfig struct {
	Name string
	Port string
}

// Result provides config parts for fx dependency injection using fx.Out pattern
type Result struct {
	fx.Out

	Config   *Config
	Telegram *TelegramConfig
	News     *NewsConfig
	Logging  *LoggingConfig
	Service  *ServiceConfig
}

// Out loads configuration and returns Result for fx injection
func Out() (Result, error) {
	cfg, err := Load()
	if err != nil {
		return Result{}, err
	}

	return Result{
		Config:   cfg,
		Telegram: &cfg.Telegram,
		News:     &cfg.News,
		Logging:  &cfg.Logging,
		Service:  &cfg.Service,
	}, nil
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists
	_ = godotenv.Load()

	fetchTimeout, err := time.ParseDuration(getEnv("NEWS_FETCH_TIMEOUT", "15s"))
	if err != nil {
		return nil, fmt.Errorf("invalid NEWS_FETCH_TIMEOUT: %w", err)
	}

	cfg := &Config{
		Telegram: TelegramConfig{
			BotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
		},
		News: NewsConfig{
			FeedURL:      getEnv("NEWS_FEED_URL", DefaultFeedURL),
			FetchTimeout: fetchTimeout,
			UserAgent:    getEnv("NEWS_USER_AGENT", "ipc-news-bot/1.0"),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "console"),
		},
		Service: ServiceConfig{
			Name: getEnv("SERVICE_NAME", "ipc-news-bot"),
			Port: getEnv("SERVICE_PORT", "8080"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("TELEGRAM_BOT_TOKEN is required")
	}

	if c.News.FetchTimeout <= 0 {
		return fmt.Errorf("NEWS_FETCH_TIMEOUT must be positive, got %s", c.News.FetchTimeout)
	}

	if c.Logging.Format != "console" && c.Logging.Format != "json" {
		return fmt.Errorf("LOG_FORMAT must be console or json, got %q", c.Logging.Format)
	}

	if c.Service.Port == "" {
		return fmt.Errorf("SERVICE_PORT is required")
	}

	return nil
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
