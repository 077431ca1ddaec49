package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/pitchside/internal/platform/logging"
)

// Config stores runtime configuration for the dashboard.
type Config struct {
	APIToken          string `validate:"required"`
	BaseURL           string `validate:"required,url"`
	Competition       string `validate:"required"`
	Season            string `validate:"required,len=4,numeric"`
	HTTPTimeout       time.Duration
	RequestsPerMinute int
	LogLevel          logging.Level
	LogFile           string
}

func Load() (Config, error) {
	timeout, err := time.ParseDuration(getEnv("FOOTBALL_TIMEOUT", "20s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FOOTBALL_TIMEOUT: %w", err)
	}
	if timeout <= 0 {
		return Config{}, fmt.Errorf("FOOTBALL_TIMEOUT must be > 0")
	}

	perMinute, err := getEnvAsInt("FOOTBALL_RATE_LIMIT_PER_MINUTE", 10)
	if err != nil {
		return Config{}, fmt.Errorf("parse FOOTBALL_RATE_LIMIT_PER_MINUTE: %w", err)
	}
	if perMinute < 1 {
		return Config{}, fmt.Errorf("FOOTBALL_RATE_LIMIT_PER_MINUTE must be >= 1")
	}

	cfg := Config{
		APIToken:          strings.TrimSpace(os.Getenv("FOOTBALL_API_TOKEN")),
		BaseURL:           strings.TrimRight(getEnv("FOOTBALL_BASE_URL", "https://api.football-data.org/v4"), "/"),
		Competition:       strings.ToUpper(getEnv("FOOTBALL_COMPETITION", "PL")),
		Season:            getEnv("FOOTBALL_SEASON", "2025"),
		HTTPTimeout:       timeout,
		RequestsPerMinute: perMinute,
		LogLevel:          parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
		LogFile:           strings.TrimSpace(getEnv("APP_LOG_FILE", "")),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration (is FOOTBALL_API_TOKEN set?): %w", err)
	}

	return cfg, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}
