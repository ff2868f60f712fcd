package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds rate limiting configuration, loaded from environment variables.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	ScoreLimit      int
	ScoreWindow     time.Duration
	CleanupInterval time.Duration
}

// LoadConfig loads rate limiting configuration from environment variables.
// Scoring is the expensive tier and gets its own, stricter limit.
func LoadConfig() *Config {
	if !getEnvBool("RATE_LIMIT_ENABLED", true) {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 100),
		DefaultWindow:   getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		ScoreLimit:      getEnvInt("RATE_LIMIT_SCORE_LIMIT", 10),
		ScoreWindow:     getEnvDuration("RATE_LIMIT_SCORE_WINDOW", time.Minute),
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
	}
}

func defaultConfig() *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    100,
		DefaultWindow:   time.Minute,
		ScoreLimit:      10,
		ScoreWindow:     time.Minute,
		CleanupInterval: 5 * time.Minute,
	}
}

// limitFor returns the limit and window that apply to a request. Health
// checks are unlimited; score submissions use the strict tier.
func (c *Config) limitFor(path, method string) (int, time.Duration) {
	if path == "/health" && method == "GET" {
		return 0, 0
	}
	if method == "POST" && strings.HasPrefix(path, "/score") {
		return c.ScoreLimit, c.ScoreWindow
	}
	return c.DefaultLimit, c.DefaultWindow
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
