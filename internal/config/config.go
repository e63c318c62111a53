// Package config loads service settings from environment variables.
package config

import (
	"errors"
	"os"
	"strings"
	"time"
)

// Default fallback mirrors used when no override is configured.
const (
	defaultWeatherFallback = "https://mirror.airsight.mn/data/weather_log.csv"
	defaultPM25Fallback    = "https://mirror.airsight.mn/data/pm25_log.csv"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr string

	FeedBaseURL        string
	WeatherFeedPath    string
	PM25FeedPath       string
	WeatherFallbackURL string
	PM25FallbackURL    string

	RefreshInterval time.Duration
	FeedTimeout     time.Duration

	LogLevel    string
	Environment string

	OTELEnabled  bool
	OTLPEndpoint string
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	refreshInterval, err := parseDuration("REFRESH_INTERVAL", 5*time.Minute)
	if err != nil {
		return nil, err
	}
	feedTimeout, err := parseDuration("FEED_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr: envOrDefault("HTTP_ADDR", ":8080"),

		FeedBaseURL:        envOrDefault("FEED_BASE_URL", "http://localhost:8080"),
		WeatherFeedPath:    envOrDefault("WEATHER_FEED_URL", "/data/weather_log.csv"),
		PM25FeedPath:       envOrDefault("PM25_FEED_URL", "/data/pm25_log.csv"),
		WeatherFallbackURL: envOrDefault("WEATHER_FALLBACK_URL", defaultWeatherFallback),
		PM25FallbackURL:    envOrDefault("PM25_FALLBACK_URL", defaultPM25Fallback),

		RefreshInterval: refreshInterval,
		FeedTimeout:     feedTimeout,

		LogLevel:    envOrDefault("LOG_LEVEL", "info"),
		Environment: envOrDefault("APP_ENV", "development"),

		OTELEnabled:  os.Getenv("OTEL_ENABLED") == "true",
		OTLPEndpoint: envOrDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
	}

	if cfg.FeedBaseURL == "" {
		return nil, errors.New("FEED_BASE_URL is required")
	}
	return cfg, nil
}

// WeatherPrimaryURL resolves the weather feed path against the base URL.
func (c *Config) WeatherPrimaryURL() string {
	return resolve(c.FeedBaseURL, c.WeatherFeedPath)
}

// PM25PrimaryURL resolves the pollution feed path against the base URL.
func (c *Config) PM25PrimaryURL() string {
	return resolve(c.FeedBaseURL, c.PM25FeedPath)
}

func resolve(base, path string) string {
	if strings.Contains(path, "://") {
		return path
	}
	return strings.TrimSuffix(base, "/") + path
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDuration(key string, def time.Duration) (time.Duration, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, errors.New("invalid " + key)
	}
	return d, nil
}
