package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airsight/airsight/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 5*time.Minute, cfg.RefreshInterval)
	assert.Equal(t, 10*time.Second, cfg.FeedTimeout)
	assert.Equal(t, "http://localhost:8080/data/weather_log.csv", cfg.WeatherPrimaryURL())
	assert.Equal(t, "http://localhost:8080/data/pm25_log.csv", cfg.PM25PrimaryURL())
	assert.NotEmpty(t, cfg.WeatherFallbackURL)
	assert.False(t, cfg.OTELEnabled)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("FEED_BASE_URL", "https://feeds.example.org/")
	t.Setenv("WEATHER_FEED_URL", "/w.csv")
	t.Setenv("REFRESH_INTERVAL", "1m")
	t.Setenv("OTEL_ENABLED", "true")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "https://feeds.example.org/w.csv", cfg.WeatherPrimaryURL())
	assert.Equal(t, time.Minute, cfg.RefreshInterval)
	assert.True(t, cfg.OTELEnabled)
}

func TestLoad_AbsoluteFeedURLBypassesBase(t *testing.T) {
	t.Setenv("PM25_FEED_URL", "https://other.example.org/pm25.csv")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "https://other.example.org/pm25.csv", cfg.PM25PrimaryURL())
}

func TestLoad_InvalidInterval(t *testing.T) {
	t.Setenv("REFRESH_INTERVAL", "soon")

	_, err := config.Load()
	assert.Error(t, err)
}
