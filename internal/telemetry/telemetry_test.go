package telemetry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airsight/airsight/internal/telemetry"
)

func TestInit_Disabled(t *testing.T) {
	ctx := context.Background()

	provider, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:    "test-service",
		ServiceVersion: "1.0.0",
		Environment:    "test",
		OTLPEndpoint:   "localhost:4317",
		Enabled:        false,
	})

	require.NoError(t, err)
	assert.NotNil(t, provider)
	assert.NotNil(t, provider.Tracer)
	assert.NotNil(t, provider.Meter)

	// Noop provider should have nil TracerProvider and MeterProvider
	assert.Nil(t, provider.TracerProvider)
	assert.Nil(t, provider.MeterProvider)

	err = provider.Shutdown(ctx)
	assert.NoError(t, err)
}

func TestProvider_Shutdown_NilProviders(t *testing.T) {
	provider := &telemetry.Provider{}
	err := provider.Shutdown(context.Background())
	assert.NoError(t, err)
}

func TestNewIngestMetrics(t *testing.T) {
	metrics, err := telemetry.NewIngestMetrics()
	require.NoError(t, err)
	assert.NotNil(t, metrics)
}

func TestIngestMetrics_RecordCycle(t *testing.T) {
	metrics, err := telemetry.NewIngestMetrics()
	require.NoError(t, err)

	ctx := context.Background()
	assert.NotPanics(t, func() {
		metrics.RecordCycle(ctx, 120*time.Millisecond, nil)
		metrics.RecordCycle(ctx, time.Second, errors.New("fetch failed"))
		metrics.RecordRows(ctx, "weather_log", 48, 2)
	})
}

func TestIngestMetrics_NilReceiverIsSafe(t *testing.T) {
	var metrics *telemetry.IngestMetrics
	assert.NotPanics(t, func() {
		metrics.RecordCycle(context.Background(), time.Second, nil)
		metrics.RecordRows(context.Background(), "pm25_log", 0, 0)
	})
}

func TestTracer_ReturnsGlobalTracer(t *testing.T) {
	assert.NotNil(t, telemetry.Tracer("test-tracer"))
}

func TestMeter_ReturnsGlobalMeter(t *testing.T) {
	assert.NotNil(t, telemetry.Meter("test-meter"))
}
