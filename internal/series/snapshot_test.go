package series_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airsight/airsight/internal/series"
	"github.com/airsight/airsight/internal/station"
)

func TestClassifyStation_Boundaries(t *testing.T) {
	reading := time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)
	raw := reading.Format("2006-01-02 15:04")

	tests := []struct {
		name string
		now  time.Time
		want series.Status
	}{
		{"exactly 1.1h old", reading.Add(66 * time.Minute), series.StatusLive},
		{"just past 1.1h", reading.Add(66*time.Minute + 500*time.Microsecond), series.StatusDelayed},
		{"exactly 2.5h old", reading.Add(150 * time.Minute), series.StatusDelayed},
		{"just past 2.5h", reading.Add(150*time.Minute + 40*time.Millisecond), series.StatusStale},
		{"fresh", reading.Add(5 * time.Minute), series.StatusLive},
		{"far future clock skew", reading.Add(-2 * time.Hour), series.StatusStale},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, series.ClassifyStation(raw, tc.now))
		})
	}
}

func TestClassifyStation_UnparseableIsOffline(t *testing.T) {
	now := time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, series.StatusOffline, series.ClassifyStation("", now))
	assert.Equal(t, series.StatusOffline, series.ClassifyStation("n/a", now))
}

func TestClassifyStation_ReparsesYearlessForm(t *testing.T) {
	now := time.Date(2026, 1, 5, 10, 30, 0, 0, time.UTC)

	// A station's own timestamp may use the yearless form independent of
	// the row's outer timestamp.
	assert.Equal(t, series.StatusLive, series.ClassifyStation("10:00, Jan 5", now))
	assert.Equal(t, series.StatusStale, series.ClassifyStation("10:00, Jan 2", now))
}

func TestComputeSnapshot_EmptySeries(t *testing.T) {
	now := time.Date(2026, 1, 5, 10, 30, 0, 0, time.UTC)
	catalog := station.Catalog()

	empty := &series.WeatherSeries{}
	pollution := &series.PollutionSeries{Timestamps: []string{"2026-01-05 10:00"}}

	assert.Nil(t, series.ComputeSnapshot(empty, pollution, catalog, now))
	assert.Nil(t, series.ComputeSnapshot(weatherFixture("2026-01-05 10:00"), &series.PollutionSeries{}, catalog, now))
}

func snapshotFixture() (*series.WeatherSeries, *series.PollutionSeries) {
	w := &series.WeatherSeries{
		Timestamps:  []string{"2026-01-05 09:00", "2026-01-05 10:00"},
		Temperature: []*float64{fp(-12), fp(-10)},
		FeelsLike:   []*float64{fp(-18), fp(-15)},
		Humidity:    []*float64{fp(50), fp(45)},
		WindSpeed:   []*float64{fp(2), fp(2.5)},
	}

	stations := make(map[string][]series.StationSample)
	for i, st := range station.Catalog() {
		sample := series.StationSample{Timestamp: ""}
		switch i {
		case 0:
			sample = series.StationSample{Value: fp(150), Timestamp: "10:00, Jan 5"}
		case 1:
			sample = series.StationSample{Value: fp(95), Timestamp: "10:00, Jan 5"}
		case 2:
			sample = series.StationSample{Value: fp(61), Timestamp: "08:00, Jan 5"}
		}
		stations[st.ID] = []series.StationSample{{}, sample}
	}
	p := &series.PollutionSeries{
		Timestamps: []string{"2026-01-05 09:00", "2026-01-05 10:00"},
		Stations:   stations,
	}
	return w, p
}

func TestComputeSnapshot(t *testing.T) {
	now := time.Date(2026, 1, 5, 10, 30, 0, 0, time.UTC)
	catalog := station.Catalog()
	w, p := snapshotFixture()

	snap := series.ComputeSnapshot(w, p, catalog, now)
	require.NotNil(t, snap)

	assert.Equal(t, "2026-01-05 10:00", snap.LastUpdated)
	assert.Equal(t, 3, snap.ActiveCount)
	assert.Equal(t, 18, snap.TotalCount)
	assert.False(t, snap.IsOffline)

	// Rounded mean of 150, 95, 61.
	require.NotNil(t, snap.AvgAQI)
	assert.Equal(t, 102.0, *snap.AvgAQI)

	require.NotNil(t, snap.Temperature)
	assert.Equal(t, -10.0, *snap.Temperature)
	assert.Equal(t, 45.0, *snap.Humidity)
	assert.Equal(t, 2.5, *snap.WindSpeed)

	require.Len(t, snap.Stations, 18)
	assert.Equal(t, series.StatusLive, snap.Stations[0].Status)
	assert.Equal(t, series.StatusDelayed, snap.Stations[2].Status)
	assert.Equal(t, series.StatusOffline, snap.Stations[3].Status)
	for _, st := range snap.Stations {
		assert.Equal(t, series.TrendStable, st.Trend)
	}
}

func TestComputeSnapshot_NoReportingStations(t *testing.T) {
	now := time.Date(2026, 1, 5, 10, 30, 0, 0, time.UTC)
	catalog := station.Catalog()

	stations := make(map[string][]series.StationSample)
	for _, st := range catalog {
		stations[st.ID] = []series.StationSample{{}}
	}
	p := &series.PollutionSeries{Timestamps: []string{"2026-01-05 10:00"}, Stations: stations}

	snap := series.ComputeSnapshot(weatherFixture("2026-01-05 10:00"), p, catalog, now)
	require.NotNil(t, snap)
	assert.Nil(t, snap.AvgAQI)
	assert.Equal(t, 0, snap.ActiveCount)
}

func TestComputeSnapshot_SystemOffline(t *testing.T) {
	catalog := station.Catalog()
	w, p := snapshotFixture()

	// Weather last reading more than an hour old.
	now := time.Date(2026, 1, 5, 11, 0, 1, 0, time.UTC)
	snap := series.ComputeSnapshot(w, p, catalog, now)
	require.NotNil(t, snap)
	assert.True(t, snap.IsOffline)

	// Exactly one hour old is still online.
	now = time.Date(2026, 1, 5, 11, 0, 0, 0, time.UTC)
	snap = series.ComputeSnapshot(w, p, catalog, now)
	require.NotNil(t, snap)
	assert.False(t, snap.IsOffline)
}
