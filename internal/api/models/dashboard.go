package models

import (
	"time"

	"github.com/airsight/airsight/internal/series"
	"github.com/airsight/airsight/internal/station"
)

// Station is one static catalog entry.
type Station struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Region string `json:"region"`
	Icon   string `json:"icon"`
}

// WeatherSeries is the columnar weather payload consumed by charts.
type WeatherSeries struct {
	Timestamps  []string   `json:"timestamps"`
	Temperature []*float64 `json:"temperature"`
	FeelsLike   []*float64 `json:"feelsLike"`
	Humidity    []*float64 `json:"humidity"`
	WindSpeed   []*float64 `json:"windSpeed"`
}

// StationSample pairs a coerced value with its raw per-station timestamp.
type StationSample struct {
	Value     *float64 `json:"value"`
	Timestamp string   `json:"timestamp"`
}

// PollutionSeries is the columnar per-station payload consumed by charts.
type PollutionSeries struct {
	Timestamps []string                   `json:"timestamps"`
	Stations   map[string][]StationSample `json:"stations"`
}

// SeriesResponse is the windowed pair returned by GET /v1/series.
type SeriesResponse struct {
	Range     string          `json:"range"`
	Weather   WeatherSeries   `json:"weather"`
	Pollution PollutionSeries `json:"pollution"`
}

// StationReading is one station's entry in the latest snapshot.
type StationReading struct {
	ID        string   `json:"id"`
	Value     *float64 `json:"value"`
	Timestamp string   `json:"timestamp"`
	Status    string   `json:"status"`
	Trend     string   `json:"trend"`
}

// Snapshot is the latest aggregate view returned by GET /v1/latest.
type Snapshot struct {
	LastUpdated string           `json:"lastUpdated"`
	AvgAQI      *float64         `json:"avgAqi"`
	ActiveCount int              `json:"activeCount"`
	TotalCount  int              `json:"totalCount"`
	IsOffline   bool             `json:"isOffline"`
	Temperature *float64         `json:"temp"`
	FeelsLike   *float64         `json:"feels"`
	Humidity    *float64         `json:"humidity"`
	WindSpeed   *float64         `json:"wind"`
	Stations    []StationReading `json:"stations"`
}

// Status reports the refresh-cycle state consumers poll alongside data.
type Status struct {
	Loading       bool       `json:"loading"`
	Error         string     `json:"error,omitempty"`
	LastRefreshAt *time.Time `json:"lastRefreshAt,omitempty"`
}

// Health is the liveness payload.
type Health struct {
	Status  string            `json:"status"`
	Time    time.Time         `json:"time"`
	Details map[string]string `json:"details,omitempty"`
}

// FromStations converts catalog descriptors to the API shape.
func FromStations(catalog []station.Descriptor) []Station {
	out := make([]Station, 0, len(catalog))
	for _, st := range catalog {
		out = append(out, Station{ID: st.ID, Label: st.Label, Region: st.Region, Icon: st.Icon})
	}
	return out
}

// FromWeatherSeries converts the domain series to the API shape.
func FromWeatherSeries(s *series.WeatherSeries) WeatherSeries {
	return WeatherSeries{
		Timestamps:  s.Timestamps,
		Temperature: s.Temperature,
		FeelsLike:   s.FeelsLike,
		Humidity:    s.Humidity,
		WindSpeed:   s.WindSpeed,
	}
}

// FromPollutionSeries converts the domain series to the API shape.
func FromPollutionSeries(s *series.PollutionSeries) PollutionSeries {
	stations := make(map[string][]StationSample, len(s.Stations))
	for id, samples := range s.Stations {
		converted := make([]StationSample, 0, len(samples))
		for _, sample := range samples {
			converted = append(converted, StationSample{Value: sample.Value, Timestamp: sample.Timestamp})
		}
		stations[id] = converted
	}
	return PollutionSeries{Timestamps: s.Timestamps, Stations: stations}
}

// FromSnapshot converts the domain snapshot to the API shape.
func FromSnapshot(s *series.Snapshot) Snapshot {
	stations := make([]StationReading, 0, len(s.Stations))
	for _, st := range s.Stations {
		stations = append(stations, StationReading{
			ID:        st.ID,
			Value:     st.Value,
			Timestamp: st.Timestamp,
			Status:    string(st.Status),
			Trend:     st.Trend,
		})
	}
	return Snapshot{
		LastUpdated: s.LastUpdated,
		AvgAQI:      s.AvgAQI,
		ActiveCount: s.ActiveCount,
		TotalCount:  s.TotalCount,
		IsOffline:   s.IsOffline,
		Temperature: s.Temperature,
		FeelsLike:   s.FeelsLike,
		Humidity:    s.Humidity,
		WindSpeed:   s.WindSpeed,
		Stations:    stations,
	}
}
