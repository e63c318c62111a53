// Package series implements the feed ingestion core: timestamp
// normalization, numeric coercion, row projection into columnar
// time-series, chronological sort, window slicing, and the derived
// latest-reading snapshot.
package series

// Status classifies the freshness of a station's most recent reading.
type Status string

const (
	StatusLive    Status = "live"
	StatusDelayed Status = "delayed"
	StatusStale   Status = "stale"
	StatusOffline Status = "offline"
)

// WeatherSeries is the columnar weather time-series. All field slices share
// the Timestamps axis: len(Timestamps) == len(<field>) at all times.
type WeatherSeries struct {
	Timestamps  []string
	Temperature []*float64
	FeelsLike   []*float64
	Humidity    []*float64
	WindSpeed   []*float64
}

// Len returns the number of rows on the shared time axis.
func (s *WeatherSeries) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Timestamps)
}

// StationSample is one station's reading at one row of the pollution
// series: the coerced value and the raw per-station timestamp text.
type StationSample struct {
	Value     *float64
	Timestamp string
}

// PollutionSeries is the columnar per-station pollution time-series.
// Stations maps station ID to a sample sequence aligned with Timestamps.
type PollutionSeries struct {
	Timestamps []string
	Stations   map[string][]StationSample
}

// Len returns the number of rows on the shared time axis.
func (s *PollutionSeries) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Timestamps)
}

// StationReading is one station's entry in a Snapshot.
type StationReading struct {
	ID        string
	Value     *float64
	Timestamp string
	Status    Status
	Trend     string
}

// Snapshot is the derived latest-reading aggregate. It is recomputed on
// demand from the tail of both series and never persisted.
type Snapshot struct {
	LastUpdated string
	AvgAQI      *float64
	ActiveCount int
	TotalCount  int
	IsOffline   bool
	Temperature *float64
	FeelsLike   *float64
	Humidity    *float64
	WindSpeed   *float64
	Stations    []StationReading
}
