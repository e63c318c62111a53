package series

import "time"

// Range selects how much of a series' tail a consumer wants.
type Range string

const (
	RangeAll   Range = "all"
	RangeDay   Range = "1d"
	RangeWeek  Range = "7d"
	RangeMonth Range = "30d"
)

// ParseRange validates a consumer-supplied range token.
func ParseRange(s string) (Range, bool) {
	switch Range(s) {
	case RangeAll, RangeDay, RangeWeek, RangeMonth:
		return Range(s), true
	case "":
		return RangeAll, true
	}
	return "", false
}

func (r Range) days() int {
	switch r {
	case RangeDay:
		return 1
	case RangeWeek:
		return 7
	case RangeMonth:
		return 30
	default:
		return 0
	}
}

// WindowWeather slices the series to rows at or after now minus the range.
// Every column is sliced identically so the shared-axis invariant holds.
// RangeAll, or a cutoff that resolves to index 0, returns the input series
// unsliced.
func WindowWeather(s *WeatherSeries, r Range, now time.Time) *WeatherSeries {
	start := windowStart(s.Timestamps, r, now)
	if start == 0 {
		return s
	}
	return &WeatherSeries{
		Timestamps:  s.Timestamps[start:],
		Temperature: s.Temperature[start:],
		FeelsLike:   s.FeelsLike[start:],
		Humidity:    s.Humidity[start:],
		WindSpeed:   s.WindSpeed[start:],
	}
}

// WindowPollution slices the pollution series the same way.
func WindowPollution(s *PollutionSeries, r Range, now time.Time) *PollutionSeries {
	start := windowStart(s.Timestamps, r, now)
	if start == 0 {
		return s
	}
	out := &PollutionSeries{
		Timestamps: s.Timestamps[start:],
		Stations:   make(map[string][]StationSample, len(s.Stations)),
	}
	for id, samples := range s.Stations {
		out.Stations[id] = samples[start:]
	}
	return out
}

// windowStart scans from the end backward until a timestamp falls before
// the cutoff; the index after it is the earliest row inside the window.
// The series is chronologically sorted when this runs, so the scan stops
// at the first miss.
func windowStart(timestamps []string, r Range, now time.Time) int {
	days := r.days()
	if days == 0 {
		return 0
	}
	cutoff := now.AddDate(0, 0, -days)

	for i := len(timestamps) - 1; i >= 0; i-- {
		t, ok := ParseCanonical(timestamps[i])
		if !ok || t.Before(cutoff) {
			return i + 1
		}
	}
	return 0
}
