package series

import (
	"math"
	"time"

	"github.com/airsight/airsight/internal/station"
)

// Freshness thresholds in hours, tuned for an hourly reporting cadence
// with tolerance for one missed cycle. Exact values are load-bearing for
// the status classification and must not drift.
const (
	liveMaxAgeHours    = 1.1
	delayedMaxAgeHours = 2.5
	minAgeHours        = -1.0
)

// systemOfflineAfter is how old the last weather reading may be before the
// whole feed system is considered offline.
const systemOfflineAfter = time.Hour

// TrendStable is the placeholder trend reported for every station. Trend
// computation is not implemented.
const TrendStable = "stable"

// ClassifyStation derives a station's freshness status from its raw
// per-station timestamp. The raw text is reparsed with the same
// normalization used for row timestamps, since a station's own clock may
// report in the yearless "HH:MM, Mon DD" form independent of the row.
func ClassifyStation(rawTimestamp string, now time.Time) Status {
	t, ok := ParseCanonical(NormalizeTimestamp(rawTimestamp, now))
	if !ok {
		return StatusOffline
	}

	ageHours := now.Sub(t).Hours()
	switch {
	case ageHours > delayedMaxAgeHours || ageHours < minAgeHours:
		return StatusStale
	case ageHours <= liveMaxAgeHours:
		return StatusLive
	default:
		return StatusDelayed
	}
}

// ComputeSnapshot derives the latest aggregate view from the tail of both
// series. Returns nil when either series is empty, meaning no data has
// ever been ingested. The snapshot is recomputed fresh on every call and
// never carried over.
func ComputeSnapshot(w *WeatherSeries, p *PollutionSeries, catalog []station.Descriptor, now time.Time) *Snapshot {
	if w.Len() == 0 || p.Len() == 0 {
		return nil
	}

	wi := w.Len() - 1
	pi := p.Len() - 1

	snap := &Snapshot{
		LastUpdated: p.Timestamps[pi],
		TotalCount:  len(catalog),
		Temperature: w.Temperature[wi],
		FeelsLike:   w.FeelsLike[wi],
		Humidity:    w.Humidity[wi],
		WindSpeed:   w.WindSpeed[wi],
		IsOffline:   weatherOffline(w.Timestamps[wi], now),
		Stations:    make([]StationReading, 0, len(catalog)),
	}

	var sum float64
	for _, st := range catalog {
		var sample StationSample
		if samples := p.Stations[st.ID]; pi < len(samples) {
			sample = samples[pi]
		}

		if sample.Value != nil {
			sum += *sample.Value
			snap.ActiveCount++
		}

		snap.Stations = append(snap.Stations, StationReading{
			ID:        st.ID,
			Value:     sample.Value,
			Timestamp: sample.Timestamp,
			Status:    ClassifyStation(sample.Timestamp, now),
			Trend:     TrendStable,
		})
	}

	if snap.ActiveCount > 0 {
		avg := math.Round(sum / float64(snap.ActiveCount))
		snap.AvgAQI = &avg
	}

	return snap
}

// weatherOffline reports whether the weather series' last reading is more
// than an hour old. An unparseable last timestamp has no defined age and
// does not set the flag.
func weatherOffline(lastTimestamp string, now time.Time) bool {
	t, ok := ParseCanonical(lastTimestamp)
	if !ok {
		return false
	}
	return now.Sub(t) > systemOfflineAfter
}
