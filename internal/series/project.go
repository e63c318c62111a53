package series

import (
	"strings"
	"time"

	"github.com/airsight/airsight/internal/station"
)

// Weather feed column names. Header casing and whitespace are tolerated for
// the timestamp column only; metric columns must match exactly.
const (
	colTemperature = "temperature"
	colFeelsLike   = "feels_like"
	colHumidity    = "humidity"
	colWindSpeed   = "wind_speed"
)

// ProjectWeather maps parsed weather rows into the columnar weather series.
// A row whose timestamp does not normalize to a usable value is dropped
// whole, which keeps every field sequence aligned on the shared time axis.
func ProjectWeather(header []string, rows [][]string, now time.Time) *WeatherSeries {
	tsCol := timestampColumn(header)
	tempCol := columnIndex(header, colTemperature)
	feelsCol := columnIndex(header, colFeelsLike)
	humidityCol := columnIndex(header, colHumidity)
	windCol := columnIndex(header, colWindSpeed)

	out := &WeatherSeries{}
	for _, row := range rows {
		ts := NormalizeTimestamp(cell(row, tsCol), now)
		if ts == "" {
			continue
		}
		out.Timestamps = append(out.Timestamps, ts)
		out.Temperature = append(out.Temperature, CoerceNumber(cell(row, tempCol)))
		out.FeelsLike = append(out.FeelsLike, CoerceNumber(cell(row, feelsCol)))
		out.Humidity = append(out.Humidity, CoerceNumber(cell(row, humidityCol)))
		out.WindSpeed = append(out.WindSpeed, CoerceNumber(cell(row, windCol)))
	}
	return out
}

// ProjectPollution maps parsed pollution rows into the columnar per-station
// series. For every catalog station the pm25_<id> cell is coerced and the
// time_<id> cell is kept as raw text; the snapshot reparses it when
// classifying freshness.
func ProjectPollution(header []string, rows [][]string, catalog []station.Descriptor, now time.Time) *PollutionSeries {
	tsCol := timestampColumn(header)

	valueCols := make(map[string]int, len(catalog))
	timeCols := make(map[string]int, len(catalog))
	for _, st := range catalog {
		valueCols[st.ID] = columnIndex(header, "pm25_"+st.ID)
		timeCols[st.ID] = columnIndex(header, "time_"+st.ID)
	}

	out := &PollutionSeries{Stations: make(map[string][]StationSample, len(catalog))}
	for _, row := range rows {
		ts := NormalizeTimestamp(cell(row, tsCol), now)
		if ts == "" {
			continue
		}
		out.Timestamps = append(out.Timestamps, ts)
		for _, st := range catalog {
			sample := StationSample{
				Value:     CoerceNumber(cell(row, valueCols[st.ID])),
				Timestamp: strings.TrimSpace(cell(row, timeCols[st.ID])),
			}
			out.Stations[st.ID] = append(out.Stations[st.ID], sample)
		}
	}
	return out
}

// timestampColumn locates the timestamp column by case-insensitive
// substring match, which tolerates header variations and encoding
// artifacts. Falls back to the first column when no header matches.
func timestampColumn(header []string) int {
	for i, name := range header {
		if strings.Contains(strings.ToLower(name), "timestamp") {
			return i
		}
	}
	return 0
}

// columnIndex finds a column by exact name after trimming surrounding
// whitespace. Returns -1 when absent, which cell resolves to an empty
// value.
func columnIndex(header []string, name string) int {
	for i, h := range header {
		if strings.TrimSpace(h) == name {
			return i
		}
	}
	return -1
}

func cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}
