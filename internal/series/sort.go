package series

import (
	"sort"
	"time"
)

// SortWeather reorders every column of the series chronologically by its
// canonical timestamps. The sort is stable, so sorting an already-sorted
// series produces no reordering, and rows with unparseable timestamps keep
// their relative positions.
func SortWeather(s *WeatherSeries) {
	if s.Len() < 2 {
		return
	}
	perm := chronologicalPermutation(s.Timestamps)
	if perm == nil {
		return
	}
	s.Timestamps = applyPermutation(s.Timestamps, perm)
	s.Temperature = applyPermutation(s.Temperature, perm)
	s.FeelsLike = applyPermutation(s.FeelsLike, perm)
	s.Humidity = applyPermutation(s.Humidity, perm)
	s.WindSpeed = applyPermutation(s.WindSpeed, perm)
}

// SortPollution reorders every station sequence by the shared timestamps.
func SortPollution(s *PollutionSeries) {
	if s.Len() < 2 {
		return
	}
	perm := chronologicalPermutation(s.Timestamps)
	if perm == nil {
		return
	}
	s.Timestamps = applyPermutation(s.Timestamps, perm)
	for id, samples := range s.Stations {
		s.Stations[id] = applyPermutation(samples, perm)
	}
}

// chronologicalPermutation returns the stable ordering of indexes by parsed
// timestamp, or nil when the series is already in order. Unparseable
// timestamps sort as the zero time.
func chronologicalPermutation(timestamps []string) []int {
	keys := make([]time.Time, len(timestamps))
	for i, ts := range timestamps {
		keys[i], _ = ParseCanonical(ts)
	}

	perm := make([]int, len(timestamps))
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(a, b int) bool {
		return keys[perm[a]].Before(keys[perm[b]])
	})

	for i, p := range perm {
		if i != p {
			return perm
		}
	}
	return nil
}

func applyPermutation[T any](values []T, perm []int) []T {
	out := make([]T, len(values))
	for i, p := range perm {
		out[i] = values[p]
	}
	return out
}
