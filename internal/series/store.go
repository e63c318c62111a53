package series

import "sync"

// Store holds the two columnar series in memory. Both series are replaced
// wholesale by a successful refresh cycle; they are never mutated in
// place, so readers always observe a consistent pair.
type Store struct {
	mu        sync.RWMutex
	weather   *WeatherSeries
	pollution *PollutionSeries
}

// NewStore returns an empty store. Before the first successful refresh
// both series have length zero.
func NewStore() *Store {
	return &Store{
		weather:   &WeatherSeries{},
		pollution: &PollutionSeries{Stations: map[string][]StationSample{}},
	}
}

// Replace publishes a freshly built series pair. Callers only invoke this
// after a whole cycle fetched, projected and sorted successfully; a failed
// cycle leaves the previously published pair untouched.
func (s *Store) Replace(w *WeatherSeries, p *PollutionSeries) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.weather = w
	s.pollution = p
}

// Series returns the currently published pair. The returned values are
// treated as immutable by all readers.
func (s *Store) Series() (*WeatherSeries, *PollutionSeries) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.weather, s.pollution
}
