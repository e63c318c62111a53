package feed

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/airsight/airsight/internal/series"
	"github.com/airsight/airsight/internal/station"
	"github.com/airsight/airsight/internal/telemetry"
)

// TextFetcher retrieves raw tabular text for a named feed.
type TextFetcher interface {
	Fetch(ctx context.Context, feed string) (string, error)
}

// ServiceConfig holds configuration for the feed service.
type ServiceConfig struct {
	Fetcher TextFetcher
	Store   *series.Store
	Catalog []station.Descriptor
	Clock   clockwork.Clock
	Logger  zerolog.Logger
	Metrics *telemetry.IngestMetrics
}

// Service runs the refresh cycle and exposes the consumer contract over
// the published series: windowed data, the latest snapshot, the station
// catalog, and the loading/error state.
type Service struct {
	fetcher TextFetcher
	store   *series.Store
	catalog []station.Descriptor
	clock   clockwork.Clock
	logger  zerolog.Logger
	metrics *telemetry.IngestMetrics

	// refreshMu serializes cycles so a tick arriving while a previous
	// cycle is still in flight cannot race a second store replacement.
	refreshMu sync.Mutex

	stateMu     sync.RWMutex
	loading     bool
	lastErr     string
	lastRefresh time.Time
}

// NewService creates the feed service. loading starts true and stays true
// until the first cycle produces data or an error.
func NewService(cfg ServiceConfig) *Service {
	store := cfg.Store
	if store == nil {
		store = series.NewStore()
	}
	catalog := cfg.Catalog
	if catalog == nil {
		catalog = station.Catalog()
	}
	clock := cfg.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &Service{
		fetcher: cfg.Fetcher,
		store:   store,
		catalog: catalog,
		clock:   clock,
		logger:  cfg.Logger,
		metrics: cfg.Metrics,
		loading: true,
	}
}

// Refresh runs one full ingestion cycle: fetch both feeds concurrently,
// decode, project, sort, then publish the new series pair atomically. Any
// failure aborts the cycle and leaves the previously published series
// untouched.
func (s *Service) Refresh(ctx context.Context) error {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	started := time.Now()
	err := s.refresh(ctx)
	s.metrics.RecordCycle(ctx, time.Since(started), err)
	return err
}

func (s *Service) refresh(ctx context.Context) error {
	now := s.clock.Now()

	var (
		wg          sync.WaitGroup
		weatherText string
		pm25Text    string
		weatherErr  error
		pm25Err     error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		weatherText, weatherErr = s.fetcher.Fetch(ctx, FeedWeather)
	}()
	go func() {
		defer wg.Done()
		pm25Text, pm25Err = s.fetcher.Fetch(ctx, FeedPM25)
	}()
	wg.Wait()

	if weatherErr != nil {
		return s.fail(weatherErr)
	}
	if pm25Err != nil {
		return s.fail(pm25Err)
	}

	weatherHeader, weatherRows, err := DecodeTable(weatherText)
	if err != nil {
		return s.fail(fmt.Errorf("decode %s: %w", FeedWeather, err))
	}
	pm25Header, pm25Rows, err := DecodeTable(pm25Text)
	if err != nil {
		return s.fail(fmt.Errorf("decode %s: %w", FeedPM25, err))
	}

	weather := series.ProjectWeather(weatherHeader, weatherRows, now)
	pollution := series.ProjectPollution(pm25Header, pm25Rows, s.catalog, now)
	series.SortWeather(weather)
	series.SortPollution(pollution)

	s.store.Replace(weather, pollution)

	s.stateMu.Lock()
	s.loading = false
	s.lastErr = ""
	s.lastRefresh = now
	s.stateMu.Unlock()

	s.metrics.RecordRows(ctx, FeedWeather, weather.Len(), len(weatherRows)-weather.Len())
	s.metrics.RecordRows(ctx, FeedPM25, pollution.Len(), len(pm25Rows)-pollution.Len())

	s.logger.Info().
		Int("weather_rows", weather.Len()).
		Int("pollution_rows", pollution.Len()).
		Int("weather_rows_dropped", len(weatherRows)-weather.Len()).
		Int("pollution_rows_dropped", len(pm25Rows)-pollution.Len()).
		Msg("feed refresh completed")

	return nil
}

// fail records a cycle failure for consumers and propagates it. Prior
// series stay published: stale-but-consistent beats partially updated.
func (s *Service) fail(err error) error {
	s.stateMu.Lock()
	s.loading = false
	s.lastErr = err.Error()
	s.stateMu.Unlock()

	s.logger.Error().Err(err).Msg("feed refresh aborted")
	return err
}

// GetFilteredData returns both series sliced to the requested range.
func (s *Service) GetFilteredData(r series.Range) (*series.WeatherSeries, *series.PollutionSeries) {
	weather, pollution := s.store.Series()
	now := s.clock.Now()
	return series.WindowWeather(weather, r, now), series.WindowPollution(pollution, r, now)
}

// GetLatestMetrics recomputes the latest snapshot on demand. Returns nil
// until data has been ingested at least once.
func (s *Service) GetLatestMetrics() *series.Snapshot {
	weather, pollution := s.store.Series()
	return series.ComputeSnapshot(weather, pollution, s.catalog, s.clock.Now())
}

// Stations returns the static station catalog.
func (s *Service) Stations() []station.Descriptor {
	return s.catalog
}

// Loading reports whether the first cycle is still in flight.
func (s *Service) Loading() bool {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.loading
}

// Err returns the last cycle's error string, empty after a success.
func (s *Service) Err() string {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.lastErr
}

// LastRefreshAt returns when the last successful cycle published.
func (s *Service) LastRefreshAt() time.Time {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.lastRefresh
}
