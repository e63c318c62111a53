// Package feed retrieves the raw tabular feeds and runs the refresh cycle
// that turns them into published series.
package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/airsight/airsight/internal/provider/resilience"
)

// Named feeds this service ingests.
const (
	FeedWeather = "weather_log"
	FeedPM25    = "pm25_log"
)

// HTTPDoer abstracts HTTP request execution so tests can inject fakes.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Source is one feed's retrieval order: the primary URL first, then on any
// failure exactly one fallback.
type Source struct {
	Primary  string
	Fallback string
}

// FetcherConfig holds configuration for the feed fetcher.
type FetcherConfig struct {
	// Sources maps feed name to its primary/fallback URL pair.
	Sources map[string]Source

	// Client is the HTTP client. If nil a resilient client with no
	// retries is created; retrying is the next poll tick's job.
	Client HTTPDoer

	// Clock supplies the cache-busting parameter value.
	Clock clockwork.Clock

	// Timeout for individual requests when the default client is built.
	Timeout time.Duration
}

// Fetcher retrieves raw tabular text for named feeds.
type Fetcher struct {
	sources map[string]Source
	client  HTTPDoer
	clock   clockwork.Clock
}

// NewFetcher creates a feed fetcher.
func NewFetcher(cfg FetcherConfig) *Fetcher {
	client := cfg.Client
	if client == nil {
		client = resilience.NewClient(resilience.ClientConfig{
			Name:    "feed",
			Timeout: cfg.Timeout,
		})
	}

	clock := cfg.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &Fetcher{
		sources: cfg.Sources,
		client:  client,
		clock:   clock,
	}
}

// FetchError means both the primary and the fallback source for a feed
// were unreachable or responded with a non-success status. The refresh
// cycle aborts on it and no partial state is committed.
type FetchError struct {
	Feed        string
	PrimaryErr  error
	FallbackErr error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("feed %s unavailable: primary: %v; fallback: %v", e.Feed, e.PrimaryErr, e.FallbackErr)
}

// Fetch retrieves the raw tabular text for a named feed, trying the
// primary source first and the fallback on any failure.
func (f *Fetcher) Fetch(ctx context.Context, feed string) (string, error) {
	src, ok := f.sources[feed]
	if !ok {
		return "", fmt.Errorf("unknown feed %q", feed)
	}

	body, primaryErr := f.get(ctx, src.Primary)
	if primaryErr == nil {
		return body, nil
	}

	if src.Fallback == "" {
		return "", &FetchError{Feed: feed, PrimaryErr: primaryErr, FallbackErr: fmt.Errorf("no fallback source configured")}
	}

	body, fallbackErr := f.get(ctx, src.Fallback)
	if fallbackErr == nil {
		return body, nil
	}

	return "", &FetchError{Feed: feed, PrimaryErr: primaryErr, FallbackErr: fallbackErr}
}

// get performs one cache-busted GET. The `_` query parameter carries the
// current clock millis so intermediate caches cannot serve stale bytes.
func (f *Fetcher) get(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse source url: %w", err)
	}
	q := u.Query()
	q.Set("_", strconv.FormatInt(f.clock.Now().UnixMilli(), 10))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	return string(body), nil
}
