// Package snapshot fetches the remote conference snapshot document.
package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sony/gobreaker"

	"conftrack/internal/domain"
)

type httpFetcher struct {
	client  *http.Client
	url     string
	breaker *gobreaker.CircuitBreaker
	now     func() time.Time
}

// NewHTTPFetcher returns a fetcher that downloads the snapshot from the
// given URL with a cache-busting query parameter. Repeated failures trip a
// circuit breaker so refreshes against a dead remote fail fast.
func NewHTTPFetcher(client *http.Client, rawURL string, logger *slog.Logger) domain.SnapshotFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	settings := gobreaker.Settings{
		Name:    "snapshot-fetch",
		Timeout: 60 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				"circuit", name, "from", from.String(), "to", to.String())
		},
	}
	return &httpFetcher{
		client:  client,
		url:     rawURL,
		breaker: gobreaker.NewCircuitBreaker(settings),
		now:     time.Now,
	}
}

func (f *httpFetcher) Fetch(ctx context.Context) ([]*domain.Conference, error) {
	result, err := f.breaker.Execute(func() (interface{}, error) {
		return f.fetch(ctx)
	})
	if err != nil {
		return nil, err
	}
	return result.([]*domain.Conference), nil
}

func (f *httpFetcher) fetch(ctx context.Context) ([]*domain.Conference, error) {
	u, err := url.Parse(f.url)
	if err != nil {
		return nil, fmt.Errorf("invalid snapshot url: %w", err)
	}
	q := u.Query()
	q.Set("t", strconv.FormatInt(f.now().UnixMilli(), 10))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch snapshot: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("snapshot endpoint returned status: %d", resp.StatusCode)
	}

	var doc struct {
		Conferences json.RawMessage `json:"conferences"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	if doc.Conferences == nil {
		return nil, fmt.Errorf("snapshot document has no conferences array")
	}
	var records []*domain.Conference
	if err := json.Unmarshal(doc.Conferences, &records); err != nil {
		return nil, fmt.Errorf("failed to decode conferences: %w", err)
	}
	return records, nil
}
