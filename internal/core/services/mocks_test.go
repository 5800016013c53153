package services

import (
	"context"
	"time"

	"github.com/custodia-labs/search-cli/internal/core/domain"
)

// mockFetcher implements driven.Fetcher for testing.
type mockFetcher struct {
	FetchFunc func(ctx context.Context, query string) (string, error)
	calls     []string
}

func (m *mockFetcher) Fetch(ctx context.Context, query string) (string, error) {
	m.calls = append(m.calls, query)
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx, query)
	}
	return "", nil
}

// mockExtractor implements driven.Extractor for testing.
type mockExtractor struct {
	ExtractFunc func(raw string) ([]domain.SearchResult, error)
}

func (m *mockExtractor) Extract(raw string) ([]domain.SearchResult, error) {
	if m.ExtractFunc != nil {
		return m.ExtractFunc(raw)
	}
	return []domain.SearchResult{}, nil
}

// spyOpener implements driven.URLOpener and records every URL.
type spyOpener struct {
	opened []string
	err    error
}

func (s *spyOpener) Open(url string) error {
	s.opened = append(s.opened, url)
	return s.err
}

// mockConfigStore implements driven.ConfigStore over a flat map.
type mockConfigStore struct {
	data map[string]any
}

func (m *mockConfigStore) Get(key string) (any, bool) {
	v, ok := m.data[key]
	return v, ok
}

func (m *mockConfigStore) GetString(key string) string {
	s, _ := m.data[key].(string)
	return s
}

func (m *mockConfigStore) GetInt(key string) int {
	switch v := m.data[key].(type) {
	case int64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}

func (m *mockConfigStore) GetDuration(key string) time.Duration {
	d, err := time.ParseDuration(m.GetString(key))
	if err != nil {
		return 0
	}
	return d
}

func (m *mockConfigStore) Load() error  { return nil }
func (m *mockConfigStore) Path() string { return "/tmp/search/config.toml" }

func makeResults(n int) []domain.SearchResult {
	results := make([]domain.SearchResult, n)
	for i := range results {
		results[i] = domain.SearchResult{
			Title: "Result",
			URL:   "https://example.com/" + string(rune('a'+i)),
		}
	}
	return results
}
