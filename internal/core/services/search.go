package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/search-cli/internal/core/domain"
	"github.com/custodia-labs/search-cli/internal/core/ports/driven"
	"github.com/custodia-labs/search-cli/internal/core/ports/driving"
	"github.com/custodia-labs/search-cli/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService fetches a results page and extracts its hits.
type SearchService struct {
	fetcher   driven.Fetcher
	extractor driven.Extractor
}

// NewSearchService creates a new search service.
func NewSearchService(fetcher driven.Fetcher, extractor driven.Extractor) *SearchService {
	return &SearchService{
		fetcher:   fetcher,
		extractor: extractor,
	}
}

// Search fetches the results page for query and extracts up to
// opts.EffectiveLimit() results. An empty result set is not an error.
func (s *SearchService) Search(
	ctx context.Context, query string, opts domain.SearchOptions,
) ([]domain.SearchResult, error) {
	logger.Section("Search Execution")
	logger.Debug("Query: %q", query)

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.ErrNoQuery
	}
	if s.fetcher == nil || s.extractor == nil {
		return nil, fmt.Errorf("%w: search pipeline not configured", domain.ErrInvalidInput)
	}

	raw, err := s.fetcher.Fetch(ctx, query)
	if err != nil {
		logger.Warn("Fetch failed: %v", err)
		return nil, err
	}
	logger.Debug("Fetched %d bytes", len(raw))

	results, err := s.extractor.Extract(raw)
	if err != nil {
		logger.Warn("Extraction failed: %v", err)
		return nil, err
	}

	limit := opts.EffectiveLimit()
	if len(results) > limit {
		results = results[:limit]
	}
	logger.Info("Extracted %d results (limit %d)", len(results), limit)

	return results, nil
}
