package driven

import "github.com/custodia-labs/search-cli/internal/core/domain"

// Extractor turns a raw results page into search results.
type Extractor interface {
	// Extract returns at most domain.MaxResults valid results in document
	// order. A page without matches yields an empty slice and no error.
	// Only markup that cannot be read at all returns domain.ErrParse.
	Extract(raw string) ([]domain.SearchResult, error)
}
