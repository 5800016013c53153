package driving

import (
	"context"

	"github.com/custodia-labs/search-cli/internal/core/domain"
)

// SearchService provides search capabilities to external actors.
type SearchService interface {
	// Search fetches the results page for query and extracts its hits.
	Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.SearchResult, error)
}
