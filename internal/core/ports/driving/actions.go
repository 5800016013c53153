package driving

import (
	"context"

	"github.com/custodia-labs/search-cli/internal/core/domain"
)

// ResultActionService provides actions on search results for external actors.
// This is used by the TUI adapter.
type ResultActionService interface {
	// OpenResult opens the result's URL in the default browser.
	// Launch failures are not reported; the call never blocks on the browser.
	OpenResult(ctx context.Context, result *domain.SearchResult)
}
