package driven

import "context"

// Fetcher retrieves the raw results page for a query.
type Fetcher interface {
	// Fetch sends one request for query and returns the response body.
	// Transport failures, timeouts and non-success statuses are returned
	// as errors wrapping domain.ErrFetch.
	Fetch(ctx context.Context, query string) (string, error)
}
