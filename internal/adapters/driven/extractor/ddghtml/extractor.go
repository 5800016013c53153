package ddghtml

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/custodia-labs/search-cli/internal/core/domain"
	"github.com/custodia-labs/search-cli/internal/core/ports/driven"
	"github.com/custodia-labs/search-cli/internal/logger"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// ContainerSelector matches one candidate hit.
const ContainerSelector = ".result"

// Extractor reads search results out of a results page.
type Extractor struct {
	strategies map[string][]Strategy
	limit      int
}

// New creates an extractor with the default field strategies.
func New() *Extractor {
	return &Extractor{
		strategies: DefaultStrategies(),
		limit:      domain.MaxResults,
	}
}

// Extract parses raw and returns the valid results of the first
// domain.MaxResults containers, in document order.
func (e *Extractor) Extract(raw string) ([]domain.SearchResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrParse, err)
	}

	containers := doc.Find(ContainerSelector)
	logger.Debug("Found %d result containers", containers.Length())

	results := make([]domain.SearchResult, 0, e.limit)
	containers.EachWithBreak(func(i int, s *goquery.Selection) bool {
		if i >= e.limit {
			return false
		}
		r := e.extractOne(s)
		if !r.IsValid() {
			logger.Debug("Skipping container %d: title=%q url=%q", i, r.Title, r.URL)
			return true
		}
		results = append(results, r)
		return true
	})

	return results, nil
}

// extractOne reads every field of a single container.
func (e *Extractor) extractOne(s *goquery.Selection) domain.SearchResult {
	return domain.SearchResult{
		Title:       domain.Sanitize(e.field(FieldTitle, s)),
		URL:         strings.TrimSpace(e.field(FieldURL, s)),
		DisplayURL:  e.field(FieldDisplayURL, s),
		Description: domain.Sanitize(e.field(FieldDescription, s)),
	}
}

// field returns the first non-empty value produced by the strategies
// registered for name.
func (e *Extractor) field(name string, s *goquery.Selection) string {
	for _, strategy := range e.strategies[name] {
		if v := strategy(s); strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
