package services

import (
	"context"

	"github.com/custodia-labs/search-cli/internal/core/domain"
	"github.com/custodia-labs/search-cli/internal/core/ports/driven"
	"github.com/custodia-labs/search-cli/internal/core/ports/driving"
	"github.com/custodia-labs/search-cli/internal/logger"
)

// Ensure ResultActionService implements the interface.
var _ driving.ResultActionService = (*ResultActionService)(nil)

// ResultActionService provides actions on search results.
type ResultActionService struct {
	opener driven.URLOpener
}

// NewResultActionService creates a new result action service.
func NewResultActionService(opener driven.URLOpener) *ResultActionService {
	return &ResultActionService{opener: opener}
}

// OpenResult opens the result's URL in the default browser.
// A failed launch is logged and otherwise ignored so the browsing session
// keeps running.
func (s *ResultActionService) OpenResult(_ context.Context, result *domain.SearchResult) {
	if s.opener == nil || result == nil || result.URL == "" {
		return
	}
	if err := s.opener.Open(result.URL); err != nil {
		logger.Debug("Open %s failed: %v", result.URL, err)
	}
}
