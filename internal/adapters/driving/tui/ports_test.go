package tui

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/search-cli/internal/core/domain"
	"github.com/custodia-labs/search-cli/internal/core/ports/driving"
)

// MockResultActionService implements driving.ResultActionService for testing.
type MockResultActionService struct {
	mu     sync.Mutex
	opened []string
}

func (m *MockResultActionService) OpenResult(_ context.Context, result *domain.SearchResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.opened = append(m.opened, result.URL)
}

func (m *MockResultActionService) Opened() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.opened...)
}

var _ driving.ResultActionService = (*MockResultActionService)(nil)

func TestNewPorts(t *testing.T) {
	svc := &MockResultActionService{}

	ports := NewPorts(svc)

	assert.Same(t, svc, ports.ResultAction)
	assert.NoError(t, ports.Validate())
}

func TestPorts_Validate_Nil(t *testing.T) {
	var ports *Ports

	assert.ErrorIs(t, ports.Validate(), ErrInvalidPorts)
}

func TestPorts_Validate_MissingResultAction(t *testing.T) {
	ports := &Ports{}

	assert.ErrorIs(t, ports.Validate(), ErrMissingResultActionService)
}
