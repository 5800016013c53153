// Package tui provides the interactive results browser.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/search-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// ResultAction opens selected results.
	ResultAction driving.ResultActionService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(resultAction driving.ResultActionService) *Ports {
	return &Ports{ResultAction: resultAction}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.ResultAction == nil {
		return ErrMissingResultActionService
	}
	return nil
}
