// Package tui provides the interactive chat interface for kvault.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/kvault-labs/kvault-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Querier answers questions grounded in the vault.
	Querier driving.Querier

	// History exposes previously recorded turns for transcript preloading.
	History driving.History

	// Index provides read-only index statistics for the header.
	Index driving.IndexReader
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(querier driving.Querier, history driving.History, index driving.IndexReader) *Ports {
	return &Ports{
		Querier: querier,
		History: history,
		Index:   index,
	}
}

// Validate ensures all required ports are set.
// History and Index are optional: the transcript starts empty and the
// header omits index statistics when they are nil.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Querier == nil {
		return ErrMissingQueryService
	}
	return nil
}
