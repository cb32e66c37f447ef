package mcp

import (
	"github.com/kvault-labs/kvault-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Querier answers questions grounded in the vault.
	Querier driving.Querier

	// Ingestor adds documents to the vault.
	Ingestor driving.Ingestor

	// Index exposes read-only index statistics.
	Index driving.IndexReader

	// History exposes the conversation memory.
	History driving.History
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Querier == nil {
		return ErrMissingQuerier
	}
	// Ingestor, Index and History are optional; their tools degrade.
	return nil
}
