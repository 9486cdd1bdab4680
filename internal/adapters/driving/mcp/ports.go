package mcp

import (
	"github.com/custodia-labs/hgurn/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// URN translates identifiers and URNs.
	URN driving.URNService

	// Batch normalises lists and looks up recorded concordance. Optional.
	Batch driving.BatchService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.URN == nil {
		return ErrMissingURNService
	}
	return nil
}
