package mcp

import (
	"github.com/custodia-labs/pwc-mcp/internal/core/ports/driving"
	"github.com/custodia-labs/pwc-mcp/internal/observability"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Research invokes catalogue operations.
	Research driving.ResearchService

	// Document reads papers by URL.
	Document driving.DocumentService

	// Metrics records tool calls. Optional.
	Metrics *observability.Metrics
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Research == nil {
		return ErrMissingResearchService
	}
	if p.Document == nil {
		return ErrMissingDocumentService
	}
	return nil
}
