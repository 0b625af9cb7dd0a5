package mcp

import (
	"github.com/openparl/parliament-mcp/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search provides the Hansard and written-question search surfaces.
	Search driving.ParliamentSearch

	// Members provides the member directory. Optional; without it the
	// members tools are not registered.
	Members driving.MemberDirectory
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	return nil
}
