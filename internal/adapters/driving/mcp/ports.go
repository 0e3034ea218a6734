package mcp

import (
	"github.com/custodia-labs/bikeshare-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP server.
type Ports struct {
	// Explorer loads tables and runs queries.
	Explorer driving.ExplorerService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Explorer == nil {
		return ErrMissingExplorerService
	}
	return nil
}
