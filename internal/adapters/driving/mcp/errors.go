// Package mcp provides an MCP (Model Context Protocol) server adapter that
// lets AI assistants query bike-share statistics over stdio.
package mcp

import "errors"

// ErrMissingExplorerService is returned when the explorer service is not provided.
var ErrMissingExplorerService = errors.New("mcp: explorer service is required")
