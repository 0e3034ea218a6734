// Package tui provides an interactive terminal user interface for exploring
// bike-share trips. It implements a driving adapter following hexagonal
// architecture principles.
package tui

import (
	"github.com/custodia-labs/bikeshare-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
type Ports struct {
	// Explorer loads tables and runs queries.
	Explorer driving.ExplorerService

	// Settings supplies the default browse step. Optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Explorer == nil {
		return ErrMissingExplorerService
	}
	return nil
}

// defaultStep returns the configured browse step, or fallback.
func (p *Ports) defaultStep(fallback int) int {
	if p.Settings == nil {
		return fallback
	}
	if step := p.Settings.Get().DefaultStep; step > 0 {
		return step
	}
	return fallback
}
