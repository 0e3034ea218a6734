// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/bikeshare-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/bikeshare-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
)

// State represents the current application state for display.
type State string

const (
	StateReady   State = "ready"
	StateLoading State = "loading"
	StateLoaded  State = "loaded"
	StateRunning State = "running"
	StateError   State = "error"
)

// Bar displays the loaded city and keybinding hints.
type Bar struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	bindings []key.Binding
	state    State
	message  string
	city     domain.City
	trips    int
	elapsed  time.Duration
	width    int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles:   s,
		keymap:   km,
		bindings: km.ShortHelp(),
		state:    StateReady,
		width:    80,
	}
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	inner := s.width - s.styles.StatusBar.GetHorizontalFrameSize()
	padding := inner - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

func (s *Bar) renderLeft() string {
	switch s.state {
	case StateLoading:
		return s.styles.Muted.Render(fmt.Sprintf("Loading %s...", s.city.Name()))
	case StateRunning:
		return s.styles.Muted.Render("Computing statistics...")
	case StateError:
		if s.message != "" {
			return s.styles.Error.Render("Error: " + s.message)
		}
		return s.styles.Error.Render("Error")
	case StateLoaded:
		return s.styles.Normal.Render(fmt.Sprintf("%s: %d trips (loaded in %.3fs)",
			s.city.Name(), s.trips, s.elapsed.Seconds()))
	}
	return s.styles.Muted.Render("Ready")
}

func (s *Bar) renderRight() string {
	hints := make([]string, 0, len(s.bindings))
	for _, b := range s.bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetLoading marks a load of city as in progress.
func (s *Bar) SetLoading(city domain.City) {
	s.state = StateLoading
	s.city = city
	s.message = ""
}

// SetLoaded records a completed load.
func (s *Bar) SetLoaded(city domain.City, trips int, elapsed time.Duration) {
	s.state = StateLoaded
	s.city = city
	s.trips = trips
	s.elapsed = elapsed
	s.message = ""
}

// SetRunning marks a query as in progress.
func (s *Bar) SetRunning() {
	s.state = StateRunning
}

// SetError shows an error message.
func (s *Bar) SetError(err error) {
	s.state = StateError
	s.message = err.Error()
}

// SetBindings replaces the keybinding hints.
func (s *Bar) SetBindings(bindings []key.Binding) {
	s.bindings = bindings
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// Message returns the current error message.
func (s *Bar) Message() string {
	return s.message
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Clear resets the status bar to its initial state.
func (s *Bar) Clear() {
	s.state = StateReady
	s.message = ""
	s.city = ""
	s.trips = 0
	s.elapsed = 0
	s.bindings = s.keymap.ShortHelp()
}
