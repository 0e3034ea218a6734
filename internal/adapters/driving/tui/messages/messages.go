// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"time"

	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewCities is the city selection menu.
	ViewCities ViewType = iota
	// ViewActions lists what can be done with the loaded city.
	ViewActions
	// ViewFilter is the date or month/weekday filter form.
	ViewFilter
	// ViewReport shows the statistics of a query.
	ViewReport
	// ViewRows pages through raw rows.
	ViewRows
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewCities:
		return "cities"
	case ViewActions:
		return "actions"
	case ViewFilter:
		return "filter"
	case ViewReport:
		return "report"
	case ViewRows:
		return "rows"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// CitySelected asks for a city's table to be loaded.
type CitySelected struct {
	City domain.City
}

// TableLoaded carries a loaded table, or the load error.
type TableLoaded struct {
	City    domain.City
	Table   *domain.TripTable
	Elapsed time.Duration
	Err     error
}

// ActionSelected is sent when an entry of the action menu is chosen.
type ActionSelected struct {
	Mode domain.QueryMode
}

// QuerySubmitted asks for a statistics query to be run.
type QuerySubmitted struct {
	Query domain.Query
}

// ReportReady carries the result of a statistics query.
type ReportReady struct {
	Query  domain.Query
	Report *domain.Report
	Err    error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
