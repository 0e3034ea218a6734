package driving

import (
	"context"

	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
)

// FilterService narrows a trip table. Results preserve row order and never
// share mutable state with the input table.
type FilterService interface {
	// FilterByDate keeps trips that started on the given month (1-6) and day of month.
	FilterByDate(table *domain.TripTable, month, day int) *domain.TripTable

	// FilterByMonthDay keeps trips matching month (or domain.AllMonths) and
	// weekday name (or domain.AllWeekdays).
	FilterByMonthDay(table *domain.TripTable, month int, weekday string) *domain.TripTable

	// Apply dispatches on the query's mode.
	Apply(table *domain.TripTable, query domain.Query) (*domain.TripTable, error)
}

// StatsService computes the four statistic groups over a non-empty table.
// Every method returns domain.ErrNoMatches for an empty table.
type StatsService interface {
	TimeStats(table *domain.TripTable) (domain.TimeStats, error)
	StationStats(table *domain.TripTable) (domain.StationStats, error)
	DurationStats(table *domain.TripTable) (domain.DurationStats, error)
	UserStats(table *domain.TripTable) (domain.UserStats, error)

	// Summarize computes all four groups and how long each took.
	Summarize(ctx context.Context, table *domain.TripTable) (*domain.Report, error)
}

// Pager walks a table in fixed-size windows.
type Pager interface {
	// Next returns the current window and advances by one step.
	// Returns domain.ErrOutOfBounds, without advancing, if the window would
	// run past the end of the table.
	Next() (domain.Window, error)

	// Position returns the start index of the next window.
	Position() int

	// Step returns the window size.
	Step() int
}

// BrowseService pages through raw rows.
type BrowseService interface {
	// Window returns rows [start, start+step) or domain.ErrOutOfBounds.
	Window(table *domain.TripTable, start, step int) (domain.Window, error)

	// Browse starts paging at a user-supplied index.
	Browse(table *domain.TripTable, start, step int) (Pager, error)

	// BrowseFromStart starts paging at index 0.
	BrowseFromStart(table *domain.TripTable, step int) (Pager, error)
}

// ExplorerService drives one exploration session: it loads a city's table
// once and answers any number of queries against it.
type ExplorerService interface {
	// Load reads the city's trip table.
	Load(ctx context.Context, city domain.City) (*domain.TripTable, error)

	// Run filters the table per the query and summarises the result.
	// Returns domain.ErrNoMatches if no trips match.
	Run(ctx context.Context, table *domain.TripTable, query domain.Query) (*domain.Report, error)

	// Source describes where the city's data is read from.
	Source(city domain.City) string

	Filter() FilterService
	Stats() StatsService
	Browse() BrowseService
}
