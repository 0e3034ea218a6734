package driving

import "github.com/custodia-labs/bikeshare-cli/internal/core/domain"

// Settings is the typed view of the explorer's configuration.
type Settings struct {
	// DataDir holds the per-city CSV files.
	DataDir string

	// Source selects the trip source kind: "csv" or "sqlite".
	Source string

	// SQLitePath is the database file used when Source is "sqlite".
	SQLitePath string

	// DurationUnit labels trip durations in reports.
	DurationUnit string

	// Files maps a city to its CSV file name, relative to DataDir unless absolute.
	Files map[domain.City]string

	// DefaultStep is the window size offered when browsing raw rows.
	DefaultStep int

	// StrictRows makes a CSV row without a usable trip duration fail the load
	// instead of being skipped.
	StrictRows bool
}

// SettingsService resolves settings from configuration and defaults.
type SettingsService interface {
	// Get returns the current settings.
	Get() Settings
}
