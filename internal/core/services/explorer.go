package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
	"github.com/custodia-labs/bikeshare-cli/internal/core/ports/driven"
	"github.com/custodia-labs/bikeshare-cli/internal/core/ports/driving"
	"github.com/custodia-labs/bikeshare-cli/internal/logger"
)

// Ensure ExplorerService implements the interface.
var _ driving.ExplorerService = (*ExplorerService)(nil)

// ErrSourceNotConfigured is returned when no trip source was provided.
var ErrSourceNotConfigured = errors.New("trip source not configured")

// ExplorerService loads a city's trips and answers queries against them.
type ExplorerService struct {
	source driven.TripSource
	filter *FilterService
	stats  *StatsService
	browse *BrowseService
}

// NewExplorerService creates a new explorer over the given trip source.
func NewExplorerService(source driven.TripSource) *ExplorerService {
	return &ExplorerService{
		source: source,
		filter: NewFilterService(),
		stats:  NewStatsService(),
		browse: NewBrowseService(),
	}
}

// Load reads the city's trip table from the source.
func (s *ExplorerService) Load(ctx context.Context, city domain.City) (*domain.TripTable, error) {
	if s.source == nil {
		return nil, ErrSourceNotConfigured
	}
	if !city.IsValid() {
		return nil, fmt.Errorf("load: %w: %q", domain.ErrUnknownCity, city)
	}

	logger.Section("Load")
	logger.Debug("Loading %s from %s", city.Name(), s.source.Describe(city))

	start := time.Now()
	table, err := s.source.Load(ctx, city)
	if err != nil {
		logger.Warn("Loading %s failed: %v", city.Name(), err)
		return nil, fmt.Errorf("load %s: %w", city.Name(), err)
	}

	schema := table.Schema()
	logger.Info("Loaded %d trips for %s in %s", table.Len(), city.Name(), time.Since(start))
	logger.Debug("Schema: gender=%t birth_year=%t end_time=%t unit=%s",
		schema.HasGender, schema.HasBirthYear, schema.HasEndTime, schema.DurationUnit)
	return table, nil
}

// Run filters the table per the query and summarises the remaining trips.
// Raw browsing queries are not summarised; use Browse instead.
func (s *ExplorerService) Run(ctx context.Context, table *domain.TripTable, query domain.Query) (*domain.Report, error) {
	if query.Mode == domain.QueryModeRawBrowse {
		return nil, fmt.Errorf("%w: raw browsing has no report", domain.ErrInvalidInput)
	}

	subset, err := s.filter.Apply(table, query)
	if err != nil {
		return nil, err
	}
	if subset.IsEmpty() {
		logger.Info("No trips match %s", query.Describe())
		return nil, domain.ErrNoMatches
	}

	report, err := s.stats.Summarize(ctx, subset)
	if err != nil {
		return nil, err
	}
	report.Filter = query.Describe()
	return report, nil
}

// Source describes where the city's data is read from.
func (s *ExplorerService) Source(city domain.City) string {
	if s.source == nil {
		return ""
	}
	return s.source.Describe(city)
}

// Filter returns the filter engine.
func (s *ExplorerService) Filter() driving.FilterService {
	return s.filter
}

// Stats returns the aggregation engine.
func (s *ExplorerService) Stats() driving.StatsService {
	return s.stats
}

// Browse returns the pagination viewer.
func (s *ExplorerService) Browse() driving.BrowseService {
	return s.browse
}
