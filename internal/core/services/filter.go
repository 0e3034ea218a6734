package services

import (
	"fmt"

	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
	"github.com/custodia-labs/bikeshare-cli/internal/core/ports/driving"
	"github.com/custodia-labs/bikeshare-cli/internal/logger"
)

// Ensure FilterService implements the interface.
var _ driving.FilterService = (*FilterService)(nil)

// FilterService narrows trip tables on their derived calendar fields.
type FilterService struct{}

// NewFilterService creates a new filter service.
func NewFilterService() *FilterService {
	return &FilterService{}
}

// FilterByDate keeps trips that started on the given month and day of month.
// A month outside the filterable range matches nothing.
func (s *FilterService) FilterByDate(table *domain.TripTable, month, day int) *domain.TripTable {
	name, ok := monthFilterName(month)
	if !ok {
		logger.Debug("Month %d outside %d-%d, no trips match", month, domain.FirstFilterMonth, domain.LastFilterMonth)
		return table.Where(func(domain.Trip) bool { return false })
	}

	out := table.Where(func(trip domain.Trip) bool {
		d := trip.Derived()
		return d.Day == day && d.Month == name
	})
	logger.Debug("Date filter %s %d: %d of %d trips", name, day, out.Len(), table.Len())
	return out
}

// FilterByMonthDay keeps trips matching the month and weekday.
// domain.AllMonths and domain.AllWeekdays impose no constraint on their axis.
func (s *FilterService) FilterByMonthDay(table *domain.TripTable, month int, weekday string) *domain.TripTable {
	anyMonth := month == domain.AllMonths
	anyWeekday := weekday == domain.AllWeekdays || weekday == ""

	if anyMonth && anyWeekday {
		logger.Debug("Month/day filter with no constraints, keeping %d trips", table.Len())
		return table
	}

	var name string
	if !anyMonth {
		var ok bool
		if name, ok = monthFilterName(month); !ok {
			logger.Debug("Month %d outside %d-%d, no trips match", month, domain.FirstFilterMonth, domain.LastFilterMonth)
			return table.Where(func(domain.Trip) bool { return false })
		}
	}

	out := table.Where(func(trip domain.Trip) bool {
		d := trip.Derived()
		if !anyWeekday && d.Weekday != weekday {
			return false
		}
		return anyMonth || d.Month == name
	})
	logger.Debug("Month/day filter month=%d weekday=%s: %d of %d trips", month, weekday, out.Len(), table.Len())
	return out
}

// Apply filters the table according to the query's mode.
// Raw browsing and unfiltered statistics use the table as is.
func (s *FilterService) Apply(table *domain.TripTable, query domain.Query) (*domain.TripTable, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("apply filter: %w", err)
	}

	switch query.Mode {
	case domain.QueryModeDate:
		return s.FilterByDate(table, query.Month, query.Day), nil
	case domain.QueryModeMonthDay:
		return s.FilterByMonthDay(table, query.Month, query.Weekday), nil
	default:
		return table, nil
	}
}

func monthFilterName(month int) (string, bool) {
	if !domain.IsFilterMonth(month) {
		return "", false
	}
	return domain.MonthName(month)
}
