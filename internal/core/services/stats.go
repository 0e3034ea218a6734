package services

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
	"github.com/custodia-labs/bikeshare-cli/internal/core/ports/driving"
	"github.com/custodia-labs/bikeshare-cli/internal/logger"
)

// Ensure StatsService implements the interface.
var _ driving.StatsService = (*StatsService)(nil)

// StatsService computes read-only reductions over trip tables.
// The four groups are independent of each other.
type StatsService struct {
	now func() time.Time
}

// NewStatsService creates a new statistics service.
func NewStatsService() *StatsService {
	return &StatsService{now: time.Now}
}

// TimeStats returns the most frequent month, weekday and hour.
func (s *StatsService) TimeStats(table *domain.TripTable) (domain.TimeStats, error) {
	if table.IsEmpty() {
		return domain.TimeStats{}, domain.ErrNoMatches
	}

	months := counter[string]{}
	weekdays := counter[string]{}
	hours := counter[int]{}
	table.Each(func(trip domain.Trip) {
		d := trip.Derived()
		months.add(d.Month)
		weekdays.add(d.Weekday)
		hours.add(d.Hour)
	})

	month, _ := modeOrdered(months)
	weekday, _ := modeOrdered(weekdays)
	hour, _ := modeOrdered(hours)
	return domain.TimeStats{Month: month, Weekday: weekday, Hour: hour}, nil
}

// StationStats returns the most popular start station, end station and path.
func (s *StatsService) StationStats(table *domain.TripTable) (domain.StationStats, error) {
	if table.IsEmpty() {
		return domain.StationStats{}, domain.ErrNoMatches
	}

	starts := counter[string]{}
	ends := counter[string]{}
	paths := counter[domain.Path]{}
	table.Each(func(trip domain.Trip) {
		rec := trip.Record()
		starts.add(rec.StartStation)
		ends.add(rec.EndStation)
		paths.add(trip.Path())
	})

	start, _ := modeOrdered(starts)
	end, _ := modeOrdered(ends)
	path, count := modeOf(paths, domain.Path.Less)
	return domain.StationStats{
		StartStation: start,
		EndStation:   end,
		Path:         path,
		PathCount:    count,
	}, nil
}

// DurationStats returns the total and mean trip duration.
func (s *StatsService) DurationStats(table *domain.TripTable) (domain.DurationStats, error) {
	if table.IsEmpty() {
		return domain.DurationStats{}, domain.ErrNoMatches
	}

	var total float64
	table.Each(func(trip domain.Trip) {
		total += trip.Record().Duration
	})

	return domain.DurationStats{
		Total: total,
		Mean:  total / float64(table.Len()),
		Count: table.Len(),
		Unit:  table.Schema().DurationUnit,
	}, nil
}

// UserStats counts user types and, where the table's schema has them,
// genders and birth years. Rows with a blank gender or birth year are skipped.
func (s *StatsService) UserStats(table *domain.TripTable) (domain.UserStats, error) {
	if table.IsEmpty() {
		return domain.UserStats{}, domain.ErrNoMatches
	}

	schema := table.Schema()
	var stats domain.UserStats
	var gender domain.GenderCounts
	years := counter[int]{}
	minYear, maxYear := 0, 0

	table.Each(func(trip domain.Trip) {
		rec := trip.Record()
		switch rec.UserType {
		case domain.UserTypeSubscriber:
			stats.Subscribers++
		case domain.UserTypeCustomer:
			stats.Customers++
		}

		if schema.HasGender {
			switch rec.Gender {
			case domain.GenderMale:
				gender.Male++
			case domain.GenderFemale:
				gender.Female++
			}
		}

		if schema.HasBirthYear && rec.HasBirthYear() {
			years.add(rec.BirthYear)
			if minYear == 0 || rec.BirthYear < minYear {
				minYear = rec.BirthYear
			}
			if rec.BirthYear > maxYear {
				maxYear = rec.BirthYear
			}
		}
	})

	if schema.HasGender {
		stats.Gender = &gender
	}
	if len(years) > 0 {
		common, _ := modeOrdered(years)
		stats.BirthYear = &domain.BirthYearStats{
			MostCommon: common,
			MostRecent: maxYear,
			Earliest:   minYear,
		}
	}

	return stats, nil
}

// Summarize computes all four statistic groups and records how long each took.
func (s *StatsService) Summarize(ctx context.Context, table *domain.TripTable) (*domain.Report, error) {
	if table.IsEmpty() {
		return nil, domain.ErrNoMatches
	}

	logger.Section("Statistics")
	report := &domain.Report{
		City:  table.City(),
		Trips: table.Len(),
	}

	steps := []struct {
		name    string
		elapsed *time.Duration
		run     func() error
	}{
		{"time", &report.Timings.Time, func() (err error) {
			report.Time, err = s.TimeStats(table)
			return err
		}},
		{"station", &report.Timings.Station, func() (err error) {
			report.Station, err = s.StationStats(table)
			return err
		}},
		{"duration", &report.Timings.Duration, func() (err error) {
			report.Duration, err = s.DurationStats(table)
			return err
		}},
		{"user", &report.Timings.User, func() (err error) {
			report.User, err = s.UserStats(table)
			return err
		}},
	}

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		start := s.now()
		if err := step.run(); err != nil {
			return nil, fmt.Errorf("%s stats: %w", step.name, err)
		}
		*step.elapsed = s.now().Sub(start)
		logger.Debug("%s stats over %d trips took %s", step.name, table.Len(), *step.elapsed)
	}

	return report, nil
}
