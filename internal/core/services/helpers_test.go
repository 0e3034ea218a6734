package services

import (
	"time"

	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
)

// tripAt builds a trip starting at the given time.
func tripAt(start time.Time, from, to string, duration float64, userType string) domain.Trip {
	return domain.NewTrip(domain.TripRecord{
		StartTime:    start,
		EndTime:      start.Add(time.Duration(duration) * time.Second),
		StartStation: from,
		EndStation:   to,
		Duration:     duration,
		UserType:     userType,
	})
}

func day(month time.Month, d, hour int) time.Time {
	return time.Date(2017, month, d, hour, 0, 0, 0, time.UTC)
}

// sampleTable returns eight trips across the first half of 2017.
//
//	idx  date        weekday    hour  path   dur
//	0    Jan 2       Monday     8     A->B   100
//	1    Jan 2       Monday     9     A->B   200
//	2    Jan 9       Monday     8     C->D   300
//	3    Mar 14      Tuesday    17    A->C   400
//	4    Mar 14      Tuesday    17    B->A   500
//	5    Jun 23      Friday     8     A->B   600
//	6    Jun 24      Saturday   12    D->C   700
//	7    Jun 2       Friday     8     C->D   800
func sampleTable(schema domain.Schema) *domain.TripTable {
	trips := []domain.Trip{
		tripAt(day(time.January, 2, 8), "A", "B", 100, domain.UserTypeSubscriber),
		tripAt(day(time.January, 2, 9), "A", "B", 200, domain.UserTypeCustomer),
		tripAt(day(time.January, 9, 8), "C", "D", 300, domain.UserTypeSubscriber),
		tripAt(day(time.March, 14, 17), "A", "C", 400, domain.UserTypeSubscriber),
		tripAt(day(time.March, 14, 17), "B", "A", 500, domain.UserTypeCustomer),
		tripAt(day(time.June, 23, 8), "A", "B", 600, domain.UserTypeSubscriber),
		tripAt(day(time.June, 24, 12), "D", "C", 700, "Dependent"),
		tripAt(day(time.June, 2, 8), "C", "D", 800, domain.UserTypeSubscriber),
	}
	return domain.NewTripTable(domain.CityChicago, schema, trips)
}

func durations(table *domain.TripTable) []float64 {
	out := make([]float64, 0, table.Len())
	table.Each(func(trip domain.Trip) { out = append(out, trip.Record().Duration) })
	return out
}
