package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tripsAt(stations ...string) []Trip {
	trips := make([]Trip, 0, len(stations))
	base := time.Date(2017, time.January, 2, 8, 0, 0, 0, time.UTC)
	for i, s := range stations {
		trips = append(trips, NewTrip(TripRecord{
			StartTime:    base.Add(time.Duration(i) * time.Hour),
			StartStation: s,
			EndStation:   s,
			Duration:     float64(i + 1),
		}))
	}
	return trips
}

func TestTripTable_Accessors(t *testing.T) {
	schema := Schema{HasGender: true, DurationUnit: "seconds"}
	table := NewTripTable(CityChicago, schema, tripsAt("A", "B", "C"))

	assert.Equal(t, CityChicago, table.City())
	assert.Equal(t, schema, table.Schema())
	assert.Equal(t, 3, table.Len())
	assert.False(t, table.IsEmpty())
	assert.Equal(t, "B", table.At(1).Record().StartStation)
}

func TestTripTable_WherePreservesOrderAndSource(t *testing.T) {
	table := NewTripTable(CityNewYork, Schema{}, tripsAt("A", "B", "A", "C", "A"))

	subset := table.Where(func(trip Trip) bool { return trip.Record().StartStation == "A" })

	require.Equal(t, 3, subset.Len())
	assert.Equal(t, 1.0, subset.At(0).Record().Duration)
	assert.Equal(t, 3.0, subset.At(1).Record().Duration)
	assert.Equal(t, 5.0, subset.At(2).Record().Duration)
	assert.Equal(t, CityNewYork, subset.City())
	assert.Equal(t, 5, table.Len(), "source table must be unchanged")
}

func TestTripTable_WhereEmpty(t *testing.T) {
	table := NewTripTable(CityNewYork, Schema{}, tripsAt("A"))

	subset := table.Where(func(Trip) bool { return false })

	assert.True(t, subset.IsEmpty())
	assert.Equal(t, 0, subset.Len())
}

func TestTripTable_Records(t *testing.T) {
	table := NewTripTable(CityChicago, Schema{}, tripsAt("A", "B", "C", "D"))

	recs := table.Records(1, 3)

	require.Len(t, recs, 2)
	assert.Equal(t, "B", recs[0].StartStation)
	assert.Equal(t, "C", recs[1].StartStation)
}

func TestTripTable_Each(t *testing.T) {
	table := NewTripTable(CityChicago, Schema{}, tripsAt("A", "B", "C"))

	var seen []string
	table.Each(func(trip Trip) { seen = append(seen, trip.Record().StartStation) })

	assert.Equal(t, []string{"A", "B", "C"}, seen)
}
