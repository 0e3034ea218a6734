package domain

// Schema describes which optional columns a city's data carries.
// City selection fixes the schema; statistics must consult it rather than
// assume optional columns exist.
type Schema struct {
	// HasEndTime is true if records carry an end time.
	HasEndTime bool

	// HasGender is true if the source has a gender column.
	HasGender bool

	// HasBirthYear is true if the source has a birth year column.
	HasBirthYear bool

	// DurationUnit labels TripRecord.Duration, e.g. "seconds".
	// It is passed through from the loader and never converted.
	DurationUnit string
}

// TripTable is an ordered, immutable collection of trips for one city.
// Filters never modify a table; they build a new one.
type TripTable struct {
	city   City
	schema Schema
	trips  []Trip
}

// NewTripTable creates a table that owns the given trips.
// The caller must not modify trips afterwards.
func NewTripTable(city City, schema Schema, trips []Trip) *TripTable {
	return &TripTable{city: city, schema: schema, trips: trips}
}

// City returns the city the trips belong to.
func (t *TripTable) City() City {
	return t.city
}

// Schema returns the optional-column layout of the table.
func (t *TripTable) Schema() Schema {
	return t.schema
}

// Len returns the number of trips.
func (t *TripTable) Len() int {
	return len(t.trips)
}

// IsEmpty reports whether the table has no trips.
func (t *TripTable) IsEmpty() bool {
	return len(t.trips) == 0
}

// At returns the i-th trip.
func (t *TripTable) At(i int) Trip {
	return t.trips[i]
}

// Each calls fn for every trip in order.
func (t *TripTable) Each(fn func(Trip)) {
	for _, trip := range t.trips {
		fn(trip)
	}
}

// Where returns a new table holding the trips for which keep returns true,
// in their original order.
func (t *TripTable) Where(keep func(Trip) bool) *TripTable {
	out := make([]Trip, 0, len(t.trips))
	for _, trip := range t.trips {
		if keep(trip) {
			out = append(out, trip)
		}
	}
	return &TripTable{city: t.city, schema: t.schema, trips: out}
}

// Records returns the recorded fields of trips [start, end), without
// derived fields. Bounds must be valid.
func (t *TripTable) Records(start, end int) []TripRecord {
	out := make([]TripRecord, 0, end-start)
	for _, trip := range t.trips[start:end] {
		out = append(out, trip.record)
	}
	return out
}
