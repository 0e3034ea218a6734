package domain

import (
	"fmt"
	"strings"
	"time"
)

// Recognised user types. Other values (e.g. "Dependent") are kept on the
// record but not counted.
const (
	UserTypeSubscriber = "Subscriber"
	UserTypeCustomer   = "Customer"
)

// Recognised genders.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
)

// TripRecord holds the fields recorded for one rental, exactly as loaded.
type TripRecord struct {
	// StartTime is when the bike was taken out.
	StartTime time.Time

	// EndTime is when the bike was returned. Zero if the source has no end time.
	EndTime time.Time

	// StartStation is the name of the departure station.
	StartStation string

	// EndStation is the name of the arrival station.
	EndStation string

	// Duration is the trip length in the unit named by Schema.DurationUnit.
	Duration float64

	// UserType is usually Subscriber or Customer.
	UserType string

	// Gender is empty when unknown or when the city records no gender.
	Gender string

	// BirthYear is 0 when unknown or when the city records no birth year.
	BirthYear int
}

// HasBirthYear reports whether the record carries a birth year.
func (r TripRecord) HasBirthYear() bool {
	return r.BirthYear > 0
}

// Path is an ordered (start station, end station) pair.
type Path struct {
	Start string
	End   string
}

// Less orders paths by start station, then end station.
func (p Path) Less(other Path) bool {
	if p.Start != other.Start {
		return p.Start < other.Start
	}
	return p.End < other.End
}

// Derived holds the calendar fields computed from a trip's start time.
type Derived struct {
	// Month is the English month name, e.g. "June".
	Month string

	// Weekday is the English weekday name, e.g. "Monday".
	Weekday string

	// Hour is the hour of day, 0-23.
	Hour int

	// Day is the day of month, 1-31.
	Day int
}

// Trip is a record together with its derived fields.
// Derived fields are computed once by NewTrip and never change.
type Trip struct {
	record  TripRecord
	derived Derived
}

// NewTrip builds a trip and derives its calendar fields from the start time.
func NewTrip(rec TripRecord) Trip {
	month, _ := MonthName(int(rec.StartTime.Month()))
	return Trip{
		record: rec,
		derived: Derived{
			Month:   month,
			Weekday: rec.StartTime.Weekday().String(),
			Hour:    rec.StartTime.Hour(),
			Day:     rec.StartTime.Day(),
		},
	}
}

// Record returns the recorded fields.
func (t Trip) Record() TripRecord {
	return t.record
}

// Derived returns the derived calendar fields.
func (t Trip) Derived() Derived {
	return t.derived
}

// Path returns the trip's (start, end) station pair.
func (t Trip) Path() Path {
	return Path{Start: t.record.StartStation, End: t.record.EndStation}
}

// timestampLayouts are the accepted trip timestamp formats, tried in order.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04",
}

// ParseTimestamp parses a trip start or end time.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unrecognised timestamp %q", ErrInvalidInput, s)
}
