package domain

import "fmt"

// QueryMode selects what the explorer does with a city's table.
type QueryMode string

// Available query modes, in menu order.
const (
	// QueryModeRawBrowse pages through raw rows.
	QueryModeRawBrowse QueryMode = "raw"

	// QueryModeDate summarises the trips of one calendar date.
	QueryModeDate QueryMode = "date"

	// QueryModeMonthDay summarises trips filtered by month and/or weekday.
	QueryModeMonthDay QueryMode = "month_day"

	// QueryModeUnfiltered summarises every trip.
	QueryModeUnfiltered QueryMode = "unfiltered"
)

// AllMonths means the month axis imposes no constraint.
const AllMonths = 0

// AllWeekdays means the weekday axis imposes no constraint.
const AllWeekdays = "all"

// AllQueryModes returns the query modes in menu order.
func AllQueryModes() []QueryMode {
	return []QueryMode{QueryModeRawBrowse, QueryModeDate, QueryModeMonthDay, QueryModeUnfiltered}
}

// IsValid returns true if the mode is recognised.
func (m QueryMode) IsValid() bool {
	switch m {
	case QueryModeRawBrowse, QueryModeDate, QueryModeMonthDay, QueryModeUnfiltered:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (m QueryMode) String() string {
	return string(m)
}

// Description returns the menu label of the mode.
func (m QueryMode) Description() string {
	switch m {
	case QueryModeRawBrowse:
		return "Explore the data on my own (raw data)."
	case QueryModeDate:
		return "Look at the entries for a specific date."
	case QueryModeMonthDay:
		return "Filter the data (by month/day/both)."
	case QueryModeUnfiltered:
		return "Get some general information (no filters)."
	default:
		return unknownDescription
	}
}

// Query is a validated request against one city's table.
type Query struct {
	// City is the city whose table the query runs against.
	City City

	// Mode selects the filter.
	Mode QueryMode

	// Month is 1-6 for QueryModeDate, 1-6 or AllMonths for QueryModeMonthDay.
	Month int

	// Day is the day of month for QueryModeDate.
	Day int

	// Weekday is a full weekday name or AllWeekdays for QueryModeMonthDay.
	Weekday string
}

// DateQuery builds a query for one calendar date.
func DateQuery(city City, month, day int) Query {
	return Query{City: city, Mode: QueryModeDate, Month: month, Day: day}
}

// MonthDayQuery builds a query filtered by month and weekday.
// An empty weekday is treated as AllWeekdays.
func MonthDayQuery(city City, month int, weekday string) Query {
	if weekday == "" {
		weekday = AllWeekdays
	}
	return Query{City: city, Mode: QueryModeMonthDay, Month: month, Weekday: weekday}
}

// UnfilteredQuery builds a query over the whole table.
func UnfilteredQuery(city City) Query {
	return Query{City: city, Mode: QueryModeUnfiltered}
}

// Validate checks the query's arguments against its mode.
func (q Query) Validate() error {
	if !q.City.IsValid() {
		return fmt.Errorf("%w: city %q", ErrUnknownCity, q.City)
	}
	switch q.Mode {
	case QueryModeDate:
		if !IsFilterMonth(q.Month) {
			return fmt.Errorf("%w: month %d not in %d-%d", ErrInvalidInput, q.Month, FirstFilterMonth, LastFilterMonth)
		}
		if q.Day < 1 || q.Day > 31 {
			return fmt.Errorf("%w: day %d not in 1-31", ErrInvalidInput, q.Day)
		}
	case QueryModeMonthDay:
		if q.Month != AllMonths && !IsFilterMonth(q.Month) {
			return fmt.Errorf("%w: month %d not in %d-%d", ErrInvalidInput, q.Month, FirstFilterMonth, LastFilterMonth)
		}
		if q.Weekday != AllWeekdays && !IsWeekdayName(q.Weekday) {
			return fmt.Errorf("%w: weekday %q", ErrInvalidInput, q.Weekday)
		}
	case QueryModeRawBrowse, QueryModeUnfiltered:
	default:
		return fmt.Errorf("%w: mode %q", ErrInvalidInput, q.Mode)
	}
	return nil
}

// Describe returns a short human-readable summary of the filter.
func (q Query) Describe() string {
	switch q.Mode {
	case QueryModeDate:
		month, _ := MonthName(q.Month)
		return fmt.Sprintf("%s %d", month, q.Day)
	case QueryModeMonthDay:
		month := "all months"
		if name, ok := MonthName(q.Month); ok {
			month = name
		}
		weekday := "all days"
		if q.Weekday != AllWeekdays {
			weekday = q.Weekday
		}
		return month + ", " + weekday
	default:
		return "no filters"
	}
}
