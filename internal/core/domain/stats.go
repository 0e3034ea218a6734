package domain

import "time"

// TimeStats holds the most frequent times of travel.
type TimeStats struct {
	Month   string `json:"month"`
	Weekday string `json:"weekday"`
	Hour    int    `json:"hour"`
}

// StationStats holds the most popular stations and trip.
type StationStats struct {
	StartStation string `json:"start_station"`
	EndStation   string `json:"end_station"`
	Path         Path   `json:"path"`

	// PathCount is the number of trips along Path.
	PathCount int `json:"path_count"`
}

// DurationStats holds total and mean trip duration.
type DurationStats struct {
	Total float64 `json:"total"`
	Mean  float64 `json:"mean"`
	Count int     `json:"count"`
	Unit  string  `json:"unit"`
}

// BirthYearStats holds birth-year statistics over rows that have one.
type BirthYearStats struct {
	MostCommon int `json:"most_common"`
	MostRecent int `json:"most_recent"`
	Earliest   int `json:"earliest"`
}

// UserStats holds counts of user types and, where the city records them,
// gender counts and birth-year statistics.
type UserStats struct {
	Subscribers int `json:"subscribers"`
	Customers   int `json:"customers"`

	// Gender is nil when the table has no gender column.
	Gender *GenderCounts `json:"gender,omitempty"`

	// BirthYear is nil when the table has no birth year column or no row
	// in the subset carries one.
	BirthYear *BirthYearStats `json:"birth_year,omitempty"`
}

// GenderCounts holds the number of trips per recorded gender.
type GenderCounts struct {
	Male   int `json:"male"`
	Female int `json:"female"`
}

// Timings records how long each statistic group took to compute.
type Timings struct {
	Time     time.Duration `json:"time"`
	Station  time.Duration `json:"station"`
	Duration time.Duration `json:"duration"`
	User     time.Duration `json:"user"`
}

// Report is the full set of statistics for one table.
type Report struct {
	City     City          `json:"city"`
	Filter   string        `json:"filter"`
	Trips    int           `json:"trips"`
	Time     TimeStats     `json:"time"`
	Station  StationStats  `json:"station"`
	Duration DurationStats `json:"duration"`
	User     UserStats     `json:"user"`
	Timings  Timings       `json:"timings"`
}
