package domain

import "strings"

const unknownDescription = "Unknown"

// FirstFilterMonth and LastFilterMonth bound the months the datasets cover.
const (
	FirstFilterMonth = 1
	LastFilterMonth  = 6
)

var monthNames = map[int]string{
	1:  "January",
	2:  "February",
	3:  "March",
	4:  "April",
	5:  "May",
	6:  "June",
	7:  "July",
	8:  "August",
	9:  "September",
	10: "October",
	11: "November",
	12: "December",
}

var weekdayAbbreviations = map[string]string{
	"Mon": "Monday",
	"Tue": "Tuesday",
	"Wed": "Wednesday",
	"Thu": "Thursday",
	"Fri": "Friday",
	"Sat": "Saturday",
	"Sun": "Sunday",
}

// MonthName returns the English name of month 1..12.
func MonthName(month int) (string, bool) {
	name, ok := monthNames[month]
	return name, ok
}

// IsFilterMonth reports whether month lies in the range covered by the data.
func IsFilterMonth(month int) bool {
	return month >= FirstFilterMonth && month <= LastFilterMonth
}

// WeekdayFromAbbreviation maps "Mon".."Sun" to the full weekday name.
// The lookup ignores case.
func WeekdayFromAbbreviation(abbr string) (string, bool) {
	abbr = strings.TrimSpace(abbr)
	if len(abbr) != 3 {
		return "", false
	}
	key := strings.ToUpper(abbr[:1]) + strings.ToLower(abbr[1:])
	name, ok := weekdayAbbreviations[key]
	return name, ok
}

// WeekdayAbbreviations returns the accepted abbreviations, Monday first.
func WeekdayAbbreviations() []string {
	return []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
}

// IsWeekdayName reports whether name is a full English weekday name.
func IsWeekdayName(name string) bool {
	for _, full := range weekdayAbbreviations {
		if full == name {
			return true
		}
	}
	return false
}
