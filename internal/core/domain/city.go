package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// City identifies one of the bike-share systems with recorded trip data.
type City string

// Supported cities.
const (
	// CityChicago is Chicago's Divvy system.
	CityChicago City = "chicago"

	// CityNewYork is New York City's Citi Bike system.
	CityNewYork City = "new_york_city"

	// CityWashington is Washington's Capital Bikeshare system.
	// Its records carry no gender or birth year.
	CityWashington City = "washington"
)

var cityNames = map[City]string{
	CityChicago:    "Chicago",
	CityNewYork:    "New York City",
	CityWashington: "Washington",
}

var cityFiles = map[City]string{
	CityChicago:    "chicago.csv",
	CityNewYork:    "new_york_city.csv",
	CityWashington: "washington.csv",
}

// AllCities returns the supported cities in menu order.
func AllCities() []City {
	return []City{CityChicago, CityNewYork, CityWashington}
}

// IsValid returns true if the city is supported.
func (c City) IsValid() bool {
	_, ok := cityNames[c]
	return ok
}

// String returns the string representation.
func (c City) String() string {
	return string(c)
}

// Name returns the display name, e.g. "New York City".
func (c City) Name() string {
	if name, ok := cityNames[c]; ok {
		return name
	}
	return unknownDescription
}

// FileName returns the default data file name for the city.
func (c City) FileName() string {
	return cityFiles[c]
}

// ParseCity resolves a city from its identifier, its display name
// or its 1-based menu index. Matching ignores case and surrounding space,
// and treats spaces, dashes and underscores alike.
func ParseCity(s string) (City, error) {
	s = strings.TrimSpace(s)
	if idx, err := strconv.Atoi(s); err == nil {
		cities := AllCities()
		if idx < 1 || idx > len(cities) {
			return "", fmt.Errorf("%w: %q", ErrUnknownCity, s)
		}
		return cities[idx-1], nil
	}

	normalised := strings.NewReplacer(" ", "_", "-", "_").Replace(strings.ToLower(s))
	switch normalised {
	case "nyc", "new_york":
		return CityNewYork, nil
	case "dc":
		return CityWashington, nil
	}

	c := City(normalised)
	if !c.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCity, s)
	}
	return c, nil
}
