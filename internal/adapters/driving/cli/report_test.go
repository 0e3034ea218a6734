package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
)

func sampleReport() *domain.Report {
	return &domain.Report{
		City:   domain.CityChicago,
		Filter: "no filters",
		Trips:  2500,
		Time:   domain.TimeStats{Month: "June", Weekday: "Wednesday", Hour: 17},
		Station: domain.StationStats{
			StartStation: "Streeter Dr & Grand Ave",
			EndStation:   "Lake Shore Dr & Monroe St",
			Path:         domain.Path{Start: "Lake Shore Dr & Monroe St", End: "Streeter Dr & Grand Ave"},
			PathCount:    1250,
		},
		Duration: domain.DurationStats{Total: 1234567.891, Mean: 936.234, Count: 2500, Unit: "seconds"},
		User: domain.UserStats{
			Subscribers: 2000,
			Customers:   500,
			Gender:      &domain.GenderCounts{Male: 1500, Female: 480},
			BirthYear:   &domain.BirthYearStats{MostCommon: 1989, MostRecent: 2016, Earliest: 1899},
		},
		Timings: domain.Timings{Time: 1500 * time.Microsecond},
	}
}

func TestFormatSeconds(t *testing.T) {
	assert.Equal(t, "0", formatSeconds(0))
	assert.Equal(t, "0.002", formatSeconds(1500*time.Microsecond))
	assert.Equal(t, "1.25", formatSeconds(1250*time.Millisecond))
}

func TestSeparatorWidth_NonTerminal(t *testing.T) {
	assert.Equal(t, maxSeparatorWidth, separatorWidth(new(bytes.Buffer)))
}

func TestReportWriter_WriteReport(t *testing.T) {
	buf := new(bytes.Buffer)

	newReportWriter(buf).writeReport(sampleReport())
	out := buf.String()

	for _, want := range []string{
		"THE MOST FREQUENT TIMES OF TRAVEL",
		"Most popular month: June",
		"Most popular day of the week: Wednesday",
		"Most popular hour of the day: 17",
		"MOST POPULAR STATIONS AND TRIP",
		"Most popular Start Station: Streeter Dr & Grand Ave",
		"Most popular path: From Lake Shore Dr & Monroe St to Streeter Dr & Grand Ave (1,250 trips)",
		"TRIP DURATION",
		"Average time taken per trip (seconds): 936.23",
		"Total time travelled (seconds): 1,234,567.89",
		"USER STATISTICS",
		"Number of Subscribers: 2,000",
		"Number of Customers: 500",
		"Number of Males: 1,500",
		"Number of Females: 480",
		"Most common birth year: 1989",
		"Most recent birth year: 2016",
		"Earliest birth year: 1899",
		"This took 0.002 seconds.",
	} {
		assert.Contains(t, out, want)
	}
	assert.Equal(t, 8, strings.Count(out, strings.Repeat("-", maxSeparatorWidth)))
}

func TestReportWriter_WriteReport_WithoutDemographics(t *testing.T) {
	r := sampleReport()
	r.User.Gender = nil
	r.User.BirthYear = nil
	buf := new(bytes.Buffer)

	newReportWriter(buf).writeReport(r)

	assert.Contains(t, buf.String(), "Number of Subscribers")
	assert.NotContains(t, buf.String(), "Males")
	assert.NotContains(t, buf.String(), "birth year")
}

func TestReportWriter_WriteWindow(t *testing.T) {
	recs := chicagoRecords()[:2]
	buf := new(bytes.Buffer)

	newReportWriter(buf).writeWindow(domain.Window{Start: 4, Step: 2, Rows: recs}, chicagoSchema)
	out := buf.String()

	assert.Contains(t, out, "Start Station")
	assert.Contains(t, out, "Birth Year")
	assert.Contains(t, out, "2017-03-03 09:00:00")
	assert.Equal(t, 2, strings.Count(out, "Canal St & Madison St"))
}

func TestReportWriter_WriteWindow_OptionalColumns(t *testing.T) {
	buf := new(bytes.Buffer)

	newReportWriter(buf).writeWindow(domain.Window{Step: 1, Rows: chicagoRecords()[:1]}, domain.Schema{})

	assert.NotContains(t, buf.String(), "End Time")
	assert.NotContains(t, buf.String(), "Gender")
	assert.NotContains(t, buf.String(), "Birth Year")
}

func TestWindowRow(t *testing.T) {
	rec := domain.TripRecord{
		StartTime:    time.Date(2017, time.January, 1, 0, 7, 57, 0, time.UTC),
		StartStation: "A",
		EndStation:   "B",
		Duration:     42.5,
		UserType:     domain.UserTypeCustomer,
	}

	row := windowRow(7, rec, chicagoSchema)

	assert.Equal(t, []string{"7", "2017-01-01 00:07:57", "", "42.5", "A", "B", "Customer", "", ""}, row)
}
