package cli

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
)

func TestStatsCmd_Unfiltered(t *testing.T) {
	setupTestServices(t, nil)

	out, err := runCommand(t, "", "stats", "--city", "chicago")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Chicago: 12 trips (no filters)\n"))
	assert.Contains(t, out, "Most popular month: March")
	assert.Contains(t, out, "USER STATISTICS")
}

func TestStatsCmd_Date(t *testing.T) {
	setupTestServices(t, nil)

	out, err := runCommand(t, "", "stats", "-c", "1", "-m", "3", "-d", "5")

	require.NoError(t, err)
	assert.Contains(t, out, "Chicago: 1 trips (March 5)")
}

func TestStatsCmd_Weekday(t *testing.T) {
	setupTestServices(t, nil)

	out, err := runCommand(t, "", "stats", "-c", "Chicago", "-w", "fri")

	require.NoError(t, err)
	assert.Contains(t, out, "Chicago: 2 trips (all months, Friday)")
}

func TestStatsCmd_NoMatches(t *testing.T) {
	setupTestServices(t, nil)

	out, err := runCommand(t, "", "stats", "-c", "chicago", "-m", "4", "-d", "1")

	require.NoError(t, err)
	assert.Contains(t, out, noMatchesMessage)
}

func TestStatsCmd_JSON(t *testing.T) {
	setupTestServices(t, nil)

	out, err := runCommand(t, "", "stats", "-c", "chicago", "--json")
	require.NoError(t, err)

	var report domain.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, domain.CityChicago, report.City)
	assert.Equal(t, 12, report.Trips)
	assert.Equal(t, "March", report.Time.Month)
	require.NotNil(t, report.User.Gender)
	assert.Equal(t, 12, report.User.Gender.Male)
}

func TestStatsCmd_RequiresCity(t *testing.T) {
	setupTestServices(t, nil)

	_, err := runCommand(t, "", "stats")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `"city" not set`)
}

func TestStatsCmd_UnknownCity(t *testing.T) {
	setupTestServices(t, nil)

	_, err := runCommand(t, "", "stats", "-c", "boston")

	assert.ErrorIs(t, err, domain.ErrUnknownCity)
}

func TestStatsCmd_LoadError(t *testing.T) {
	source := setupTestServices(t, nil)
	source.Fail(domain.CityChicago, errors.New("permission denied"))

	_, err := runCommand(t, "", "stats", "-c", "chicago")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "permission denied")
}

func TestBuildQuery(t *testing.T) {
	city := domain.CityWashington

	tests := []struct {
		name    string
		month   string
		day     int
		weekday string
		want    domain.Query
		wantErr error
	}{
		{name: "no filters", want: domain.UnfilteredQuery(city)},
		{name: "date", month: "2", day: 28, want: domain.DateQuery(city, 2, 28)},
		{name: "month", month: "6", want: domain.MonthDayQuery(city, 6, domain.AllWeekdays)},
		{name: "month all", month: "all", want: domain.MonthDayQuery(city, domain.AllMonths, domain.AllWeekdays)},
		{name: "weekday", weekday: "Tue", want: domain.MonthDayQuery(city, domain.AllMonths, "Tuesday")},
		{name: "weekday all", month: "1", weekday: "ALL", want: domain.MonthDayQuery(city, 1, domain.AllWeekdays)},
		{name: "day without month", day: 3, wantErr: domain.ErrInvalidInput},
		{name: "day with weekday", month: "1", day: 3, weekday: "Mon", wantErr: domain.ErrInvalidInput},
		{name: "month out of range", month: "7", wantErr: domain.ErrInvalidInput},
		{name: "day out of range", month: "1", day: 32, wantErr: domain.ErrInvalidInput},
		{name: "bad weekday", weekday: "Caturday", wantErr: domain.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := buildQuery(city, tt.month, tt.day, tt.weekday)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
