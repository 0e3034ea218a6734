package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
)

// defaultRowStep is the number of rows returned when the caller names none.
const defaultRowStep = 5

// maxRowStep caps a single rows call.
const maxRowStep = 200

// StatsInput is the input schema for the trip_stats tool.
type StatsInput struct {
	City    string `json:"city" jsonschema:"chicago, new_york_city or washington"`
	Month   int    `json:"month,omitempty" jsonschema:"month 1-6, omit for all months"`
	Day     int    `json:"day,omitempty" jsonschema:"day of month 1-31, requires month"`
	Weekday string `json:"weekday,omitempty" jsonschema:"weekday name or Mon..Sun, omit for all days"`
}

// StatsOutput is the output schema for the trip_stats tool.
type StatsOutput struct {
	City    string `json:"city"`
	Filter  string `json:"filter"`
	Trips   int    `json:"trips"`
	Matched bool   `json:"matched"`

	MostCommonMonth   string `json:"most_common_month,omitempty"`
	MostCommonWeekday string `json:"most_common_weekday,omitempty"`
	MostCommonHour    int    `json:"most_common_hour"`

	StartStation string `json:"start_station,omitempty"`
	EndStation   string `json:"end_station,omitempty"`
	PathStart    string `json:"path_start,omitempty"`
	PathEnd      string `json:"path_end,omitempty"`
	PathTrips    int    `json:"path_trips"`

	DurationUnit  string  `json:"duration_unit,omitempty"`
	TotalDuration float64 `json:"total_duration"`
	MeanDuration  float64 `json:"mean_duration"`

	Subscribers int `json:"subscribers"`
	Customers   int `json:"customers"`

	Male   *int `json:"male,omitempty"`
	Female *int `json:"female,omitempty"`

	MostCommonBirthYear *int `json:"most_common_birth_year,omitempty"`
	MostRecentBirthYear *int `json:"most_recent_birth_year,omitempty"`
	EarliestBirthYear   *int `json:"earliest_birth_year,omitempty"`
}

// RowsInput is the input schema for the trip_rows tool.
type RowsInput struct {
	City  string `json:"city" jsonschema:"chicago, new_york_city or washington"`
	Start int    `json:"start,omitempty" jsonschema:"index of the first row (default 0)"`
	Step  int    `json:"step,omitempty" jsonschema:"number of rows to return (default 5, at most 200)"`
}

// RowsOutput is the output schema for the trip_rows tool.
type RowsOutput struct {
	City  string      `json:"city"`
	Start int         `json:"start"`
	Total int         `json:"total"`
	Rows  []RowOutput `json:"rows"`
}

// RowOutput is one raw trip.
type RowOutput struct {
	Index        int     `json:"index"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time,omitempty"`
	Duration     float64 `json:"duration"`
	StartStation string  `json:"start_station"`
	EndStation   string  `json:"end_station"`
	UserType     string  `json:"user_type"`
	Gender       string  `json:"gender,omitempty"`
	BirthYear    int     `json:"birth_year,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "trip_stats",
		Description: "Summarise a city's bike-share trips, optionally filtered by date or by month and weekday",
	}, s.handleStats)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "trip_rows",
		Description: "Return a window of raw bike-share trip rows for a city",
	}, s.handleRows)
}

// handleStats handles the trip_stats tool invocation.
func (s *Server) handleStats(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input StatsInput,
) (*mcp.CallToolResult, StatsOutput, error) {
	city, err := domain.ParseCity(input.City)
	if err != nil {
		return nil, StatsOutput{}, err
	}

	query, err := statsQuery(city, input)
	if err != nil {
		return nil, StatsOutput{}, err
	}

	table, err := s.ports.Explorer.Load(ctx, city)
	if err != nil {
		return nil, StatsOutput{}, err
	}

	report, err := s.ports.Explorer.Run(ctx, table, query)
	if errors.Is(err, domain.ErrNoMatches) {
		return nil, StatsOutput{City: city.String(), Filter: query.Describe()}, nil
	}
	if err != nil {
		return nil, StatsOutput{}, err
	}

	return nil, statsOutput(report), nil
}

// statsQuery builds the query the input describes.
func statsQuery(city domain.City, input StatsInput) (domain.Query, error) {
	weekday := strings.TrimSpace(input.Weekday)

	var query domain.Query
	switch {
	case input.Day != 0:
		if weekday != "" {
			return domain.Query{}, fmt.Errorf("%w: day cannot be combined with weekday", domain.ErrInvalidInput)
		}
		query = domain.DateQuery(city, input.Month, input.Day)
	case input.Month == domain.AllMonths && weekday == "":
		query = domain.UnfilteredQuery(city)
	default:
		name, err := normaliseWeekday(weekday)
		if err != nil {
			return domain.Query{}, err
		}
		query = domain.MonthDayQuery(city, input.Month, name)
	}
	return query, query.Validate()
}

func normaliseWeekday(s string) (string, error) {
	if s == "" || strings.EqualFold(s, domain.AllWeekdays) {
		return domain.AllWeekdays, nil
	}
	if name, ok := domain.WeekdayFromAbbreviation(s); ok {
		return name, nil
	}
	for _, abbr := range domain.WeekdayAbbreviations() {
		name, _ := domain.WeekdayFromAbbreviation(abbr)
		if strings.EqualFold(name, s) {
			return name, nil
		}
	}
	return "", fmt.Errorf("%w: unknown weekday %q", domain.ErrInvalidInput, s)
}

func statsOutput(r *domain.Report) StatsOutput {
	out := StatsOutput{
		City:              r.City.String(),
		Filter:            r.Filter,
		Trips:             r.Trips,
		Matched:           true,
		MostCommonMonth:   r.Time.Month,
		MostCommonWeekday: r.Time.Weekday,
		MostCommonHour:    r.Time.Hour,
		StartStation:      r.Station.StartStation,
		EndStation:        r.Station.EndStation,
		PathStart:         r.Station.Path.Start,
		PathEnd:           r.Station.Path.End,
		PathTrips:         r.Station.PathCount,
		DurationUnit:      r.Duration.Unit,
		TotalDuration:     r.Duration.Total,
		MeanDuration:      r.Duration.Mean,
		Subscribers:       r.User.Subscribers,
		Customers:         r.User.Customers,
	}
	if g := r.User.Gender; g != nil {
		out.Male, out.Female = &g.Male, &g.Female
	}
	if by := r.User.BirthYear; by != nil {
		out.MostCommonBirthYear = &by.MostCommon
		out.MostRecentBirthYear = &by.MostRecent
		out.EarliestBirthYear = &by.Earliest
	}
	return out
}

// handleRows handles the trip_rows tool invocation.
func (s *Server) handleRows(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RowsInput,
) (*mcp.CallToolResult, RowsOutput, error) {
	city, err := domain.ParseCity(input.City)
	if err != nil {
		return nil, RowsOutput{}, err
	}

	step := input.Step
	if step == 0 {
		step = defaultRowStep
	}
	if step > maxRowStep {
		return nil, RowsOutput{}, fmt.Errorf("%w: step %d exceeds %d", domain.ErrInvalidInput, step, maxRowStep)
	}

	table, err := s.ports.Explorer.Load(ctx, city)
	if err != nil {
		return nil, RowsOutput{}, err
	}

	window, err := s.ports.Explorer.Browse().Window(table, input.Start, step)
	if err != nil {
		return nil, RowsOutput{}, err
	}

	schema := table.Schema()
	out := RowsOutput{
		City:  city.String(),
		Start: window.Start,
		Total: table.Len(),
		Rows:  make([]RowOutput, len(window.Rows)),
	}
	for i, rec := range window.Rows {
		row := RowOutput{
			Index:        window.Start + i,
			StartTime:    rec.StartTime.Format(timeLayout),
			Duration:     rec.Duration,
			StartStation: rec.StartStation,
			EndStation:   rec.EndStation,
			UserType:     rec.UserType,
		}
		if schema.HasEndTime && !rec.EndTime.IsZero() {
			row.EndTime = rec.EndTime.Format(timeLayout)
		}
		if schema.HasGender {
			row.Gender = rec.Gender
		}
		if schema.HasBirthYear {
			row.BirthYear = rec.BirthYear
		}
		out.Rows[i] = row
	}

	return nil, out, nil
}

const timeLayout = "2006-01-02 15:04:05"
