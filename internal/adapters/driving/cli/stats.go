package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
)

var (
	statsCity    string
	statsMonth   string
	statsDay     int
	statsWeekday string
	statsJSON    bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print trip statistics for a city",
	Long: `Print the four statistic groups for a city's trips.

Filters:
  --month M --day D          trips of one date (month 1-6, day 1-31)
  --month M|all              trips of one month
  --weekday W|all            trips on one weekday (Mon..Sun or full name)

With no filters, every trip is summarised.`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().StringVarP(&statsCity, "city", "c", "", "city: chicago, new_york_city, washington or 1-3")
	statsCmd.Flags().StringVarP(&statsMonth, "month", "m", "", "month 1-6, or all")
	statsCmd.Flags().IntVarP(&statsDay, "day", "d", 0, "day of month 1-31 (requires --month)")
	statsCmd.Flags().StringVarP(&statsWeekday, "weekday", "w", "", "weekday Mon..Sun, or all")
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "output the report as JSON")
	_ = statsCmd.MarkFlagRequired("city")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	city, err := domain.ParseCity(statsCity)
	if err != nil {
		return err
	}

	query, err := buildQuery(city, statsMonth, statsDay, statsWeekday)
	if err != nil {
		return err
	}

	explorer, err := requireExplorer()
	if err != nil {
		return err
	}

	table, err := explorer.Load(cmd.Context(), city)
	if err != nil {
		return err
	}

	report, err := explorer.Run(cmd.Context(), table, query)
	if err != nil {
		if errors.Is(err, domain.ErrNoMatches) {
			cmd.Println(noMatchesMessage)
			return nil
		}
		return fmt.Errorf("stats failed: %w", err)
	}

	if statsJSON {
		return outputStatsJSON(cmd, report)
	}

	cmd.Printf("%s: %d trips (%s)\n", city.Name(), report.Trips, report.Filter)
	newReportWriter(cmd.OutOrStdout()).writeReport(report)
	return nil
}

func outputStatsJSON(cmd *cobra.Command, report *domain.Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

// buildQuery turns the filter flags into a query.
func buildQuery(city domain.City, monthFlag string, day int, weekdayFlag string) (domain.Query, error) {
	month, err := parseMonthFlag(monthFlag)
	if err != nil {
		return domain.Query{}, err
	}

	if day != 0 {
		if month == domain.AllMonths {
			return domain.Query{}, fmt.Errorf("%w: --day requires --month", domain.ErrInvalidInput)
		}
		if weekdayFlag != "" {
			return domain.Query{}, fmt.Errorf("%w: --day cannot be combined with --weekday", domain.ErrInvalidInput)
		}
		query := domain.DateQuery(city, month, day)
		return query, query.Validate()
	}

	if monthFlag == "" && weekdayFlag == "" {
		return domain.UnfilteredQuery(city), nil
	}

	weekday := domain.AllWeekdays
	if weekdayFlag != "" && !strings.EqualFold(weekdayFlag, domain.AllWeekdays) {
		if weekday, err = parseWeekday(weekdayFlag); err != nil {
			return domain.Query{}, err
		}
	}

	query := domain.MonthDayQuery(city, month, weekday)
	return query, query.Validate()
}

// parseMonthFlag accepts "", "all" or a month 1-6.
func parseMonthFlag(s string) (int, error) {
	if s == "" || strings.EqualFold(s, "all") {
		return domain.AllMonths, nil
	}
	return parseMonth(s)
}
