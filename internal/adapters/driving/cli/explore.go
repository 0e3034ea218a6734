package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
	"github.com/custodia-labs/bikeshare-cli/internal/core/ports/driving"
	"github.com/custodia-labs/bikeshare-cli/internal/logger"
)

// Menu choices of the explorer, in the order they are listed.
const (
	choiceRawBrowse = iota + 1
	choiceDate
	choiceMonthDay
	choiceUnfiltered
	choiceExit
)

// Raw browse sub-choices.
const (
	browseFromPoint = 1
	browseFromStart = 2
)

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Explore trip data interactively",
	Long: `Start the interactive explorer.

Choose a city, then pick what to do with its trips:
  1. Browse the raw rows a few at a time
  2. Summarise the trips of one date
  3. Summarise trips filtered by month, weekday or both
  4. Summarise every trip
  5. Exit

After each action you can restart with another city.`,
	Args: cobra.NoArgs,
	RunE: runExplore,
}

func init() {
	rootCmd.AddCommand(exploreCmd)
}

func runExplore(cmd *cobra.Command, _ []string) error {
	explorer, err := requireExplorer()
	if err != nil {
		return err
	}

	session := newExploreSession(cmd.Context(), explorer, cmd.InOrStdin(), cmd.OutOrStdout())
	defer logger.EndSession()

	if err := session.run(); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// exploreSession holds the state of one interactive run.
type exploreSession struct {
	ctx      context.Context
	explorer driving.ExplorerService
	prompt   *prompter
	report   *reportWriter
	out      io.Writer
	now      func() time.Time
}

func newExploreSession(ctx context.Context, explorer driving.ExplorerService, in io.Reader, out io.Writer) *exploreSession {
	return &exploreSession{
		ctx:      ctx,
		explorer: explorer,
		prompt:   newPrompter(in, out),
		report:   newReportWriter(out),
		out:      out,
		now:      time.Now,
	}
}

// run loops over city selections until the user stops.
func (s *exploreSession) run() error {
	for {
		id := logger.StartSession()
		logger.Debug("Explorer session %s", id)

		city, table, err := s.chooseCity()
		if err != nil {
			return err
		}

		done, err := s.menu(city, table)
		if err != nil || done {
			return err
		}

		s.report.separator()
		answer, err := s.prompt.ask("\nWould you like to restart? Enter yes or no.\n")
		if err != nil {
			return err
		}
		if !isYes(answer) {
			return nil
		}
	}
}

// chooseCity asks for a city until one is confirmed and loads.
func (s *exploreSession) chooseCity() (domain.City, *domain.TripTable, error) {
	s.report.banner("Hello! Let's explore some US bikeshare data!")

	cities := domain.AllCities()
	menu := "\nChoose a city to explore:\n"
	for i, city := range cities {
		menu += fmt.Sprintf("  %d. %s\n", i+1, city.Name())
	}

	for {
		choice, err := askUntil(s.prompt, menu, invalidInputMessage, func(in string) (int, error) {
			return parseMenuChoice(in, len(cities))
		})
		if err != nil {
			return "", nil, err
		}
		city := cities[choice-1]

		confirm, err := s.prompt.ask(fmt.Sprintf("Explore %s? (y/n): ", city.Name()))
		if err != nil {
			return "", nil, err
		}
		if yes, err := parseYesNo(confirm); err != nil || !yes {
			fmt.Fprintln(s.out, invalidInputMessage)
			continue
		}

		table, err := s.load(city)
		if err != nil {
			if s.ctx.Err() != nil {
				return "", nil, err
			}
			fmt.Fprintf(s.out, "\nCould not load %s: %v\n", city.Name(), err)
			continue
		}
		return city, table, nil
	}
}

func (s *exploreSession) load(city domain.City) (*domain.TripTable, error) {
	start := s.now()
	fmt.Fprintf(s.out, "%s is loading.... Please stand by.\n", city.Name())

	table, err := s.explorer.Load(s.ctx, city)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(s.out, "\nThat took %s seconds.\n\n", formatSeconds(s.now().Sub(start)))
	fmt.Fprintln(s.out, "Thank you for your patience!")
	return table, nil
}

// menu runs one action. Returns true if the user chose to exit.
func (s *exploreSession) menu(city domain.City, table *domain.TripTable) (bool, error) {
	text := "\nWhat would you like to do today?:\n"
	for i, mode := range domain.AllQueryModes() {
		text += fmt.Sprintf("%d. %s\n", i+1, mode.Description())
	}
	text += fmt.Sprintf("%d. I'm done for now. (exit)\n", choiceExit)

	choice, err := askUntil(s.prompt, text, invalidInputMessage, func(in string) (int, error) {
		return parseMenuChoice(in, choiceExit)
	})
	if err != nil {
		return false, err
	}

	switch choice {
	case choiceRawBrowse:
		return false, s.browse(table)
	case choiceDate:
		return false, s.byDate(city, table)
	case choiceMonthDay:
		return false, s.byMonthDay(city, table)
	case choiceUnfiltered:
		return false, s.summarise(table, domain.UnfilteredQuery(city))
	default:
		s.report.separator()
		fmt.Fprintln(s.out, "\n Goodbye!")
		fmt.Fprintln(s.out)
		s.report.separator()
		return true, nil
	}
}

func (s *exploreSession) browse(table *domain.TripTable) error {
	choice, err := askUntil(s.prompt,
		"\nHow would you like to search?:\n1. From a certain point\n2. From the start\n",
		invalidInputMessage,
		func(in string) (int, error) { return parseMenuChoice(in, browseFromStart) })
	if err != nil {
		return err
	}

	browser := s.explorer.Browse()
	var pager driving.Pager
	if choice == browseFromPoint {
		w, perr := askUntil(s.prompt, "\nEnter start and step values: ", invalidInputMessage, parseSpan)
		if perr != nil {
			return perr
		}
		pager, err = browser.Browse(table, w.start, w.step)
	} else {
		step, perr := askUntil(s.prompt, "\nEnter a value to increment by: ",
			"\nPlease enter a positive integer.", parseStep)
		if perr != nil {
			return perr
		}
		pager, err = browser.BrowseFromStart(table, step)
	}
	if err != nil {
		return err
	}

	for {
		window, err := pager.Next()
		if errors.Is(err, domain.ErrOutOfBounds) {
			fmt.Fprintln(s.out, "\n--Out of bounds--")
			fmt.Fprintln(s.out)
			return nil
		}
		if err != nil {
			return err
		}
		s.report.writeWindow(window, table.Schema())

		more, err := askUntil(s.prompt,
			fmt.Sprintf("\nWould you like to see %d more lines of data?(y/n): ", pager.Step()),
			invalidInputMessage, parseYesNo)
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}

func (s *exploreSession) byDate(city domain.City, table *domain.TripTable) error {
	month, err := askUntil(s.prompt, "\nEnter the month (1-6): ", invalidInputMessage, parseMonth)
	if err != nil {
		return err
	}
	day, err := askUntil(s.prompt, "\nEnter the date (1-31): ", invalidInputMessage, parseDay)
	if err != nil {
		return err
	}
	return s.summarise(table, domain.DateQuery(city, month, day))
}

func (s *exploreSession) byMonthDay(city domain.City, table *domain.TripTable) error {
	axis, err := askUntil(s.prompt, "\nWould you like to filter by month, day or both? ",
		invalidInputMessage, parseFilterAxis)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "\nYou chose to filter by %s\n", axis)

	month, weekday := domain.AllMonths, domain.AllWeekdays
	if axis == axisMonth || axis == axisBoth {
		month, err = askUntil(s.prompt, "\nEnter a month to filter by (1 - 6): ", invalidInputMessage, parseMonth)
		if err != nil {
			return err
		}
	}
	if axis == axisDay || axis == axisBoth {
		weekday, err = askUntil(s.prompt,
			"\nEnter a day of the week to filter by: Mon, Tue, Wed, Thu, Fri, Sat, Sun: ",
			invalidInputMessage, parseWeekday)
		if err != nil {
			return err
		}
	}
	return s.summarise(table, domain.MonthDayQuery(city, month, weekday))
}

// summarise runs a statistics query and prints the report.
func (s *exploreSession) summarise(table *domain.TripTable, query domain.Query) error {
	report, err := s.explorer.Run(s.ctx, table, query)
	if errors.Is(err, domain.ErrNoMatches) {
		fmt.Fprintln(s.out, noMatchesMessage)
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out, "\nHere's the data you asked for:")
	fmt.Fprintln(s.out)
	s.report.writeReport(report)
	return nil
}
