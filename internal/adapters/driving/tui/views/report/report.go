// Package report provides the statistics report view for the TUI.
package report

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/custodia-labs/bikeshare-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
)

// NoMatchesMessage is shown when a filter leaves no trips.
const NoMatchesMessage = "Looks like there are no entries that match your requests."

// headerLines is the space taken by the title above the viewport.
const headerLines = 3

// View displays a report in a scrollable viewport.
type View struct {
	styles   *styles.Styles
	printer  *message.Printer
	viewport viewport.Model
	query    domain.Query
	report   *domain.Report
	err      error
	width    int
	height   int
	ready    bool
}

// NewView creates a new report view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:   s,
		printer:  message.NewPrinter(language.English),
		viewport: viewport.New(80, 24-headerLines),
		width:    80,
		height:   24,
	}
}

// Init initialises the report view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetReport sets the query result to display.
func (v *View) SetReport(query domain.Query, report *domain.Report, err error) {
	v.query = query
	v.report = report
	v.err = err
	v.viewport.SetContent(v.content())
	v.viewport.GotoTop()
}

// Update handles messages for the report view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil
	}

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// View renders the report view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render(v.title()))
	b.WriteString("\n\n")
	b.WriteString(v.viewport.View())
	return b.String()
}

func (v *View) title() string {
	if v.report == nil {
		return fmt.Sprintf("%s: %s", v.query.City.Name(), v.query.Describe())
	}
	return v.printer.Sprintf("%s: %s (%d trips)", v.report.City.Name(), v.report.Filter, v.report.Trips)
}

// content renders the report body.
func (v *View) content() string {
	var b strings.Builder

	switch {
	case errors.Is(v.err, domain.ErrNoMatches):
		b.WriteString(v.styles.Normal.Render(NoMatchesMessage))
		b.WriteString("\n")
		return b.String()
	case v.err != nil:
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		b.WriteString("\n")
		return b.String()
	case v.report == nil:
		return ""
	}

	r := v.report

	v.section(&b, "The most frequent times of travel", r.Timings.Time,
		v.stat("Most popular month", r.Time.Month),
		v.stat("Most popular day of the week", r.Time.Weekday),
		v.stat("Most popular hour of the day", strconv.Itoa(r.Time.Hour)),
	)

	v.section(&b, "Most popular stations and trip", r.Timings.Station,
		v.stat("Most popular start station", r.Station.StartStation),
		v.stat("Most popular end station", r.Station.EndStation),
		v.stat("Most popular path", v.printer.Sprintf("From %s to %s (%d trips)",
			r.Station.Path.Start, r.Station.Path.End, r.Station.PathCount)),
	)

	v.section(&b, "Trip duration", r.Timings.Duration,
		v.stat(fmt.Sprintf("Average time per trip (%s)", r.Duration.Unit), v.printer.Sprintf("%.2f", r.Duration.Mean)),
		v.stat(fmt.Sprintf("Total time travelled (%s)", r.Duration.Unit), v.printer.Sprintf("%.2f", r.Duration.Total)),
	)

	users := []string{
		v.stat("Subscribers", v.printer.Sprintf("%d", r.User.Subscribers)),
		v.stat("Customers", v.printer.Sprintf("%d", r.User.Customers)),
	}
	if g := r.User.Gender; g != nil {
		users = append(users,
			v.stat("Males", v.printer.Sprintf("%d", g.Male)),
			v.stat("Females", v.printer.Sprintf("%d", g.Female)),
		)
	}
	if by := r.User.BirthYear; by != nil {
		users = append(users,
			v.stat("Most common birth year", strconv.Itoa(by.MostCommon)),
			v.stat("Most recent birth year", strconv.Itoa(by.MostRecent)),
			v.stat("Earliest birth year", strconv.Itoa(by.Earliest)),
		)
	}
	v.section(&b, "User statistics", r.Timings.User, users...)

	return b.String()
}

func (v *View) section(b *strings.Builder, heading string, took time.Duration, lines ...string) {
	b.WriteString(v.styles.Section.Render(heading))
	b.WriteString("\n")
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(v.styles.Muted.Render(fmt.Sprintf("took %s", took.Round(time.Millisecond))))
	b.WriteString("\n\n")
}

func (v *View) stat(label, value string) string {
	return v.styles.Label.Render(label+": ") + v.styles.Value.Render(value)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.viewport.Width = width
	v.viewport.Height = max(height-headerLines, 1)
	v.ready = true
}

// Report returns the displayed report, or nil.
func (v *View) Report() *domain.Report {
	return v.report
}

// Err returns the displayed error, or nil.
func (v *View) Err() error {
	return v.err
}
