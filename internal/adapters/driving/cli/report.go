package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/term"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
)

// maxSeparatorWidth caps the width of section separators.
const maxSeparatorWidth = 80

const noMatchesMessage = "Looks like there are no entries that match your requests."

// reportWriter renders reports and row windows to a console stream.
type reportWriter struct {
	out     io.Writer
	printer *message.Printer
	heading lipgloss.Style
	width   int
}

func newReportWriter(out io.Writer) *reportWriter {
	renderer := lipgloss.NewRenderer(out)
	return &reportWriter{
		out:     out,
		printer: message.NewPrinter(language.English),
		heading: renderer.NewStyle().Bold(true),
		width:   separatorWidth(out),
	}
}

// separatorWidth returns the terminal width when out is a terminal,
// capped at maxSeparatorWidth.
func separatorWidth(out io.Writer) int {
	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return maxSeparatorWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 || width > maxSeparatorWidth {
		return maxSeparatorWidth
	}
	return width
}

func (w *reportWriter) separator() {
	fmt.Fprintln(w.out, strings.Repeat("-", w.width))
}

func (w *reportWriter) banner(text string) {
	w.separator()
	fmt.Fprintf(w.out, "\n%s\n\n", w.heading.Render(text))
	w.separator()
}

func (w *reportWriter) line(format string, args ...any) {
	fmt.Fprintf(w.out, "\n%s\n", w.printer.Sprintf(format, args...))
}

func (w *reportWriter) took(d time.Duration) {
	fmt.Fprintf(w.out, "\nThis took %s seconds.\n\n", formatSeconds(d))
}

// formatSeconds renders d in seconds rounded to milliseconds.
func formatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Round(time.Millisecond).Seconds(), 'f', -1, 64)
}

// writeReport prints the four statistic sections, each with its timing.
func (w *reportWriter) writeReport(r *domain.Report) {
	w.banner("THE MOST FREQUENT TIMES OF TRAVEL")
	w.line("Most popular month: %s", r.Time.Month)
	w.line("Most popular day of the week: %s", r.Time.Weekday)
	w.line("Most popular hour of the day: %d", r.Time.Hour)
	w.took(r.Timings.Time)

	w.banner("MOST POPULAR STATIONS AND TRIP")
	w.line("Most popular Start Station: %s", r.Station.StartStation)
	w.line("Most popular End Station: %s", r.Station.EndStation)
	w.line("Most popular path: From %s to %s (%d trips)", r.Station.Path.Start, r.Station.Path.End, r.Station.PathCount)
	w.took(r.Timings.Station)

	w.banner("TRIP DURATION")
	w.line("Average time taken per trip (%s): %.2f", r.Duration.Unit, r.Duration.Mean)
	w.line("Total time travelled (%s): %.2f", r.Duration.Unit, r.Duration.Total)
	w.took(r.Timings.Duration)

	w.banner("USER STATISTICS")
	w.line("Number of Subscribers: %d", r.User.Subscribers)
	w.line("Number of Customers: %d", r.User.Customers)
	if g := r.User.Gender; g != nil {
		w.line("Number of Males: %d", g.Male)
		w.line("Number of Females: %d", g.Female)
	}
	if by := r.User.BirthYear; by != nil {
		// Years are printed without digit grouping.
		fmt.Fprintf(w.out, "\nMost common birth year: %d\n", by.MostCommon)
		fmt.Fprintf(w.out, "\nMost recent birth year: %d\n", by.MostRecent)
		fmt.Fprintf(w.out, "\nEarliest birth year: %d\n", by.Earliest)
	}
	w.took(r.Timings.User)
}

// writeWindow prints one window of raw rows as a table.
// Optional columns are shown only if the schema has them.
func (w *reportWriter) writeWindow(win domain.Window, schema domain.Schema) {
	headers := []string{"#", "Start Time"}
	if schema.HasEndTime {
		headers = append(headers, "End Time")
	}
	headers = append(headers, "Trip Duration", "Start Station", "End Station", "User Type")
	if schema.HasGender {
		headers = append(headers, "Gender")
	}
	if schema.HasBirthYear {
		headers = append(headers, "Birth Year")
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)

	for i, rec := range win.Rows {
		t.Row(windowRow(win.Start+i, rec, schema)...)
	}

	fmt.Fprintln(w.out, t.Render())
}

// windowRow formats a record's cells in header order.
func windowRow(index int, rec domain.TripRecord, schema domain.Schema) []string {
	row := []string{strconv.Itoa(index), rec.StartTime.Format(time.DateTime)}
	if schema.HasEndTime {
		end := ""
		if !rec.EndTime.IsZero() {
			end = rec.EndTime.Format(time.DateTime)
		}
		row = append(row, end)
	}
	row = append(row,
		strconv.FormatFloat(rec.Duration, 'f', -1, 64),
		rec.StartStation,
		rec.EndStation,
		rec.UserType,
	)
	if schema.HasGender {
		row = append(row, rec.Gender)
	}
	if schema.HasBirthYear {
		year := ""
		if rec.HasBirthYear() {
			year = strconv.Itoa(rec.BirthYear)
		}
		row = append(row, year)
	}
	return row
}
