// Package rows provides the raw row browser for the TUI.
package rows

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/bikeshare-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
	"github.com/custodia-labs/bikeshare-cli/internal/core/ports/driving"
)

// OutOfBoundsMessage is shown when the next window would pass the end of the table.
const OutOfBoundsMessage = "--Out of bounds--"

// maxColumnWidth caps station name columns.
const maxColumnWidth = 32

// chromeLines is the space taken by the title and footer.
const chromeLines = 6

// View pages through a table's raw rows.
type View struct {
	styles *styles.Styles
	table  table.Model
	pager  driving.Pager
	schema domain.Schema
	city   domain.City
	total  int
	window domain.Window
	err    error
	width  int
	height int
	ready  bool
}

// NewView creates a new rows view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	t := table.New(table.WithFocused(true), table.WithHeight(10))
	ts := table.DefaultStyles()
	ts.Header = s.TableHeader
	ts.Selected = s.TableSelected
	t.SetStyles(ts)

	return &View{
		styles: s,
		table:  t,
		width:  80,
		height: 24,
	}
}

// Init initialises the rows view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetTable starts browsing trips from the first row, step rows at a time,
// and shows the first window.
func (v *View) SetTable(trips *domain.TripTable, browse driving.BrowseService, step int) error {
	v.city = trips.City()
	v.schema = trips.Schema()
	v.total = trips.Len()
	v.window = domain.Window{}
	v.err = nil
	v.table.SetRows(nil)
	v.table.SetColumns(columns(v.schema))

	pager, err := browse.BrowseFromStart(trips, step)
	if err != nil {
		v.pager = nil
		v.err = err
		return err
	}
	v.pager = pager
	v.next()
	return nil
}

// next shows the pager's next window. An out-of-bounds window keeps
// the current rows on screen.
func (v *View) next() {
	if v.pager == nil {
		return
	}
	win, err := v.pager.Next()
	if err != nil {
		v.err = err
		return
	}
	v.err = nil
	v.window = win

	rows := make([]table.Row, 0, len(win.Rows))
	for i, rec := range win.Rows {
		rows = append(rows, windowRow(win.Start+i, rec, v.schema))
	}
	v.table.SetRows(rows)
	v.table.SetColumns(fitColumns(columns(v.schema), rows))
	v.table.GotoTop()
}

// Update handles messages for the rows view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		if msg.String() == "n" {
			v.next()
			return v, nil
		}
	}

	var cmd tea.Cmd
	v.table, cmd = v.table.Update(msg)
	return v, cmd
}

// View renders the rows view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	title := fmt.Sprintf("%s: raw data", v.city.Name())
	if len(v.window.Rows) > 0 {
		title = fmt.Sprintf("%s: rows %d-%d of %d", v.city.Name(), v.window.Start, v.window.End()-1, v.total)
	}
	b.WriteString(v.styles.Title.Render(title))
	b.WriteString("\n\n")

	if len(v.window.Rows) > 0 {
		b.WriteString(v.table.View())
		b.WriteString("\n")
	}

	if v.err != nil {
		b.WriteString("\n")
		b.WriteString(v.styles.Error.Render(errorText(v.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("[n] Next rows  [↑/↓] Scroll  [Esc] Back"))

	return b.String()
}

func errorText(err error) string {
	if errors.Is(err, domain.ErrOutOfBounds) {
		return OutOfBoundsMessage
	}
	return "Error: " + err.Error()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.table.SetWidth(width)
	v.table.SetHeight(max(height-chromeLines, 3))
	v.ready = true
}

// Window returns the window on screen.
func (v *View) Window() domain.Window {
	return v.window
}

// Err returns the last paging error.
func (v *View) Err() error {
	return v.err
}

// columns returns the columns the schema carries, at header width.
func columns(schema domain.Schema) []table.Column {
	titles := []string{"#", "Start Time"}
	if schema.HasEndTime {
		titles = append(titles, "End Time")
	}
	titles = append(titles, "Duration", "Start Station", "End Station", "User Type")
	if schema.HasGender {
		titles = append(titles, "Gender")
	}
	if schema.HasBirthYear {
		titles = append(titles, "Birth Year")
	}

	cols := make([]table.Column, len(titles))
	for i, title := range titles {
		cols[i] = table.Column{Title: title, Width: len(title)}
	}
	return cols
}

// fitColumns widens columns to their widest cell, up to maxColumnWidth.
func fitColumns(cols []table.Column, rows []table.Row) []table.Column {
	for _, row := range rows {
		for i, cell := range row {
			if i < len(cols) && len(cell) > cols[i].Width {
				cols[i].Width = min(len(cell), maxColumnWidth)
			}
		}
	}
	return cols
}

// windowRow formats a record's cells in column order.
func windowRow(index int, rec domain.TripRecord, schema domain.Schema) table.Row {
	row := table.Row{strconv.Itoa(index), rec.StartTime.Format(time.DateTime)}
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
