// Package filter provides the date and month/weekday filter form for the TUI.
package filter

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/custodia-labs/bikeshare-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/bikeshare-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/bikeshare-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
)

// View is a form that builds a filter query.
type View struct {
	styles *styles.Styles
	city   domain.City
	mode   domain.QueryMode
	fields []*input.Field
	focus  int
	err    error
	width  int
	height int
	ready  bool
}

// NewView creates a new filter view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles: s,
		width:  80,
		height: 24,
	}
}

// Reset prepares the form for a city and query mode.
// Only QueryModeDate and QueryModeMonthDay have fields.
func (v *View) Reset(city domain.City, mode domain.QueryMode) tea.Cmd {
	v.city = city
	v.mode = mode
	v.focus = 0
	v.err = nil

	switch mode {
	case domain.QueryModeDate:
		v.fields = []*input.Field{
			input.NewField(v.styles, "Month", "1-6", 1),
			input.NewField(v.styles, "Day", "1-31", 2),
		}
	case domain.QueryModeMonthDay:
		v.fields = []*input.Field{
			input.NewField(v.styles, "Month", "1-6, blank for all", 3),
			input.NewField(v.styles, "Weekday", "Mon..Sun, blank for all", 9),
		}
	default:
		v.fields = nil
	}

	if len(v.fields) == 0 {
		return nil
	}
	return v.fields[0].Focus()
}

// Init initialises the filter view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the filter view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			return v, v.moveFocus(1)
		case "shift+tab", "up":
			return v, v.moveFocus(-1)
		case "enter":
			if v.focus < len(v.fields)-1 {
				return v, v.moveFocus(1)
			}
			return v, v.submit()
		}
	}

	if len(v.fields) == 0 {
		return v, nil
	}
	var cmd tea.Cmd
	v.fields[v.focus], cmd = v.fields[v.focus].Update(msg)
	return v, cmd
}

func (v *View) moveFocus(delta int) tea.Cmd {
	if len(v.fields) == 0 {
		return nil
	}
	v.fields[v.focus].Blur()
	v.focus = (v.focus + delta + len(v.fields)) % len(v.fields)
	return v.fields[v.focus].Focus()
}

// submit validates the form and emits the query.
func (v *View) submit() tea.Cmd {
	query, err := v.Query()
	if err != nil {
		v.err = err
		return nil
	}
	v.err = nil
	return func() tea.Msg {
		return messages.QuerySubmitted{Query: query}
	}
}

// Query builds and validates the query from the current field values.
func (v *View) Query() (domain.Query, error) {
	switch v.mode {
	case domain.QueryModeDate:
		month, err := parseNumber("month", v.fields[0].Value())
		if err != nil {
			return domain.Query{}, err
		}
		day, err := parseNumber("day", v.fields[1].Value())
		if err != nil {
			return domain.Query{}, err
		}
		query := domain.DateQuery(v.city, month, day)
		return query, query.Validate()

	case domain.QueryModeMonthDay:
		month := domain.AllMonths
		if raw := v.fields[0].Value(); raw != "" && !strings.EqualFold(raw, "all") {
			var err error
			if month, err = parseNumber("month", raw); err != nil {
				return domain.Query{}, err
			}
		}
		weekday, err := parseWeekday(v.fields[1].Value())
		if err != nil {
			return domain.Query{}, err
		}
		query := domain.MonthDayQuery(v.city, month, weekday)
		return query, query.Validate()
	}

	return domain.Query{}, fmt.Errorf("%w: no form for mode %q", domain.ErrInvalidInput, v.mode)
}

func parseNumber(name, raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number", domain.ErrInvalidInput, name)
	}
	return n, nil
}

// parseWeekday accepts blank or "all", an abbreviation or a full name.
func parseWeekday(raw string) (string, error) {
	if raw == "" || strings.EqualFold(raw, domain.AllWeekdays) {
		return domain.AllWeekdays, nil
	}
	if name, ok := domain.WeekdayFromAbbreviation(raw); ok {
		return name, nil
	}
	if name := cases.Title(language.English).String(raw); domain.IsWeekdayName(name) {
		return name, nil
	}
	return "", fmt.Errorf("%w: unknown weekday %q", domain.ErrInvalidInput, raw)
}

// View renders the form.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render(fmt.Sprintf("%s: %s", v.city.Name(), v.mode.Description())))
	b.WriteString("\n\n")

	for _, f := range v.fields {
		b.WriteString(f.View())
		b.WriteString("\n")
	}

	if v.err != nil {
		b.WriteString("\n")
		b.WriteString(v.styles.Error.Render(v.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("[Tab] Next field  [Enter] Submit  [Esc] Back"))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Mode returns the query mode the form is set up for.
func (v *View) Mode() domain.QueryMode {
	return v.mode
}

// Focus returns the index of the focused field.
func (v *View) Focus() int {
	return v.focus
}

// Err returns the last validation error.
func (v *View) Err() error {
	return v.err
}
