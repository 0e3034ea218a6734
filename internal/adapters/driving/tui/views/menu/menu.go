// Package menu provides a navigable list of choices for the TUI.
// It backs both the city selection and the action menu.
package menu

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/bikeshare-cli/internal/adapters/driving/tui/styles"
)

// Item represents a single menu option.
type Item struct {
	Label string

	// Msg is sent when the item is selected.
	Msg tea.Msg

	// Quit, if true, makes selecting the item quit the app.
	Quit bool
}

// View represents a menu view.
type View struct {
	styles   *styles.Styles
	title    string
	subtitle string
	items    []Item
	selected int
	width    int
	height   int
	ready    bool
}

// NewView creates a new menu view.
func NewView(s *styles.Styles, title string, items []Item) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:   s,
		title:    title,
		items:    items,
		selected: 0,
		width:    80,
		height:   24,
	}
}

// Init initialises the menu view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.selected > 0 {
				v.selected--
			}
			return v, nil

		case "down", "j":
			if v.selected < len(v.items)-1 {
				v.selected++
			}
			return v, nil

		case "enter":
			if len(v.items) == 0 {
				return v, nil
			}
			item := v.items[v.selected]
			if item.Quit {
				return v, tea.Quit
			}
			return v, func() tea.Msg {
				return item.Msg
			}

		case "q":
			return v, tea.Quit
		}

		// Digits pick an item directly, as in the console explorer.
		if len(msg.Runes) == 1 && msg.Runes[0] >= '1' && msg.Runes[0] <= '9' {
			if idx := int(msg.Runes[0] - '1'); idx < len(v.items) {
				v.selected = idx
			}
		}
	}

	return v, nil
}

// View renders the menu.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render(v.title))
	b.WriteString("\n\n")

	if v.subtitle != "" {
		b.WriteString(v.styles.Muted.Render(v.subtitle))
		b.WriteString("\n\n")
	}

	for i, item := range v.items {
		cursor := "  "
		style := v.styles.Normal
		if i == v.selected {
			cursor = "> "
			style = v.styles.Selected
		}
		b.WriteString(cursor + style.Render(item.Label))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("[j/k] Navigate  [1-9] Pick  [Enter] Select  [q] Quit"))

	return b.String()
}

// SetSubtitle sets the line shown under the title.
func (v *View) SetSubtitle(subtitle string) {
	v.subtitle = subtitle
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Selected returns the currently selected index.
func (v *View) Selected() int {
	return v.selected
}

// Reset moves the selection back to the first item.
func (v *View) Reset() {
	v.selected = 0
}
