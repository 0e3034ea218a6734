package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/custodia-labs/bikeshare-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/bikeshare-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/bikeshare-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/bikeshare-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/bikeshare-cli/internal/adapters/driving/tui/views/filter"
	"github.com/custodia-labs/bikeshare-cli/internal/adapters/driving/tui/views/menu"
	"github.com/custodia-labs/bikeshare-cli/internal/adapters/driving/tui/views/report"
	"github.com/custodia-labs/bikeshare-cli/internal/adapters/driving/tui/views/rows"
	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
	"github.com/custodia-labs/bikeshare-cli/internal/logger"
)

// fallbackStep is the raw row window size when settings name none.
const fallbackStep = 5

// statusBarLines is the height reserved for the status bar.
const statusBarLines = 1

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// now is the clock used to time loads.
	now func() time.Time

	styles  *styles.Styles
	keymap  *keymap.KeyMap
	printer *message.Printer
	help    help.Model

	citiesView  *menu.View
	actionsView *menu.View
	filterView  *filter.View
	reportView  *report.View
	rowsView    *rows.View
	statusBar   *status.Bar

	// table is the loaded table of the selected city, nil until a load succeeds.
	table *domain.TripTable

	// loadElapsed is how long the current table took to load.
	loadElapsed time.Duration

	// currentView tracks which view is active.
	currentView messages.ViewType

	// previousView is restored when the help view is closed.
	previousView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	cityItems := make([]menu.Item, 0, len(domain.AllCities())+1)
	for _, city := range domain.AllCities() {
		cityItems = append(cityItems, menu.Item{
			Label: city.Name(),
			Msg:   messages.CitySelected{City: city},
		})
	}
	cityItems = append(cityItems, menu.Item{Label: "Quit", Quit: true})

	actionItems := make([]menu.Item, 0, len(domain.AllQueryModes())+2)
	for _, mode := range domain.AllQueryModes() {
		actionItems = append(actionItems, menu.Item{
			Label: mode.Description(),
			Msg:   messages.ActionSelected{Mode: mode},
		})
	}
	actionItems = append(actionItems,
		menu.Item{Label: "Choose another city", Msg: messages.ViewChanged{View: messages.ViewCities}},
		menu.Item{Label: "I'm done for now (exit)", Quit: true},
	)

	h := help.New()
	h.ShowAll = true

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		now:         time.Now,
		styles:      s,
		keymap:      km,
		printer:     message.NewPrinter(language.English),
		help:        h,
		citiesView:  menu.NewView(s, "Hello! Let's explore some US bikeshare data!", cityItems),
		actionsView: menu.NewView(s, "What would you like to do today?", actionItems),
		filterView:  filter.NewView(s),
		reportView:  report.NewView(s),
		rowsView:    rows.NewView(s),
		statusBar:   status.NewBar(s, km),
		currentView: messages.ViewCities,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// WithClock sets the clock used to time loads.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("bikeshare - US Bikeshare Explorer"),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocognit,gocyclo,funlen // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case messages.ViewChanged:
		a.switchTo(msg.View)
		return a, nil

	case messages.CitySelected:
		a.statusBar.SetLoading(msg.City)
		return a, a.loadCmd(msg.City)

	case messages.TableLoaded:
		if msg.Err != nil {
			a.err = msg.Err
			a.statusBar.SetError(fmt.Errorf("could not load %s: %w", msg.City.Name(), msg.Err))
			return a, nil
		}
		a.err = nil
		a.table = msg.Table
		a.loadElapsed = msg.Elapsed
		a.statusBar.SetLoaded(msg.City, msg.Table.Len(), msg.Elapsed)
		a.actionsView.SetSubtitle(a.printer.Sprintf("%s: %d trips", msg.City.Name(), msg.Table.Len()))
		a.actionsView.Reset()
		a.switchTo(messages.ViewActions)
		return a, nil

	case messages.ActionSelected:
		return a, a.startAction(msg.Mode)

	case messages.QuerySubmitted:
		a.statusBar.SetRunning()
		return a, a.runCmd(msg.Query)

	case messages.ReportReady:
		a.reportView.SetReport(msg.Query, msg.Report, msg.Err)
		a.restoreStatus()
		if msg.Err != nil && !errors.Is(msg.Err, domain.ErrNoMatches) {
			a.err = msg.Err
			a.statusBar.SetError(msg.Err)
		}
		a.switchTo(messages.ViewReport)
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.statusBar.SetError(msg.Err)
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	return a, nil
}

// handleKey applies global keys, then forwards to the active view.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyStr := msg.String()

	if keyStr == "ctrl+c" {
		return a, tea.Quit
	}

	if a.currentView == messages.ViewHelp {
		if keymap.Matches(keyStr, a.keymap.Back) || keymap.Matches(keyStr, a.keymap.Help) {
			a.switchTo(a.previousView)
		}
		return a, nil
	}

	// The filter form takes typed characters, so "?" only opens help elsewhere.
	if a.currentView != messages.ViewFilter && keymap.Matches(keyStr, a.keymap.Help) {
		a.previousView = a.currentView
		a.switchTo(messages.ViewHelp)
		return a, nil
	}

	if keymap.Matches(keyStr, a.keymap.Back) {
		switch a.currentView {
		case messages.ViewActions:
			a.switchTo(messages.ViewCities)
		case messages.ViewFilter, messages.ViewReport, messages.ViewRows:
			a.restoreStatus()
			a.switchTo(messages.ViewActions)
		case messages.ViewCities, messages.ViewHelp:
		}
		return a, nil
	}

	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewCities:
		a.citiesView, cmd = a.citiesView.Update(msg)
	case messages.ViewActions:
		a.actionsView, cmd = a.actionsView.Update(msg)
	case messages.ViewFilter:
		a.filterView, cmd = a.filterView.Update(msg)
	case messages.ViewReport:
		a.reportView, cmd = a.reportView.Update(msg)
	case messages.ViewRows:
		a.rowsView, cmd = a.rowsView.Update(msg)
	case messages.ViewHelp:
	}
	return a, cmd
}

// switchTo activates a view and updates the status bar hints.
func (a *App) switchTo(view messages.ViewType) {
	a.currentView = view
	switch view {
	case messages.ViewFilter:
		a.statusBar.SetBindings(a.keymap.FormHelp())
	case messages.ViewRows:
		a.statusBar.SetBindings(a.keymap.RowsHelp())
	case messages.ViewCities:
		a.citiesView.Reset()
		a.statusBar.SetBindings(a.keymap.ShortHelp())
	case messages.ViewActions, messages.ViewReport, messages.ViewHelp:
		a.statusBar.SetBindings(a.keymap.ShortHelp())
	}
}

// restoreStatus shows the loaded table again after a query or an error.
func (a *App) restoreStatus() {
	if a.table != nil {
		a.statusBar.SetLoaded(a.table.City(), a.table.Len(), a.loadElapsed)
	}
}

// startAction opens the view for mode, or runs the query directly.
func (a *App) startAction(mode domain.QueryMode) tea.Cmd {
	if a.table == nil {
		return nil
	}
	city := a.table.City()

	switch mode {
	case domain.QueryModeRawBrowse:
		step := a.ports.defaultStep(fallbackStep)
		if err := a.rowsView.SetTable(a.table, a.ports.Explorer.Browse(), step); err != nil {
			a.err = err
		}
		a.switchTo(messages.ViewRows)
		return nil

	case domain.QueryModeDate, domain.QueryModeMonthDay:
		cmd := a.filterView.Reset(city, mode)
		a.switchTo(messages.ViewFilter)
		return cmd

	case domain.QueryModeUnfiltered:
		a.statusBar.SetRunning()
		return a.runCmd(domain.UnfilteredQuery(city))
	}

	return nil
}

// loadCmd loads a city's table in the background.
func (a *App) loadCmd(city domain.City) tea.Cmd {
	ctx, explorer, now := a.ctx, a.ports.Explorer, a.now
	return func() tea.Msg {
		start := now()
		table, err := explorer.Load(ctx, city)
		elapsed := now().Sub(start)
		if err != nil {
			logger.Warn("Loading %s failed: %v", city, err)
		}
		return messages.TableLoaded{City: city, Table: table, Elapsed: elapsed, Err: err}
	}
}

// runCmd runs a query against the loaded table in the background.
func (a *App) runCmd(query domain.Query) tea.Cmd {
	ctx, explorer, table := a.ctx, a.ports.Explorer, a.table
	return func() tea.Msg {
		r, err := explorer.Run(ctx, table, query)
		return messages.ReportReady{Query: query, Report: r, Err: err}
	}
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch a.currentView {
	case messages.ViewActions:
		body = a.actionsView.View()
	case messages.ViewFilter:
		body = a.filterView.View()
	case messages.ViewReport:
		body = a.reportView.View()
	case messages.ViewRows:
		body = a.rowsView.View()
	case messages.ViewHelp:
		body = a.viewHelp()
	default:
		body = a.citiesView.View()
	}

	return body + "\n" + a.statusBar.View()
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n\n")
	b.WriteString(a.help.FullHelpView(a.keymap.FullHelp()))
	b.WriteString("\n\n")
	b.WriteString(a.styles.Muted.Render("Menus also accept the item number. [esc] back"))
	return b.String()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Table returns the loaded table, or nil.
func (a *App) Table() *domain.TripTable {
	return a.table
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// StatusBar returns the status bar component.
func (a *App) StatusBar() *status.Bar {
	return a.statusBar
}

// ReportView returns the report view component.
func (a *App) ReportView() *report.View {
	return a.reportView
}

// RowsView returns the rows view component.
func (a *App) RowsView() *rows.View {
	return a.rowsView
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true

	inner := max(height-statusBarLines, 1)
	a.citiesView.SetDimensions(width, inner)
	a.actionsView.SetDimensions(width, inner)
	a.filterView.SetDimensions(width, inner)
	a.reportView.SetDimensions(width, inner)
	a.rowsView.SetDimensions(width, inner)
	a.statusBar.SetWidth(width)
	a.help.Width = width
}
