package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/bikeshare-cli/internal/adapters/driving/tui"
)

// runTUIApp runs the app until it exits. Tests replace it.
var runTUIApp = func(app *tui.App) error {
	return app.Run()
}

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface.

The TUI offers the same exploration as the console explorer: pick a city,
then browse raw rows, filter by date or by month and weekday, or summarise
every trip.

Controls:
  ↑/k, ↓/j - Navigate
  1-9      - Pick a menu item
  Enter    - Select / Submit
  Tab      - Next form field
  n        - Next rows
  Esc      - Back
  ?        - Toggle help
  q        - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	explorer, err := requireExplorer()
	if err != nil {
		return err
	}

	ports := &tui.Ports{
		Explorer: explorer,
		Settings: settingsService,
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	if err := runTUIApp(app); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
