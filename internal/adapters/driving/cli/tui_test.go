package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/bikeshare-cli/internal/adapters/driving/tui"
	"github.com/custodia-labs/bikeshare-cli/internal/adapters/driving/tui/messages"
)

// stubTUI replaces the program runner for the duration of the test.
func stubTUI(t *testing.T, run func(app *tui.App) error) {
	t.Helper()
	original := runTUIApp
	runTUIApp = run
	t.Cleanup(func() { runTUIApp = original })
}

func TestTUICmd_Exists(t *testing.T) {
	cmd, _, err := rootCmd.Find([]string{"tui"})

	require.NoError(t, err)
	assert.Equal(t, "tui", cmd.Name())
}

func TestTUICmd_BuildsApp(t *testing.T) {
	setupTestServices(t, map[string]any{"browse.default_step": int64(3)})

	var started *tui.App
	stubTUI(t, func(app *tui.App) error {
		started = app
		return nil
	})

	_, err := runCommand(t, "", "tui")

	require.NoError(t, err)
	require.NotNil(t, started)
	assert.Equal(t, messages.ViewCities, started.CurrentView())
}

func TestTUICmd_RunError(t *testing.T) {
	setupTestServices(t, nil)
	stubTUI(t, func(*tui.App) error { return errors.New("no terminal") })

	_, err := runCommand(t, "", "tui")

	assert.EqualError(t, err, "TUI error: no terminal")
}

func TestTUICmd_NoServices(t *testing.T) {
	saveGlobals(t)
	SetServices(nil, nil)
	serviceFactory = nil
	stubTUI(t, func(*tui.App) error {
		t.Fatal("app should not start")
		return nil
	})

	_, err := runCommand(t, "", "tui")

	assert.EqualError(t, err, "explorer service not configured")
}
