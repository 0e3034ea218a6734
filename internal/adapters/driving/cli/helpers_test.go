package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/bikeshare-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
	"github.com/custodia-labs/bikeshare-cli/internal/core/ports/driving"
	"github.com/custodia-labs/bikeshare-cli/internal/core/services"
)

var chicagoSchema = domain.Schema{HasEndTime: true, HasGender: true, HasBirthYear: true, DurationUnit: "seconds"}

// chicagoRecords returns twelve trips, one a day from Friday March 3 2017,
// each starting at 09:00 and lasting 600 seconds.
func chicagoRecords() []domain.TripRecord {
	base := time.Date(2017, time.March, 3, 9, 0, 0, 0, time.UTC)
	out := make([]domain.TripRecord, 12)
	for i := range out {
		start := base.AddDate(0, 0, i)
		out[i] = domain.TripRecord{
			StartTime:    start,
			EndTime:      start.Add(10 * time.Minute),
			StartStation: "Canal St & Madison St",
			EndStation:   "Clinton St & Washington Blvd",
			Duration:     600,
			UserType:     domain.UserTypeSubscriber,
			Gender:       domain.GenderMale,
			BirthYear:    1985,
		}
	}
	return out
}

// setupTestServices installs an explorer over an in-memory Chicago table
// and restores the previous services when the test ends.
func setupTestServices(t *testing.T, config map[string]any) *memory.TripSource {
	t.Helper()

	source := memory.NewTripSource()
	source.Put(domain.CityChicago, chicagoSchema, chicagoRecords())

	var settings driving.SettingsService
	if config != nil {
		settings = services.NewSettingsService(memory.NewConfigStore(config))
	}

	saveGlobals(t)
	SetServices(services.NewExplorerService(source), settings)
	return source
}

// saveGlobals restores the package-level service state after the test.
func saveGlobals(t *testing.T) {
	t.Helper()

	explorer, settings := explorerService, settingsService
	factory, closer, opts := serviceFactory, closeServices, globalOpts
	t.Cleanup(func() {
		explorerService, settingsService = explorer, settings
		serviceFactory, closeServices, globalOpts = factory, closer, opts
	})
}

// resetFlags restores every flag of cmd and its children to its default,
// so values from one Execute do not leak into the next.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}

// runCommand executes the root command with args and stdin, returning
// everything written to stdout and stderr.
func runCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	if args == nil {
		args = []string{}
	}

	resetFlags(rootCmd)
	buf := new(bytes.Buffer)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		resetFlags(rootCmd)
	})

	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}
