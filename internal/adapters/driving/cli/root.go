// Package cli implements the bikeshare command-line interface.
package cli

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/bikeshare-cli/internal/core/ports/driving"
	"github.com/custodia-labs/bikeshare-cli/internal/logger"
)

// version is set at build time.
var version = "dev"

// Options holds the values of the global flags.
type Options struct {
	// ConfigDir is the directory holding config.toml.
	ConfigDir string

	// DataDir overrides data.dir from the config file.
	DataDir string

	// Source overrides data.source from the config file.
	Source string

	// Verbose enables debug logging.
	Verbose bool
}

// Services bundles the driving ports the commands use.
type Services struct {
	Explorer driving.ExplorerService
	Settings driving.SettingsService

	// Close releases resources held by the services. May be nil.
	Close func() error
}

// ServiceFactory builds the services once the global flags are parsed.
type ServiceFactory func(opts Options) (*Services, error)

var (
	globalOpts Options

	serviceFactory  ServiceFactory
	explorerService driving.ExplorerService
	settingsService driving.SettingsService
	closeServices   func() error
)

var rootCmd = &cobra.Command{
	Use:   "bikeshare",
	Short: "Explore US bike-share trip data",
	Long: `Explore bike-share trip data for Chicago, New York City and Washington.

Run without a subcommand to start the interactive explorer. Use the stats,
rows and cities commands for one-shot queries, or tui for the terminal UI.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(globalOpts.Verbose)
	},
	RunE: runExplore,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&globalOpts.ConfigDir, "config", "", "config directory (default ~/.bikeshare)")
	flags.StringVar(&globalOpts.DataDir, "data-dir", "", "directory holding the city CSV files")
	flags.StringVar(&globalOpts.Source, "source", "", "trip source: csv or sqlite")
	flags.BoolVarP(&globalOpts.Verbose, "verbose", "v", false, "print debug output to stderr")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetServiceFactory sets the function that builds services on first use.
func SetServiceFactory(factory ServiceFactory) {
	serviceFactory = factory
}

// SetServices sets the services directly, bypassing the factory.
func SetServices(explorer driving.ExplorerService, settings driving.SettingsService) {
	explorerService = explorer
	settingsService = settings
}

// Execute runs the root command with output on stdout.
func Execute(ctx context.Context) error {
	rootCmd.SetOut(os.Stdout)
	return rootCmd.ExecuteContext(ctx)
}

// Close releases the services built by the factory.
func Close() error {
	if closeServices == nil {
		return nil
	}
	err := closeServices()
	closeServices = nil
	return err
}

// ensureServices builds the services from the factory if they are not set.
func ensureServices() error {
	if explorerService != nil || serviceFactory == nil {
		return nil
	}

	services, err := serviceFactory(globalOpts)
	if err != nil {
		return err
	}

	explorerService = services.Explorer
	settingsService = services.Settings
	closeServices = services.Close
	return nil
}

func requireExplorer() (driving.ExplorerService, error) {
	if err := ensureServices(); err != nil {
		return nil, err
	}
	if explorerService == nil {
		return nil, errors.New("explorer service not configured")
	}
	return explorerService, nil
}

// currentSettings returns the configured settings, or the zero value.
func currentSettings() driving.Settings {
	if settingsService == nil {
		return driving.Settings{}
	}
	return settingsService.Get()
}
