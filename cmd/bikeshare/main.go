// Command bikeshare explores US bike-share trip data.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/bikeshare-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/bikeshare-cli/internal/adapters/driven/storage/csvfile"
	"github.com/custodia-labs/bikeshare-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/bikeshare-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
	"github.com/custodia-labs/bikeshare-cli/internal/core/ports/driven"
	"github.com/custodia-labs/bikeshare-cli/internal/core/services"
	"github.com/custodia-labs/bikeshare-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetServiceFactory(buildServices)
	defer func() {
		if err := cli.Close(); err != nil {
			logger.Warn("closing services: %v", err)
		}
	}()

	if err := cli.Execute(ctx); err != nil {
		return 1
	}
	return 0
}

// buildServices wires the configured trip source into the core services.
func buildServices(opts cli.Options) (*cli.Services, error) {
	configStore, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	settingsService := services.NewSettingsService(configStore)
	settingsService.SetOverrides(services.Overrides{
		DataDir: opts.DataDir,
		Source:  opts.Source,
	})
	settings := settingsService.Get()

	var (
		source  driven.TripSource
		closeFn func() error
	)
	switch settings.Source {
	case "csv":
		csvSource := csvfile.NewSource(settings.DataDir, settings.Files, settings.DurationUnit)
		csvSource.SetStrict(settings.StrictRows)
		source = csvSource
	case "sqlite":
		store, err := sqlite.NewStore(settings.SQLitePath, settings.DurationUnit)
		if err != nil {
			return nil, fmt.Errorf("opening trip database: %w", err)
		}
		source = store
		closeFn = store.Close
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedSource, settings.Source)
	}

	logger.Debug("Trip source: %s (config %s)", settings.Source, configStore.Path())

	return &cli.Services{
		Explorer: services.NewExplorerService(source),
		Settings: settingsService,
		Close:    closeFn,
	}, nil
}
