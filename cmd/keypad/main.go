// Command keypad is a pocket calculator for the terminal.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/keypad-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/keypad-cli/internal/adapters/driven/engine/govaluate"
	"github.com/custodia-labs/keypad-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/keypad-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/keypad-cli/internal/core/ports/driven"
	"github.com/custodia-labs/keypad-cli/internal/core/services"
	"github.com/custodia-labs/keypad-cli/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetBootstrap(bootstrap)

	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// bootstrap wires the adapters into the core services.
func bootstrap(opts cli.Options) (*cli.Services, error) {
	var (
		store   driven.ConfigStore
		watcher cli.ConfigWatcher
	)

	if opts.Ephemeral {
		logger.Debug("using in-memory settings")
		store = memory.NewConfigStore()
	} else {
		fileStore, err := file.NewConfigStore(opts.ConfigDir)
		if err != nil {
			return nil, fmt.Errorf("opening config: %w", err)
		}
		logger.Debug("using settings from %s", fileStore.Path())
		store = fileStore
		watcher = fileStore
	}

	settings := services.NewSettingsService(store)
	profile, err := settings.Profile()
	if err != nil {
		return nil, fmt.Errorf("resolving profile: %w", err)
	}

	calculator := services.NewCalculator(govaluate.New(), profile)
	logger.Debug("session %s started with profile %s", calculator.ID(), profile.Name)

	return &cli.Services{
		Calculator: calculator,
		Settings:   settings,
		Watcher:    watcher,
	}, nil
}
