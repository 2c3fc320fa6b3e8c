// Package cli provides the cobra commands of the keypad binary.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/keypad-cli/internal/core/ports/driving"
	"github.com/custodia-labs/keypad-cli/internal/logger"
)

// version is set at build time with -ldflags "-X ...cli.version=v1.2.3".
var version = "dev"

// Options are the persistent flags the bootstrap needs to build services.
type Options struct {
	// ConfigDir overrides ~/.keypad.
	ConfigDir string

	// Ephemeral keeps settings in memory only.
	Ephemeral bool
}

// ConfigWatcher reports changes to the stored configuration.
type ConfigWatcher interface {
	Watch(ctx context.Context, onChange func()) error
}

// Services are the core services the commands drive.
type Services struct {
	Calculator driving.Calculator
	Settings   driving.SettingsService

	// Watcher is nil when settings are not file backed.
	Watcher ConfigWatcher
}

// Bootstrap builds the services once flags are parsed.
type Bootstrap func(opts Options) (*Services, error)

var (
	bootstrap       Bootstrap
	calculator      driving.Calculator
	settingsService driving.SettingsService
	configWatcher   ConfigWatcher
)

var (
	verbose   bool
	configDir string
	ephemeral bool
	logFile   string
)

var rootCmd = &cobra.Command{
	Use:   "keypad",
	Short: "A pocket calculator for the terminal",
	Long: `keypad is a pocket calculator with a terminal keypad, a headless key
replay mode and an MCP server for AI assistants.

Run 'keypad tui' for the interactive keypad or 'keypad eval 7/2' for a
one-off result.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.keypad)")
	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "keep settings in memory; nothing is written to disk")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "keypad-debug.log", "debug log file used by the tui with --verbose")
}

// SetBootstrap registers the function that builds services before a command runs.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// SetServices injects services directly.
func SetServices(s *Services) {
	calculator = s.Calculator
	settingsService = s.Settings
	configWatcher = s.Watcher
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func setup(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	if bootstrap == nil {
		return nil
	}

	services, err := bootstrap(Options{ConfigDir: configDir, Ephemeral: ephemeral})
	if err != nil {
		return fmt.Errorf("initialising: %w", err)
	}
	SetServices(services)
	return nil
}
