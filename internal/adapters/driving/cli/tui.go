package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/keypad-cli/internal/adapters/driving/tui"
	"github.com/custodia-labs/keypad-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/keypad-cli/internal/logger"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive keypad",
	Long: `Launch the interactive terminal keypad.

Type on the keyboard or click the keys with the mouse. The pressed key
flashes whichever way it was pressed.

Controls:
  0-9 . + - * /  - Enter digits and operators
  % r            - Modulo and square root (extended profile)
  Enter, =       - Evaluate
  Esc            - Clear
  Backspace      - Delete the last character
  ?              - Toggle help
  q              - Quit

Edits to the settings file while the keypad is open are applied live.
With --verbose, debug logs go to --log-file instead of the screen.`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("tui panic: %v", r)
		}
	}()

	if calculator == nil {
		return errors.New("calculator not configured")
	}

	// The TUI owns the terminal, so debug output goes to a file.
	if logger.IsVerbose() {
		restore, err := logger.ToFile(logFile)
		if err != nil {
			return err
		}
		defer restore() //nolint:errcheck // best-effort close of the log file
	}

	app, err := tui.NewApp(tui.NewPorts(calculator, settingsService))
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	defer app.Close()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	app.WithContext(ctx)

	p := app.NewProgram()
	watchSettings(ctx, func(msg tea.Msg) { p.Send(msg) })

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}

// watchSettings forwards settings file changes to send until ctx ends.
// It does nothing when settings are not file backed.
func watchSettings(ctx context.Context, send func(tea.Msg)) {
	if configWatcher == nil || settingsService == nil {
		return
	}

	err := configWatcher.Watch(ctx, func() {
		send(settingsChanged())
	})
	if err != nil {
		logger.Warn("settings will not reload: %v", err)
	}
}

// settingsChanged reads the settings after a reload.
func settingsChanged() tea.Msg {
	settings, err := settingsService.Get()
	if err != nil {
		return messages.ErrorOccurred{Err: fmt.Errorf("reloading settings: %w", err)}
	}
	return messages.SettingsChanged{Settings: *settings}
}
