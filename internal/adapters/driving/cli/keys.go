package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/keypad-cli/internal/core/domain"
)

var (
	keysTrace bool
	keysJSON  bool
)

var keysCmd = &cobra.Command{
	Use:   "keys [keys...]",
	Short: "Press keys on a headless keypad",
	Long: `Presses keys on a calculator without drawing the keypad and prints the
final display.

Multi-character key names are esc, backspace and enter; any other argument
is split into single characters, so these are equivalent:

  keypad keys 12+3=
  keypad keys 1 2 + 3 enter

With no arguments, keys are read from stdin:

  echo "7 * 6 enter" | keypad keys

Keys the active profile does not have are ignored.`,
	RunE: runKeys,
}

func init() {
	keysCmd.Flags().BoolVar(&keysTrace, "trace", false, "print the display after every key")
	keysCmd.Flags().BoolVar(&keysJSON, "json", false, "output the final state as JSON")
	rootCmd.AddCommand(keysCmd)
}

func runKeys(cmd *cobra.Command, args []string) error {
	if calculator == nil {
		return errors.New("calculator not configured")
	}

	keys, err := readKeys(cmd, args)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	for _, key := range keys {
		state, accepted, err := calculator.Press(ctx, key)
		if err != nil {
			return fmt.Errorf("key %q: %w", key, err)
		}
		if !keysTrace {
			continue
		}
		if accepted {
			fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s\n", key, state.Display())
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "%-10s (ignored)\n", key)
		}
	}

	final := calculator.State()
	if keysJSON {
		return outputJSON(cmd, newStateJSON(final, calculator.Profile()))
	}
	fmt.Fprintln(cmd.OutOrStdout(), final.Display())
	return nil
}

// readKeys takes keys from args, or from stdin when it is not a terminal.
func readKeys(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return domain.SplitKeys(strings.Join(args, " ")), nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return nil, errors.New("no keys given: pass them as arguments or pipe them on stdin")
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return domain.SplitKeys(string(data)), nil
}
