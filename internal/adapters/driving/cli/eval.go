package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/keypad-cli/internal/core/domain"
	"github.com/custodia-labs/keypad-cli/internal/core/services"
)

var evalJSON bool

var evalCmd = &cobra.Command{
	Use:   "eval <expression>",
	Short: "Type an expression on the keypad and evaluate it",
	Long: `Clears the calculator, types the expression one key at a time and
presses =. The output is exactly what the keypad would display, including
error messages such as "Cannot divide by zero".

The display glyphs × and ÷ are accepted alongside * and /.

Examples:
  keypad eval 7/2
  keypad eval "12 × 3"
  keypad eval √16 --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEval,
}

// evalResult is the --json output of eval.
type evalResult struct {
	Expression string `json:"expression"`
	Display    string `json:"display"`
	Phase      string `json:"phase"`
	IsError    bool   `json:"is_error"`
}

func init() {
	evalCmd.Flags().BoolVar(&evalJSON, "json", false, "output the result as JSON")
	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	if calculator == nil {
		return errors.New("calculator not configured")
	}

	expression := strings.Join(args, " ")
	state, err := services.TypeExpression(cmd.Context(), calculator, expression)
	if err != nil {
		return err
	}

	if evalJSON {
		return outputJSON(cmd, evalResult{
			Expression: expression,
			Display:    state.Display(),
			Phase:      state.Phase.String(),
			IsError:    state.Phase == domain.PhaseError,
		})
	}
	fmt.Fprintln(cmd.OutOrStdout(), state.Display())
	return nil
}
