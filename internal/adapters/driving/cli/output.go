package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/keypad-cli/internal/core/domain"
)

// stateJSON is the --json form of a calculator state.
type stateJSON struct {
	Display            string `json:"display"`
	Phase              string `json:"phase"`
	AwaitingFreshInput bool   `json:"awaiting_fresh_input"`
	Profile            string `json:"profile"`
}

func newStateJSON(s domain.State, p domain.Profile) stateJSON {
	return stateJSON{
		Display:            s.Display(),
		Phase:              s.Phase.String(),
		AwaitingFreshInput: s.AwaitingFreshInput,
		Profile:            p.Name,
	}
}

func outputJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
