package cli

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/keypad-cli/internal/core/domain"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "keypad version %s\n", version)
		fmt.Fprintf(out, "  go:       %s\n", runtime.Version())
		fmt.Fprintf(out, "  profiles: %s\n", strings.Join(domain.ProfileNames(), ", "))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
