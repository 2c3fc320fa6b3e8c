package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/keypad-cli/internal/adapters/driven/engine/govaluate"
	"github.com/custodia-labs/keypad-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/keypad-cli/internal/core/services"
)

// useTestServices wires an in-memory calculator for the given profile.
func useTestServices(t *testing.T, profile string) (*services.Calculator, *services.SettingsService) {
	t.Helper()

	settings := services.NewSettingsService(memory.NewConfigStore())
	require.NoError(t, settings.SetProfile(profile))
	p, err := settings.Profile()
	require.NoError(t, err)

	calc := services.NewCalculator(govaluate.New(), p)
	SetServices(&Services{Calculator: calc, Settings: settings})
	t.Cleanup(func() {
		SetServices(&Services{})
		SetBootstrap(nil)
	})
	return calc, settings
}

// execute runs the root command with args and stdin, returning everything
// written to stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		keysTrace, keysJSON, evalJSON = false, false, false
		verbose, ephemeral, configDir = false, false, ""
	})

	err := rootCmd.Execute()
	return buf.String(), err
}
