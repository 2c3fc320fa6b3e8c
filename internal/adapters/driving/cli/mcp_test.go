package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMCPServeCmd_Registered(t *testing.T) {
	cmd, _, err := rootCmd.Find([]string{"mcp", "serve"})
	require.NoError(t, err)
	assert.Equal(t, "serve", cmd.Name())

	port := cmd.Flags().Lookup("port")
	require.NotNil(t, port)
	assert.Equal(t, "p", port.Shorthand)
	assert.Equal(t, "0", port.DefValue)
}

func TestMCPServe_NoCalculator(t *testing.T) {
	SetServices(&Services{})

	_, err := execute(t, "", "mcp", "serve")

	assert.EqualError(t, err, "calculator not configured")
}

func TestMCPServeCmd_HTTPFlag(t *testing.T) {
	cmd, _, err := rootCmd.Find([]string{"mcp", "serve"})
	require.NoError(t, err)

	flag := cmd.Flags().Lookup("http")
	require.NotNil(t, flag)
	assert.Equal(t, "false", flag.DefValue)
}
