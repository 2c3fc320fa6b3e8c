package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/keypad-cli/internal/adapters/driving/mcp"
	"github.com/custodia-labs/keypad-cli/internal/logger"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can use the
calculator.

Tools:
  press     - press keys, e.g. {"keys": "12+3="}
  evaluate  - clear, type and evaluate, e.g. {"expression": "7/2"}
  clear     - reset to 0

Resources:
  keypad://state           - current display and phase
  keypad://profile         - active profile
  keypad://profiles/{name} - a named profile

By default, the server communicates over stdio using JSON-RPC. Use --port
to start an HTTP server instead, e.g. for the MCP Inspector web UI, or
--http to serve on the first free port from 8080 to 8180.

Examples:
  # Stdio mode (default)
  keypad mcp serve

  # HTTP mode
  keypad mcp serve --port 8080
  keypad mcp serve --http

Client configuration:
  {
    "mcpServers": {
      "keypad": {
        "command": "/path/to/keypad",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpServeCmd.Flags().Bool("http", false, "serve HTTP on the first free port from 8080")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}
	useHTTP, err := cmd.Flags().GetBool("http")
	if err != nil {
		return fmt.Errorf("getting http flag: %w", err)
	}

	if calculator == nil {
		return errors.New("calculator not configured")
	}

	server, err := mcp.NewServer(&mcp.Ports{Calculator: calculator})
	if err != nil {
		return err
	}

	// Profile edits apply to the served session as they do in the TUI.
	if configWatcher != nil && settingsService != nil {
		err := configWatcher.Watch(cmd.Context(), func() {
			profile, err := settingsService.Profile()
			if err != nil {
				logger.Warn("ignoring settings change: %v", err)
				return
			}
			calculator.SetProfile(profile)
		})
		if err != nil {
			logger.Warn("settings will not reload: %v", err)
		}
	}

	if port == 0 && useHTTP {
		port, err = mcp.FindAvailablePort(mcp.DefaultPortStart, mcp.DefaultPortEnd)
		if err != nil {
			return err
		}
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
