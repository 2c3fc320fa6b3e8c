// Package mcp provides an MCP (Model Context Protocol) server adapter for keypad.
// It lets AI assistants press keys on a calculator session and read its state.
package mcp

import "errors"

// ErrMissingCalculator is returned when the calculator session is not provided.
var ErrMissingCalculator = errors.New("mcp: calculator is required")
