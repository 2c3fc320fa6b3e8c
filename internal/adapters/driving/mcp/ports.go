package mcp

import (
	"github.com/custodia-labs/keypad-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Calculator is the session the tools operate on.
	Calculator driving.Calculator
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p == nil || p.Calculator == nil {
		return ErrMissingCalculator
	}
	return nil
}
