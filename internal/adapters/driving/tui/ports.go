// Package tui provides an interactive terminal keypad for the calculator.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/keypad-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Calculator is the session the keypad drives.
	Calculator driving.Calculator

	// Settings supplies the flash duration. Optional.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(calculator driving.Calculator, settings driving.SettingsService) *Ports {
	return &Ports{
		Calculator: calculator,
		Settings:   settings,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Calculator == nil {
		return ErrMissingCalculator
	}
	return nil
}
