package mcp

import (
	"context"

	"github.com/custodia-labs/keypad-cli/internal/core/domain"
	"github.com/custodia-labs/keypad-cli/internal/core/ports/driving"
)

// failingCalculator is a driving.Calculator whose Apply always fails.
type failingCalculator struct {
	err error
}

var _ driving.Calculator = (*failingCalculator)(nil)

func (m *failingCalculator) ID() string                                   { return "failing" }
func (m *failingCalculator) State() domain.State                          { return domain.InitialState() }
func (m *failingCalculator) Profile() domain.Profile                      { return domain.ClassicProfile() }
func (m *failingCalculator) SetProfile(_ domain.Profile)                  {}
func (m *failingCalculator) Subscribe(_ func(domain.Notification)) func() { return func() {} }

func (m *failingCalculator) Apply(_ context.Context, _ domain.Intent) (domain.State, error) {
	return domain.InitialState(), m.err
}

func (m *failingCalculator) Press(_ context.Context, _ string) (domain.State, bool, error) {
	return domain.InitialState(), false, m.err
}

func (m *failingCalculator) Replay(_ context.Context, _ []string) (domain.State, error) {
	return domain.InitialState(), m.err
}
