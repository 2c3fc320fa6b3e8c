package services

import (
	"github.com/custodia-labs/keypad-cli/internal/core/domain"
	"github.com/custodia-labs/keypad-cli/internal/core/ports/driven"
)

// Transition computes the state that follows s under intent.
// Apart from the call into engine on Evaluate it is a pure function,
// usable from the TUI, tests and headless drivers alike.
//
// Evaluation leaves AwaitingFreshInput false, so a digit typed after a
// result extends it. Error messages are reset by the sentinel check instead.
func Transition(
	profile domain.Profile,
	engine driven.ExpressionEngine,
	s domain.State,
	intent domain.Intent,
) (domain.State, error) {
	if intent.Kind != domain.IntentEvaluate {
		return NewAccumulator(profile).Apply(s, intent)
	}

	outcome := NewEvaluator(engine, profile.Rounding).Outcome(s.Buffer)
	next := domain.State{
		Buffer: outcome.Display(profile.Rounding),
		Phase:  domain.PhaseResult,
	}
	if outcome.IsError() {
		next.Phase = domain.PhaseError
	}
	return next, nil
}
