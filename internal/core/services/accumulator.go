package services

import (
	"fmt"
	"unicode/utf8"

	"github.com/custodia-labs/keypad-cli/internal/core/domain"
)

// Accumulator applies entry, clear and backspace intents to a state.
// It has no dependencies and never mutates its input.
type Accumulator struct {
	profile domain.Profile
}

// NewAccumulator creates an accumulator for the given profile.
func NewAccumulator(profile domain.Profile) *Accumulator {
	return &Accumulator{profile: profile}
}

// Apply returns the state that follows s under intent.
// Evaluate intents are rejected with domain.ErrInvalidIntent; they belong
// to the Evaluator.
func (a *Accumulator) Apply(s domain.State, intent domain.Intent) (domain.State, error) {
	if err := intent.Validate(); err != nil {
		return s, err
	}
	if !a.profile.Supports(intent) {
		return s, fmt.Errorf("%w: %s on %s profile", domain.ErrUnsupportedIntent, intent, a.profile.Name)
	}

	switch intent.Kind {
	case domain.IntentClear:
		return domain.InitialState(), nil
	case domain.IntentBackspace:
		return backspace(s), nil
	case domain.IntentEvaluate:
		return s, fmt.Errorf("%w: evaluate is not an entry intent", domain.ErrInvalidIntent)
	default:
		return a.enter(s, intent), nil
	}
}

// enter handles digits, operators, the decimal point and √.
// Fresh-input replacement is checked before any append or collapse.
func (a *Accumulator) enter(s domain.State, intent domain.Intent) domain.State {
	glyph := intent.Glyph()

	if s.AwaitingFreshInput || a.profile.IsResetSentinel(s.Buffer) {
		return domain.State{Buffer: glyph, Phase: domain.PhaseEntering}
	}

	if intent.Kind == domain.IntentDecimalPoint && runHasDecimal(s.Buffer) {
		return s
	}

	if intent.IsOperatorClass() {
		last, size := utf8.DecodeLastRuneInString(s.Buffer)
		if domain.IsOperatorGlyph(last) {
			return domain.State{
				Buffer: s.Buffer[:len(s.Buffer)-size] + glyph,
				Phase:  domain.PhaseEntering,
			}
		}
	}

	return domain.State{Buffer: s.Buffer + glyph, Phase: domain.PhaseEntering}
}

// backspace drops the last character. A single character becomes "0"
// without re-arming fresh input.
func backspace(s domain.State) domain.State {
	next := domain.State{
		AwaitingFreshInput: s.AwaitingFreshInput,
		Phase:              domain.PhaseEntering,
	}
	if utf8.RuneCountInString(s.Buffer) <= 1 {
		next.Buffer = domain.ZeroBuffer
		return next
	}
	_, size := utf8.DecodeLastRuneInString(s.Buffer)
	next.Buffer = s.Buffer[:len(s.Buffer)-size]
	return next
}

// runHasDecimal reports whether the trailing numeric run already has a ".".
func runHasDecimal(buffer string) bool {
	for len(buffer) > 0 {
		r, size := utf8.DecodeLastRuneInString(buffer)
		if r == '.' {
			return true
		}
		if domain.IsOperatorGlyph(r) {
			return false
		}
		buffer = buffer[:len(buffer)-size]
	}
	return false
}
