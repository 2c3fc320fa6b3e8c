package driving

import (
	"context"

	"github.com/custodia-labs/keypad-cli/internal/core/domain"
)

// Calculator is a single calculator session. All intents from every
// input source are serialised through it.
type Calculator interface {
	// ID returns the session identifier.
	ID() string

	// State returns a snapshot of the current state.
	State() domain.State

	// Profile returns the active capability profile.
	Profile() domain.Profile

	// SetProfile swaps the active profile. The buffer is kept.
	SetProfile(profile domain.Profile)

	// Apply processes one intent and returns the resulting state.
	// Intents the profile does not support return domain.ErrUnsupportedIntent
	// and leave the state unchanged.
	Apply(ctx context.Context, intent domain.Intent) (domain.State, error)

	// Press maps a key name onto an intent and applies it.
	// Unrecognised keys are ignored; the second return value reports
	// whether the key was accepted.
	Press(ctx context.Context, key string) (domain.State, bool, error)

	// Replay presses each key in order and returns the final state.
	Replay(ctx context.Context, keys []string) (domain.State, error)

	// Subscribe registers fn for notifications of accepted intents.
	// The returned function removes the subscription.
	Subscribe(fn func(domain.Notification)) (cancel func())
}
