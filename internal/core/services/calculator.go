package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/custodia-labs/keypad-cli/internal/core/domain"
	"github.com/custodia-labs/keypad-cli/internal/core/ports/driven"
	"github.com/custodia-labs/keypad-cli/internal/core/ports/driving"
	"github.com/custodia-labs/keypad-cli/internal/logger"
)

// Ensure Calculator implements the interface.
var _ driving.Calculator = (*Calculator)(nil)

// Calculator is the single owner of a session's state. Keyboard, mouse and
// headless drivers all funnel through Apply, which processes one intent
// completely (transition, state write, notifications) before the next.
type Calculator struct {
	id     string
	engine driven.ExpressionEngine

	// applyMu serialises Apply calls including notification delivery.
	applyMu sync.Mutex

	// mu guards profile and state for readers.
	mu      sync.RWMutex
	profile domain.Profile
	state   domain.State

	subsMu      sync.Mutex
	subscribers map[int]func(domain.Notification)
	nextSubID   int
}

// NewCalculator creates a session in its initial state.
func NewCalculator(engine driven.ExpressionEngine, profile domain.Profile) *Calculator {
	return &Calculator{
		id:          uuid.New().String(),
		engine:      engine,
		profile:     profile,
		state:       domain.InitialState(),
		subscribers: make(map[int]func(domain.Notification)),
	}
}

// ID returns the session identifier.
func (c *Calculator) ID() string {
	return c.id
}

// State returns a snapshot of the current state.
func (c *Calculator) State() domain.State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Profile returns the active profile.
func (c *Calculator) Profile() domain.Profile {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.profile
}

// SetProfile swaps the active profile. The buffer is kept.
func (c *Calculator) SetProfile(profile domain.Profile) {
	c.applyMu.Lock()
	defer c.applyMu.Unlock()

	c.mu.Lock()
	c.profile = profile
	c.mu.Unlock()

	logger.Info("session %s: profile %s (rounding %s, strict sentinel %t)",
		c.id, profile.Name, profile.Rounding, profile.StrictSentinel)
}

// Apply processes one intent and returns the resulting state.
// Subscribers are notified after the state is written. They must not
// call Apply themselves.
func (c *Calculator) Apply(ctx context.Context, intent domain.Intent) (domain.State, error) {
	c.applyMu.Lock()
	defer c.applyMu.Unlock()

	if err := ctx.Err(); err != nil {
		return c.State(), err
	}

	c.mu.Lock()
	prev := c.state
	next, err := Transition(c.profile, c.engine, prev, intent)
	if err != nil {
		c.mu.Unlock()
		logger.Warn("session %s: rejected %s: %v", c.id, intent, err)
		return prev, err
	}
	c.state = next
	c.mu.Unlock()

	logger.Debug("session %s: %s %q -> %q (%s)", c.id, intent, prev.Buffer, next.Buffer, next.Phase)

	c.notify(domain.Notification{
		SessionID: c.id,
		Intent:    intent,
		Control:   intent.Control(),
		State:     next,
	})
	return next, nil
}

// Press maps key onto an intent under the active profile and applies it.
// Unrecognised keys are ignored and reported as not accepted.
func (c *Calculator) Press(ctx context.Context, key string) (domain.State, bool, error) {
	intent, ok := domain.KeyIntent(key, c.Profile())
	if !ok {
		logger.Debug("session %s: ignored key %q", c.id, key)
		return c.State(), false, nil
	}
	state, err := c.Apply(ctx, intent)
	if err != nil {
		return state, false, err
	}
	return state, true, nil
}

// Replay presses each key in order and returns the final state.
func (c *Calculator) Replay(ctx context.Context, keys []string) (domain.State, error) {
	for _, key := range keys {
		if _, _, err := c.Press(ctx, key); err != nil {
			return c.State(), fmt.Errorf("key %q: %w", key, err)
		}
	}
	return c.State(), nil
}

// Subscribe registers fn for notifications of accepted intents.
func (c *Calculator) Subscribe(fn func(domain.Notification)) func() {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()

	id := c.nextSubID
	c.nextSubID++
	c.subscribers[id] = fn

	return func() {
		c.subsMu.Lock()
		defer c.subsMu.Unlock()
		delete(c.subscribers, id)
	}
}

func (c *Calculator) notify(n domain.Notification) {
	c.subsMu.Lock()
	fns := make([]func(domain.Notification), 0, len(c.subscribers))
	for _, fn := range c.subscribers {
		fns = append(fns, fn)
	}
	c.subsMu.Unlock()

	for _, fn := range fns {
		fn(n)
	}
}
