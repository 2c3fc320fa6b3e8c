package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/keypad-cli/internal/core/domain"
)

func TestServer_handlePress(t *testing.T) {
	ctx := context.Background()

	t.Run("presses keys in order", func(t *testing.T) {
		server, calc := newTestServer(t, domain.ClassicProfile())

		_, output, err := server.handlePress(ctx, nil, PressInput{Keys: "12+3"})

		require.NoError(t, err)
		assert.Equal(t, "12+3", output.State.Display)
		assert.Equal(t, "entering", output.State.Phase)
		assert.Equal(t, "classic", output.State.Profile)
		assert.Empty(t, output.Ignored)
		assert.Equal(t, "12+3", calc.State().Buffer)
	})

	t.Run("evaluates with enter", func(t *testing.T) {
		server, _ := newTestServer(t, domain.ClassicProfile())

		_, output, err := server.handlePress(ctx, nil, PressInput{Keys: "7 * 6 enter"})

		require.NoError(t, err)
		assert.Equal(t, "42", output.State.Display)
		assert.Equal(t, "result", output.State.Phase)
	})

	t.Run("reports ignored keys", func(t *testing.T) {
		server, _ := newTestServer(t, domain.ClassicProfile())

		_, output, err := server.handlePress(ctx, nil, PressInput{Keys: "9%x"})

		require.NoError(t, err)
		assert.Equal(t, "9", output.State.Display)
		assert.Equal(t, []string{"%", "x"}, output.Ignored)
	})

	t.Run("empty keys returns current state", func(t *testing.T) {
		server, _ := newTestServer(t, domain.ClassicProfile())

		_, output, err := server.handlePress(ctx, nil, PressInput{})

		require.NoError(t, err)
		assert.Equal(t, "0", output.State.Display)
		assert.True(t, output.State.AwaitingFreshInput)
	})

	t.Run("returns error from calculator", func(t *testing.T) {
		server, err := NewServer(&Ports{Calculator: &failingCalculator{err: errors.New("closed")}})
		require.NoError(t, err)

		_, _, err = server.handlePress(ctx, nil, PressInput{Keys: "1"})

		assert.EqualError(t, err, "closed")
	})
}

func TestServer_handleEvaluate(t *testing.T) {
	ctx := context.Background()

	t.Run("returns display", func(t *testing.T) {
		server, _ := newTestServer(t, domain.ExtendedProfile())

		_, output, err := server.handleEvaluate(ctx, nil, EvaluateInput{Expression: "√16"})

		require.NoError(t, err)
		assert.Equal(t, "4", output.Display)
		assert.Equal(t, "√16", output.Expression)
		assert.False(t, output.IsError)
	})

	t.Run("error message is not a tool error", func(t *testing.T) {
		server, _ := newTestServer(t, domain.ClassicProfile())

		_, output, err := server.handleEvaluate(ctx, nil, EvaluateInput{Expression: "1/0"})

		require.NoError(t, err)
		assert.Equal(t, domain.MessageDivisionByZero, output.Display)
		assert.True(t, output.IsError)
	})

	t.Run("unknown key is a tool error", func(t *testing.T) {
		server, _ := newTestServer(t, domain.ClassicProfile())

		_, _, err := server.handleEvaluate(ctx, nil, EvaluateInput{Expression: "sqrt(4)"})

		assert.ErrorIs(t, err, domain.ErrUnknownKey)
	})
}

func TestServer_handleClear(t *testing.T) {
	ctx := context.Background()

	t.Run("resets state", func(t *testing.T) {
		server, calc := newTestServer(t, domain.ClassicProfile())
		_, _, err := server.handlePress(ctx, nil, PressInput{Keys: "123"})
		require.NoError(t, err)

		_, output, err := server.handleClear(ctx, nil, ClearInput{})

		require.NoError(t, err)
		assert.Equal(t, "0", output.Display)
		assert.Equal(t, domain.InitialState(), calc.State())
	})

	t.Run("returns error from calculator", func(t *testing.T) {
		server, err := NewServer(&Ports{Calculator: &failingCalculator{err: errors.New("closed")}})
		require.NoError(t, err)

		_, _, err = server.handleClear(ctx, nil, ClearInput{})

		assert.EqualError(t, err, "closed")
	})
}
