package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/keypad-cli/internal/core/domain"
	"github.com/custodia-labs/keypad-cli/internal/core/services"
)

// PressInput is the input schema for the press tool.
type PressInput struct {
	Keys string `json:"keys" jsonschema:"keys to press, e.g. 12+3= or 7 * 2 enter; named keys are esc, backspace and enter"`
}

// PressOutput is the output schema for the press tool.
type PressOutput struct {
	State   StateOutput `json:"state"`
	Ignored []string    `json:"ignored,omitempty"`
}

// EvaluateInput is the input schema for the evaluate tool.
type EvaluateInput struct {
	Expression string `json:"expression" jsonschema:"arithmetic expression using digits, . + - * / and, on the extended keypad, % and √"`
}

// EvaluateOutput is the output schema for the evaluate tool.
type EvaluateOutput struct {
	Expression string `json:"expression"`
	Display    string `json:"display"`
	IsError    bool   `json:"is_error"`
}

// ClearInput is the input schema for the clear tool.
type ClearInput struct{}

// StateOutput is the calculator state as reported to clients.
type StateOutput struct {
	Display            string `json:"display"`
	Phase              string `json:"phase"`
	AwaitingFreshInput bool   `json:"awaiting_fresh_input"`
	Profile            string `json:"profile"`
}

func (s *Server) stateOutput(state domain.State) StateOutput {
	return StateOutput{
		Display:            state.Display(),
		Phase:              state.Phase.String(),
		AwaitingFreshInput: state.AwaitingFreshInput,
		Profile:            s.ports.Calculator.Profile().Name,
	}
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "press",
		Description: "Press keys on the calculator keypad and return the resulting state",
	}, s.handlePress)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "evaluate",
		Description: "Clear the calculator, type an expression and evaluate it",
	}, s.handleEvaluate)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "clear",
		Description: "Reset the calculator to 0",
	}, s.handleClear)
}

// handlePress presses each key in order. Keys the active profile does not
// recognise are skipped and reported back.
func (s *Server) handlePress(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input PressInput,
) (*mcp.CallToolResult, PressOutput, error) {
	var output PressOutput
	state := s.ports.Calculator.State()

	for _, key := range domain.SplitKeys(input.Keys) {
		next, accepted, err := s.ports.Calculator.Press(ctx, key)
		if err != nil {
			return nil, PressOutput{}, err
		}
		if !accepted {
			output.Ignored = append(output.Ignored, key)
		}
		state = next
	}

	output.State = s.stateOutput(state)
	return nil, output, nil
}

// handleEvaluate types the expression and evaluates it.
func (s *Server) handleEvaluate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input EvaluateInput,
) (*mcp.CallToolResult, EvaluateOutput, error) {
	state, err := services.TypeExpression(ctx, s.ports.Calculator, input.Expression)
	if err != nil {
		return nil, EvaluateOutput{}, err
	}

	return nil, EvaluateOutput{
		Expression: input.Expression,
		Display:    state.Display(),
		IsError:    state.Phase == domain.PhaseError,
	}, nil
}

// handleClear resets the session.
func (s *Server) handleClear(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ClearInput,
) (*mcp.CallToolResult, StateOutput, error) {
	state, err := s.ports.Calculator.Apply(ctx, domain.Clear())
	if err != nil {
		return nil, StateOutput{}, err
	}
	return nil, s.stateOutput(state), nil
}
