// Package govaluate provides an ExpressionEngine backed by
// github.com/Knetic/govaluate. All numbers are float64, so division by
// zero yields ±Inf and 0/0 or x%0 yields NaN rather than an error.
package govaluate

import (
	"fmt"
	"math"

	knetic "github.com/Knetic/govaluate"

	"github.com/custodia-labs/keypad-cli/internal/core/domain"
	"github.com/custodia-labs/keypad-cli/internal/core/ports/driven"
)

// Ensure Engine implements the interface.
var _ driven.ExpressionEngine = (*Engine)(nil)

// Engine evaluates arithmetic expressions with govaluate.
type Engine struct {
	functions map[string]knetic.ExpressionFunction
}

// New creates an engine with the sqrt function registered.
func New() *Engine {
	return &Engine{
		functions: map[string]knetic.ExpressionFunction{
			"sqrt": sqrt,
		},
	}
}

// Evaluate parses and evaluates expression. Parse failures, unknown
// identifiers, non-numeric results and panics inside the library are all
// reported as domain.ErrMalformedExpression.
func (e *Engine) Evaluate(expression string) (result float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", domain.ErrMalformedExpression, r)
		}
	}()

	expr, err := knetic.NewEvaluableExpressionWithFunctions(expression, e.functions)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrMalformedExpression, err)
	}

	value, err := expr.Evaluate(nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrMalformedExpression, err)
	}

	v, ok := value.(float64)
	if !ok {
		return 0, fmt.Errorf("%w: non-numeric result %v", domain.ErrMalformedExpression, value)
	}
	return v, nil
}

func sqrt(args ...interface{}) (interface{}, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("sqrt takes 1 argument, got %d", len(args))
	}
	x, ok := args[0].(float64)
	if !ok {
		return nil, fmt.Errorf("sqrt of non-number %v", args[0])
	}
	return math.Sqrt(x), nil
}
