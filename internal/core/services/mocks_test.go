package services

import (
	"errors"
	"math"
)

// mockEngine implements driven.ExpressionEngine for tests.
type mockEngine struct {
	EvaluateFunc func(expression string) (float64, error)
	calls        []string
}

func (m *mockEngine) Evaluate(expression string) (float64, error) {
	m.calls = append(m.calls, expression)
	if m.EvaluateFunc != nil {
		return m.EvaluateFunc(expression)
	}
	return 0, nil
}

var errMockSyntax = errors.New("syntax error")

// tableEngine returns the value registered for an expression and a
// syntax error for everything else.
func tableEngine(values map[string]float64) *mockEngine {
	return &mockEngine{
		EvaluateFunc: func(expression string) (float64, error) {
			if v, ok := values[expression]; ok {
				return v, nil
			}
			return 0, errMockSyntax
		},
	}
}

var (
	posInf = math.Inf(1)
	nan    = math.NaN()
)
