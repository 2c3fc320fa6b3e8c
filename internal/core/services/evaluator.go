package services

import (
	"strings"

	"github.com/custodia-labs/keypad-cli/internal/core/domain"
	"github.com/custodia-labs/keypad-cli/internal/core/ports/driven"
	"github.com/custodia-labs/keypad-cli/internal/logger"
)

// Evaluator turns a finished buffer into the text that replaces it.
type Evaluator struct {
	engine   driven.ExpressionEngine
	rounding domain.Rounding
}

// NewEvaluator creates an evaluator that delegates arithmetic to engine.
func NewEvaluator(engine driven.ExpressionEngine, rounding domain.Rounding) *Evaluator {
	return &Evaluator{engine: engine, rounding: rounding}
}

// Normalize rewrites display glyphs into engine syntax. A "√" becomes
// a sqrt( call closed at the end of the buffer; nesting is not supported.
func Normalize(buffer string) string {
	expr := strings.NewReplacer(domain.GlyphTimes, "*", domain.GlyphDivide, "/").Replace(buffer)
	if strings.Contains(expr, domain.GlyphSquareRoot) {
		expr = strings.ReplaceAll(expr, domain.GlyphSquareRoot, "sqrt(") + ")"
	}
	return expr
}

// Outcome evaluates buffer and classifies the result.
func (e *Evaluator) Outcome(buffer string) domain.Outcome {
	expr := Normalize(buffer)
	v, err := e.engine.Evaluate(expr)
	if err != nil {
		logger.Debug("evaluate %q: %v", expr, err)
		return domain.Outcome{Kind: domain.OutcomeMalformed}
	}
	return domain.ClassifyValue(v)
}

// Evaluate returns the display string for buffer.
func (e *Evaluator) Evaluate(buffer string) string {
	return e.Outcome(buffer).Display(e.rounding)
}
