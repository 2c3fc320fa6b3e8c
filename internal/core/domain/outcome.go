package domain

import (
	"math"
	"strconv"
)

// Messages shown instead of a numeric result.
const (
	MessageDivisionByZero  = "Cannot divide by zero"
	MessageUndefinedResult = "Result is undefined"
	MessageMalformed       = "Undefined"
)

// IsErrorMessage reports whether s is one of the evaluation error messages.
func IsErrorMessage(s string) bool {
	switch s {
	case MessageDivisionByZero, MessageUndefinedResult, MessageMalformed:
		return true
	default:
		return false
	}
}

// OutcomeKind classifies the result of one evaluation.
type OutcomeKind int

const (
	// OutcomeNumeric is a finite number.
	OutcomeNumeric OutcomeKind = iota
	// OutcomeDivisionByZero is an infinite result.
	OutcomeDivisionByZero
	// OutcomeUndefined is a NaN result.
	OutcomeUndefined
	// OutcomeMalformed means the engine rejected the expression.
	OutcomeMalformed
)

// String returns the string representation of the outcome kind.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeNumeric:
		return "numeric"
	case OutcomeDivisionByZero:
		return "division_by_zero"
	case OutcomeUndefined:
		return "undefined"
	case OutcomeMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// Outcome is the classified result of an evaluation.
type Outcome struct {
	Kind  OutcomeKind
	Value float64
}

// ClassifyValue maps a raw engine result onto an Outcome.
func ClassifyValue(v float64) Outcome {
	switch {
	case math.IsInf(v, 0):
		return Outcome{Kind: OutcomeDivisionByZero}
	case math.IsNaN(v):
		return Outcome{Kind: OutcomeUndefined}
	default:
		return Outcome{Kind: OutcomeNumeric, Value: v}
	}
}

// IsError reports whether the outcome is anything but a number.
func (o Outcome) IsError() bool {
	return o.Kind != OutcomeNumeric
}

// Display renders the outcome as the text that replaces the buffer.
func (o Outcome) Display(r Rounding) string {
	switch o.Kind {
	case OutcomeNumeric:
		return FormatNumber(o.Value, r)
	case OutcomeDivisionByZero:
		return MessageDivisionByZero
	case OutcomeUndefined:
		return MessageUndefinedResult
	default:
		return MessageMalformed
	}
}

// FormatNumber renders v under the rounding policy. Whole numbers never
// carry decimals; negative zero renders as "0".
func FormatNumber(v float64, r Rounding) string {
	if v == 0 {
		v = 0
	}
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	if r == RoundingWholeOrFixed2 {
		return strconv.FormatFloat(v, 'f', 2, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
