package domain

import "fmt"

// IntentKind identifies the kind of user action an Intent carries.
type IntentKind int

const (
	// IntentDigit appends or starts with a digit 0-9.
	IntentDigit IntentKind = iota
	// IntentOperator is one of + - * / %.
	IntentOperator
	// IntentDecimalPoint is the "." key.
	IntentDecimalPoint
	// IntentSquareRoot is the √ prefix marker.
	IntentSquareRoot
	// IntentClear resets the buffer.
	IntentClear
	// IntentBackspace drops the last character.
	IntentBackspace
	// IntentEvaluate hands the buffer to the evaluator.
	IntentEvaluate
)

// String returns the string representation of the intent kind.
func (k IntentKind) String() string {
	switch k {
	case IntentDigit:
		return "digit"
	case IntentOperator:
		return "operator"
	case IntentDecimalPoint:
		return "decimal_point"
	case IntentSquareRoot:
		return "square_root"
	case IntentClear:
		return "clear"
	case IntentBackspace:
		return "backspace"
	case IntentEvaluate:
		return "evaluate"
	default:
		return "unknown"
	}
}

// Display glyphs used inside the buffer.
const (
	GlyphTimes      = "×"
	GlyphDivide     = "÷"
	GlyphSquareRoot = "√"
)

// Control identifiers for the keypad buttons that are not named by their glyph.
const (
	ControlClear     = "AC"
	ControlBackspace = "Backspace"
	ControlEvaluate  = "="
)

// Intent is one user action. Digit and operator intents carry the raw
// key symbol in Symbol; every other kind ignores it.
type Intent struct {
	Kind   IntentKind
	Symbol rune
}

// Digit returns a digit intent for d.
func Digit(d rune) Intent { return Intent{Kind: IntentDigit, Symbol: d} }

// Operator returns an operator intent for the raw key op.
func Operator(op rune) Intent { return Intent{Kind: IntentOperator, Symbol: op} }

// DecimalPoint returns a decimal point intent.
func DecimalPoint() Intent { return Intent{Kind: IntentDecimalPoint, Symbol: '.'} }

// SquareRoot returns a square root intent.
func SquareRoot() Intent { return Intent{Kind: IntentSquareRoot, Symbol: '√'} }

// Clear returns a clear intent.
func Clear() Intent { return Intent{Kind: IntentClear} }

// Backspace returns a backspace intent.
func Backspace() Intent { return Intent{Kind: IntentBackspace} }

// Evaluate returns an evaluate intent.
func Evaluate() Intent { return Intent{Kind: IntentEvaluate} }

// Validate checks that the symbol matches the intent kind.
func (i Intent) Validate() error {
	switch i.Kind {
	case IntentDigit:
		if i.Symbol < '0' || i.Symbol > '9' {
			return fmt.Errorf("%w: digit %q", ErrInvalidIntent, i.Symbol)
		}
	case IntentOperator:
		switch i.Symbol {
		case '+', '-', '*', '/', '%':
		default:
			return fmt.Errorf("%w: operator %q", ErrInvalidIntent, i.Symbol)
		}
	case IntentDecimalPoint, IntentSquareRoot, IntentClear, IntentBackspace, IntentEvaluate:
	default:
		return fmt.Errorf("%w: kind %d", ErrInvalidIntent, int(i.Kind))
	}
	return nil
}

// IsEntry reports whether the intent enters a character into the buffer.
func (i Intent) IsEntry() bool {
	switch i.Kind {
	case IntentDigit, IntentOperator, IntentDecimalPoint, IntentSquareRoot:
		return true
	default:
		return false
	}
}

// IsOperatorClass reports whether the intent is subject to operator collapsing.
func (i Intent) IsOperatorClass() bool {
	return i.Kind == IntentOperator || i.Kind == IntentSquareRoot
}

// Glyph returns the text the intent contributes to the buffer.
// Raw "*" and "/" are shown as "×" and "÷".
func (i Intent) Glyph() string {
	switch i.Kind {
	case IntentDigit, IntentDecimalPoint:
		return string(i.Symbol)
	case IntentOperator:
		switch i.Symbol {
		case '*':
			return GlyphTimes
		case '/':
			return GlyphDivide
		default:
			return string(i.Symbol)
		}
	case IntentSquareRoot:
		return GlyphSquareRoot
	default:
		return ""
	}
}

// Control returns the identifier of the keypad control that emits this intent.
func (i Intent) Control() string {
	switch i.Kind {
	case IntentDigit, IntentOperator, IntentDecimalPoint:
		return string(i.Symbol)
	case IntentSquareRoot:
		return GlyphSquareRoot
	case IntentClear:
		return ControlClear
	case IntentBackspace:
		return ControlBackspace
	case IntentEvaluate:
		return ControlEvaluate
	default:
		return ""
	}
}

// String returns a readable form of the intent for logs.
func (i Intent) String() string {
	if c := i.Control(); c != "" {
		return i.Kind.String() + "(" + c + ")"
	}
	return i.Kind.String()
}

// IsOperatorGlyph reports whether r belongs to the operator alphabet as it
// appears in the buffer. Raw "*" and "/" count too, so buffers typed
// through other drivers collapse the same way.
func IsOperatorGlyph(r rune) bool {
	switch r {
	case '+', '-', '*', '/', '%', '×', '÷', '√':
		return true
	default:
		return false
	}
}
