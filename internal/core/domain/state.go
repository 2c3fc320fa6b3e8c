package domain

// ZeroBuffer is the buffer content after Clear and the fallback for an empty display.
const ZeroBuffer = "0"

// Phase is the coarse state of the calculator.
type Phase int

const (
	// PhaseEntering is the initial phase while an expression is being typed.
	PhaseEntering Phase = iota
	// PhaseResult shows a numeric result.
	PhaseResult
	// PhaseError shows one of the error messages.
	PhaseError
)

// String returns the string representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseEntering:
		return "entering"
	case PhaseResult:
		return "result"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}

// State is the complete calculator state. It is a value: transitions
// return a new State rather than mutating the old one.
type State struct {
	// Buffer is the displayed expression or result. Never empty.
	Buffer string

	// AwaitingFreshInput makes the next entry intent replace the buffer.
	AwaitingFreshInput bool

	// Phase tracks whether the buffer holds input, a result or an error.
	Phase Phase
}

// InitialState returns the state after construction or Clear.
func InitialState() State {
	return State{
		Buffer:             ZeroBuffer,
		AwaitingFreshInput: true,
		Phase:              PhaseEntering,
	}
}

// Display returns the text a display sink should render.
func (s State) Display() string {
	if s.Buffer == "" {
		return ZeroBuffer
	}
	return s.Buffer
}
