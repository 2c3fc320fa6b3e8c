// Package display renders the calculator readout.
package display

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/keypad-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/keypad-cli/internal/core/domain"
)

// Display shows a formula line above the primary readout. While typing the
// formula echoes the buffer; after evaluation it holds the expression that
// produced the result.
type Display struct {
	styles  *styles.Styles
	state   domain.State
	formula string
	width   int
}

// New creates a display showing the initial state.
func New(s *styles.Styles) *Display {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &Display{
		styles: s,
		state:  domain.InitialState(),
		width:  28,
	}
}

// Apply records the state carried by n.
func (d *Display) Apply(n domain.Notification) {
	switch n.Intent.Kind {
	case domain.IntentEvaluate:
		d.formula = d.state.Display() + " ="
	case domain.IntentClear:
		d.formula = ""
	default:
		d.formula = n.State.Display()
	}
	d.state = n.State
}

// SetState replaces the shown state without a formula.
func (d *Display) SetState(s domain.State) {
	d.state = s
	d.formula = ""
}

// State returns the shown state.
func (d *Display) State() domain.State {
	return d.state
}

// Formula returns the formula line.
func (d *Display) Formula() string {
	return d.formula
}

// SetWidth sets the outer width of the display.
func (d *Display) SetWidth(width int) {
	d.width = width
}

// View renders the display right-aligned, the way a pocket calculator does.
func (d *Display) View() string {
	inner := d.width - 4
	if inner < 1 {
		inner = 1
	}

	readoutStyle := d.styles.Readout
	if d.state.Phase == domain.PhaseError {
		readoutStyle = d.styles.Error.Bold(true)
	}

	formula := d.styles.Formula.Width(inner).Align(lipgloss.Right).Render(clip(d.formula, inner))
	readout := readoutStyle.Width(inner).Align(lipgloss.Right).Render(clip(d.state.Display(), inner))

	return d.styles.Display.Render(lipgloss.JoinVertical(lipgloss.Right, formula, readout))
}

// clip keeps the rightmost width runes of s so the newest input stays visible.
func clip(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return "…" + string(r[len(r)-width+1:])
}
