// Package keypad renders the calculator button grid and maps clicks onto it.
package keypad

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/keypad-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/keypad-cli/internal/core/domain"
)

// Key is one keypad button.
type Key struct {
	// Label is the text printed on the button.
	Label string

	// Intent is emitted when the button is clicked.
	Intent domain.Intent
}

// Control returns the control identifier notifications use for this key.
func (k Key) Control() string {
	return k.Intent.Control()
}

// Layout returns the button rows for profile p. Modulo and square root
// are appended to the bottom row when the profile supports them.
func Layout(p domain.Profile) [][]Key {
	rows := [][]Key{
		{
			{Label: domain.ControlClear, Intent: domain.Clear()},
			{Label: domain.GlyphDivide, Intent: domain.Operator('/')},
			{Label: domain.GlyphTimes, Intent: domain.Operator('*')},
			{Label: "⌫", Intent: domain.Backspace()},
		},
		{digit('7'), digit('8'), digit('9'), {Label: "+", Intent: domain.Operator('+')}},
		{digit('4'), digit('5'), digit('6'), {Label: "-", Intent: domain.Operator('-')}},
		{digit('1'), digit('2'), digit('3'), {Label: "=", Intent: domain.Evaluate()}},
		{digit('0'), {Label: ".", Intent: domain.DecimalPoint()}},
	}

	last := len(rows) - 1
	if p.SupportsModulo {
		rows[last] = append(rows[last], Key{Label: "%", Intent: domain.Operator('%')})
	}
	if p.SupportsSquareRoot {
		rows[last] = append(rows[last], Key{Label: domain.GlyphSquareRoot, Intent: domain.SquareRoot()})
	}
	return rows
}

func digit(d rune) Key {
	return Key{Label: string(d), Intent: domain.Digit(d)}
}

// Keypad is the button grid. A pressed key stays highlighted until its
// flash expires.
type Keypad struct {
	styles  *styles.Styles
	profile domain.Profile
	rows    [][]Key
	pressed string
	seq     int
}

// New creates a keypad for profile p.
func New(s *styles.Styles, p domain.Profile) *Keypad {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &Keypad{
		styles:  s,
		profile: p,
		rows:    Layout(p),
	}
}

// SetProfile rebuilds the layout for p.
func (k *Keypad) SetProfile(p domain.Profile) {
	k.profile = p
	k.rows = Layout(p)
}

// Profile returns the profile the layout was built for.
func (k *Keypad) Profile() domain.Profile {
	return k.profile
}

// Rows returns the current layout.
func (k *Keypad) Rows() [][]Key {
	return k.rows
}

// Flash highlights control and returns the flash sequence number to pass
// to Expire.
func (k *Keypad) Flash(control string) int {
	k.seq++
	k.pressed = control
	return k.seq
}

// Expire clears the highlight if seq is still the latest flash.
// It reports whether the highlight was cleared.
func (k *Keypad) Expire(seq int) bool {
	if seq != k.seq || k.pressed == "" {
		return false
	}
	k.pressed = ""
	return true
}

// Pressed returns the highlighted control, or "" if none.
func (k *Keypad) Pressed() string {
	return k.pressed
}

// KeyAt returns the key under the cell (x, y), relative to the keypad's
// top-left corner.
func (k *Keypad) KeyAt(x, y int) (Key, bool) {
	if x < 0 || y < 0 {
		return Key{}, false
	}
	row, col := y/styles.ButtonHeight, x/styles.ButtonWidth
	if row >= len(k.rows) || col >= len(k.rows[row]) {
		return Key{}, false
	}
	return k.rows[row][col], true
}

// Width returns the rendered width of the widest row.
func (k *Keypad) Width() int {
	widest := 0
	for _, r := range k.rows {
		if len(r) > widest {
			widest = len(r)
		}
	}
	return widest * styles.ButtonWidth
}

// View renders the grid.
func (k *Keypad) View() string {
	rendered := make([]string, 0, len(k.rows))
	for _, r := range k.rows {
		cells := make([]string, 0, len(r))
		for _, key := range r {
			cells = append(cells, k.renderKey(key))
		}
		rendered = append(rendered, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}

func (k *Keypad) renderKey(key Key) string {
	var style lipgloss.Style
	switch key.Intent.Kind {
	case domain.IntentClear, domain.IntentBackspace:
		style = k.styles.Control
	case domain.IntentOperator, domain.IntentSquareRoot:
		style = k.styles.Operator
	case domain.IntentEvaluate:
		style = k.styles.Equals
	default:
		style = k.styles.Button
	}
	if key.Control() == k.pressed {
		style = k.styles.PressedKey(style)
	}
	return style.Render(key.Label)
}
