// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
// Keys not listed here are passed to the calculator as key names.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Help toggles the help panel.
	Help key.Binding

	// Digits enter a digit.
	Digits key.Binding

	// Operators enter an operator.
	Operators key.Binding

	// Decimal enters a decimal point.
	Decimal key.Binding

	// Root enters a square root on profiles that support it.
	Root key.Binding

	// Evaluate computes the buffer.
	Evaluate key.Binding

	// Clear resets the calculator.
	Clear key.Binding

	// Backspace removes the last character.
	Backspace key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Digits: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("0-9", "digit"),
		),
		Operators: key.NewBinding(
			key.WithKeys("+", "-", "*", "/", "%"),
			key.WithHelp("+ - * / %", "operator"),
		),
		Decimal: key.NewBinding(
			key.WithKeys("."),
			key.WithHelp(".", "decimal point"),
		),
		Root: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "square root"),
		),
		Evaluate: key.NewBinding(
			key.WithKeys("enter", "="),
			key.WithHelp("enter/=", "evaluate"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "delete"),
		),
	}
}

// ShortHelp returns a short list of keybindings for the status bar.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Evaluate, k.Clear, k.Help, k.Quit}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Digits, k.Decimal, k.Operators, k.Root},
		{k.Evaluate, k.Clear, k.Backspace},
		{k.Help, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
