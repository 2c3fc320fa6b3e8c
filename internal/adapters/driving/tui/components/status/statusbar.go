// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/keypad-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/keypad-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/keypad-cli/internal/core/domain"
)

// Bar displays the active profile, the calculator phase and keybinding hints.
type Bar struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	profile domain.Profile
	phase   domain.Phase
	message string
	width   int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles:  s,
		keymap:  km,
		profile: domain.DefaultProfile(),
		phase:   domain.PhaseEntering,
		width:   80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (s *Bar) Update(msg tea.Msg) (*Bar, tea.Cmd) {
	// Bar is mostly passive, updated via Set methods
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

// renderLeft renders the profile and phase, or the pending message.
func (s *Bar) renderLeft() string {
	if s.message != "" {
		return s.styles.Error.Render(s.message)
	}
	text := fmt.Sprintf("%s · %s", s.profile.Name, s.phase)
	if s.phase == domain.PhaseError {
		return s.styles.Error.Render(text)
	}
	return s.styles.Muted.Render(text)
}

// renderRight renders keybinding hints.
func (s *Bar) renderRight() string {
	bindings := s.keymap.ShortHelp()

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		hints = append(hints, formatHint(b))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

func formatHint(b key.Binding) string {
	h := b.Help()
	return fmt.Sprintf("%s: %s", h.Key, h.Desc)
}

// SetProfile sets the profile shown on the left.
func (s *Bar) SetProfile(p domain.Profile) {
	s.profile = p
}

// Profile returns the shown profile.
func (s *Bar) Profile() domain.Profile {
	return s.profile
}

// SetPhase sets the calculator phase.
func (s *Bar) SetPhase(phase domain.Phase) {
	s.phase = phase
}

// Phase returns the shown phase.
func (s *Bar) Phase() domain.Phase {
	return s.phase
}

// SetMessage sets a message that replaces the profile and phase until cleared.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear drops the message.
func (s *Bar) Clear() {
	s.message = ""
}
