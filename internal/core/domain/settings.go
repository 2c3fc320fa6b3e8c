package domain

import (
	"fmt"
	"time"
)

// DefaultFlashMillis is how long a pressed keypad button stays highlighted.
const DefaultFlashMillis = 100

// CalculatorSettings holds calculator behaviour configuration.
type CalculatorSettings struct {
	// Profile is the preset name (classic or extended).
	Profile string

	// Rounding overrides the preset's rounding policy when set.
	Rounding Rounding

	// StrictSentinel restricts the fresh-input reset to "Undefined".
	StrictSentinel bool
}

// TUISettings holds terminal UI configuration.
type TUISettings struct {
	// FlashMillis is the keypress highlight duration in milliseconds.
	FlashMillis int
}

// FlashDuration returns the highlight duration, falling back to the default.
func (t TUISettings) FlashDuration() time.Duration {
	if t.FlashMillis <= 0 {
		return DefaultFlashMillis * time.Millisecond
	}
	return time.Duration(t.FlashMillis) * time.Millisecond
}

// AppSettings aggregates all user-configurable settings.
type AppSettings struct {
	Calculator CalculatorSettings
	TUI        TUISettings
}

// DefaultAppSettings returns the default application settings.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Calculator: CalculatorSettings{
			Profile: ProfileExtended,
		},
		TUI: TUISettings{
			FlashMillis: DefaultFlashMillis,
		},
	}
}

// Validate checks the settings for unknown profile or rounding values.
func (s AppSettings) Validate() error {
	if _, err := ProfileByName(s.Calculator.Profile); err != nil {
		return err
	}
	if s.Calculator.Rounding != "" && !s.Calculator.Rounding.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidRounding, s.Calculator.Rounding)
	}
	return nil
}

// ResolveProfile builds the domain profile the settings describe.
func (s AppSettings) ResolveProfile() (Profile, error) {
	if err := s.Validate(); err != nil {
		return Profile{}, err
	}
	p, _ := ProfileByName(s.Calculator.Profile)
	if s.Calculator.Rounding != "" {
		p.Rounding = s.Calculator.Rounding
	}
	p.StrictSentinel = s.Calculator.StrictSentinel
	return p, nil
}
