package domain

import "fmt"

// Rounding selects how non-whole results are rendered.
type Rounding string

// Available rounding policies.
const (
	// RoundingWholeOrDefault renders whole numbers without decimals and
	// everything else with the shortest exact representation.
	RoundingWholeOrDefault Rounding = "whole_or_default"

	// RoundingWholeOrFixed2 renders whole numbers without decimals and
	// everything else fixed to two decimal places.
	RoundingWholeOrFixed2 Rounding = "whole_or_fixed2"
)

// IsValid returns true if the rounding policy is recognised.
func (r Rounding) IsValid() bool {
	switch r {
	case RoundingWholeOrDefault, RoundingWholeOrFixed2:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (r Rounding) String() string {
	return string(r)
}

// Description returns a human-readable description of the policy.
func (r Rounding) Description() string {
	switch r {
	case RoundingWholeOrDefault:
		return "Whole or full precision (7/2 = 3.5)"
	case RoundingWholeOrFixed2:
		return "Whole or two decimals (7/2 = 3.50)"
	default:
		return "Unknown"
	}
}

// AllRoundings returns every rounding policy.
func AllRoundings() []Rounding {
	return []Rounding{RoundingWholeOrDefault, RoundingWholeOrFixed2}
}

// ParseRounding converts a config value into a Rounding.
func ParseRounding(s string) (Rounding, error) {
	r := Rounding(s)
	if !r.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidRounding, s)
	}
	return r, nil
}

// Profile names.
const (
	ProfileClassic  = "classic"
	ProfileExtended = "extended"
)

// Profile is the capability set of a calculator.
type Profile struct {
	// Name identifies the preset the profile was built from.
	Name string

	// SupportsModulo enables the % operator.
	SupportsModulo bool

	// SupportsSquareRoot enables the √ prefix.
	SupportsSquareRoot bool

	// Rounding controls how results are rendered.
	Rounding Rounding

	// StrictSentinel limits the fresh-input reset to the literal
	// "Undefined" message. When false every error message resets.
	StrictSentinel bool
}

// ClassicProfile is the four-function keypad with full precision results.
func ClassicProfile() Profile {
	return Profile{
		Name:     ProfileClassic,
		Rounding: RoundingWholeOrDefault,
	}
}

// ExtendedProfile adds modulo and square root and rounds to two decimals.
func ExtendedProfile() Profile {
	return Profile{
		Name:               ProfileExtended,
		SupportsModulo:     true,
		SupportsSquareRoot: true,
		Rounding:           RoundingWholeOrFixed2,
	}
}

// DefaultProfile returns the profile used when nothing is configured.
func DefaultProfile() Profile {
	return ExtendedProfile()
}

// ProfileByName returns the preset with the given name.
func ProfileByName(name string) (Profile, error) {
	switch name {
	case ProfileClassic:
		return ClassicProfile(), nil
	case ProfileExtended:
		return ExtendedProfile(), nil
	default:
		return Profile{}, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
	}
}

// ProfileNames lists the available presets.
func ProfileNames() []string {
	return []string{ProfileClassic, ProfileExtended}
}

// Supports reports whether the profile enables the intent.
func (p Profile) Supports(i Intent) bool {
	switch {
	case i.Kind == IntentSquareRoot:
		return p.SupportsSquareRoot
	case i.Kind == IntentOperator && i.Symbol == '%':
		return p.SupportsModulo
	default:
		return true
	}
}

// IsResetSentinel reports whether buffer should be replaced by the next entry.
func (p Profile) IsResetSentinel(buffer string) bool {
	if p.StrictSentinel {
		return buffer == MessageMalformed
	}
	return IsErrorMessage(buffer)
}
