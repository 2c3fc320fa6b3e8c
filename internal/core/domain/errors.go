package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidIntent indicates an intent value that cannot be applied,
	// such as a digit intent carrying a non-digit symbol.
	ErrInvalidIntent = errors.New("invalid intent")

	// ErrUnsupportedIntent indicates an intent the active profile does not enable.
	ErrUnsupportedIntent = errors.New("unsupported intent")

	// ErrUnknownProfile indicates a profile name that is not recognised.
	ErrUnknownProfile = errors.New("unknown profile")

	// ErrInvalidRounding indicates a rounding policy that is not recognised.
	ErrInvalidRounding = errors.New("invalid rounding policy")

	// ErrUnknownKey indicates a key name with no intent under the active profile.
	ErrUnknownKey = errors.New("unknown key")

	// ErrMalformedExpression indicates the expression engine rejected its input.
	ErrMalformedExpression = errors.New("malformed expression")
)
