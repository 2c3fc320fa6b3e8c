package domain

// Notification announces that an intent was accepted for a keypad control.
// Presentation layers subscribe to it to flash the pressed button.
type Notification struct {
	// SessionID identifies the calculator session that accepted the intent.
	SessionID string

	// Intent is the accepted intent.
	Intent Intent

	// Control is the keypad control identifier, e.g. "AC" or "7".
	Control string

	// State is the state after the intent was applied.
	State State
}
