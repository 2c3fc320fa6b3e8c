// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/keypad-cli/internal/core/domain"
)

// Notified carries a calculator notification into the update loop.
type Notified struct {
	Notification domain.Notification
}

// FlashExpired ends the pressed highlight of a keypad control.
// Seq identifies the flash it belongs to; a newer flash ignores older expiries.
type FlashExpired struct {
	Control string
	Seq     int
}

// SettingsChanged is sent when the settings file changed on disk.
type SettingsChanged struct {
	Settings domain.AppSettings
}

// ErrorOccurred is sent when an error occurs.
type ErrorOccurred struct {
	Err error
}

// Quit is sent to exit the application.
type Quit struct{}
