package driving

import "github.com/custodia-labs/keypad-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetProfile selects the named calculator profile.
	SetProfile(name string) error

	// SetRounding overrides the profile's rounding policy.
	SetRounding(rounding domain.Rounding) error

	// SetStrictSentinel toggles the literal "Undefined" reset check.
	SetStrictSentinel(strict bool) error

	// Profile resolves the settings into a domain profile.
	Profile() (domain.Profile, error)

	// Reload re-reads the settings from storage.
	Reload() error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
