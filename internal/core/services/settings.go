package services

import (
	"fmt"

	"github.com/custodia-labs/keypad-cli/internal/core/domain"
	"github.com/custodia-labs/keypad-cli/internal/core/ports/driven"
	"github.com/custodia-labs/keypad-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyProfile        = "calculator.profile"
	keyRounding       = "calculator.rounding"
	keyStrictSentinel = "calculator.strict_sentinel"
	keyFlashMillis    = "tui.flash_ms"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
// Unknown stored values fall back to the defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Calculator: domain.CalculatorSettings{
			Profile:        s.getProfileName(defaults.Calculator.Profile),
			Rounding:       s.getRounding(),
			StrictSentinel: s.getBool(keyStrictSentinel, defaults.Calculator.StrictSentinel),
		},
		TUI: domain.TUISettings{
			FlashMillis: s.getInt(keyFlashMillis, defaults.TUI.FlashMillis),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	if err := s.configStore.Set(keyProfile, settings.Calculator.Profile); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	if err := s.configStore.Set(keyRounding, settings.Calculator.Rounding.String()); err != nil {
		return fmt.Errorf("save rounding: %w", err)
	}
	if err := s.configStore.Set(keyStrictSentinel, settings.Calculator.StrictSentinel); err != nil {
		return fmt.Errorf("save strict_sentinel: %w", err)
	}
	if err := s.configStore.Set(keyFlashMillis, settings.TUI.FlashMillis); err != nil {
		return fmt.Errorf("save flash_ms: %w", err)
	}

	return nil
}

// SetProfile selects the named calculator profile.
// Any rounding override is cleared so the preset's policy applies.
func (s *SettingsService) SetProfile(name string) error {
	if _, err := domain.ProfileByName(name); err != nil {
		return err
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.Calculator.Profile = name
	settings.Calculator.Rounding = ""

	return s.Save(settings)
}

// SetRounding overrides the profile's rounding policy.
func (s *SettingsService) SetRounding(rounding domain.Rounding) error {
	if !rounding.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidRounding, rounding)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.Calculator.Rounding = rounding

	return s.Save(settings)
}

// SetStrictSentinel toggles the literal "Undefined" reset check.
func (s *SettingsService) SetStrictSentinel(strict bool) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.Calculator.StrictSentinel = strict

	return s.Save(settings)
}

// Profile resolves the current settings into a domain profile.
func (s *SettingsService) Profile() (domain.Profile, error) {
	settings, err := s.Get()
	if err != nil {
		return domain.Profile{}, err
	}
	return settings.ResolveProfile()
}

// Reload re-reads the settings from storage.
func (s *SettingsService) Reload() error {
	return s.configStore.Load()
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val == 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getProfileName(defaultVal string) string {
	val := s.configStore.GetString(keyProfile)
	if _, err := domain.ProfileByName(val); err != nil {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getRounding() domain.Rounding {
	rounding := domain.Rounding(s.configStore.GetString(keyRounding))
	if !rounding.IsValid() {
		return ""
	}
	return rounding
}
