package driven

// ConfigStore holds settings under dotted keys such as
// "calculator.profile" or "tui.flash_ms".
type ConfigStore interface {
	// Get returns the raw value and whether the key is set.
	Get(key string) (any, bool)

	// GetString returns "" for missing or non-string values.
	GetString(key string) string

	// GetInt returns 0 for missing or non-numeric values.
	GetInt(key string) int

	// GetBool returns false for missing or non-bool values.
	GetBool(key string) bool

	// Set stores and persists a value.
	Set(key string, value any) error

	// Save persists the current values.
	Save() error

	// Load re-reads the values, discarding unsaved changes.
	Load() error

	// Path is where the values live, ":memory:" for in-memory stores.
	Path() string
}
