package driven

// ConfigStore provides access to persistent configuration.
// Keys use dot notation (e.g. "provider.host", "link.ignore").
type ConfigStore interface {
	// Get retrieves a raw configuration value by key.
	Get(key string) (any, bool)

	// GetString retrieves a string configuration value.
	// Returns "" if not set or not a string.
	GetString(key string) string

	// GetStringSlice retrieves a string slice configuration value.
	// Returns nil if not set.
	GetStringSlice(key string) []string

	// GetBool retrieves a boolean configuration value.
	// Returns false if not set or not a bool.
	GetBool(key string) bool
}
