package driven

// ConfigStore holds gearscan settings under dotted keys such as
// "scan.gear_symbol". Implementations decide where values are persisted.
type ConfigStore interface {
	// Get returns the raw value stored under key and whether it exists.
	Get(key string) (any, bool)

	// GetString returns the value under key, or "" when it is missing or
	// not a string.
	GetString(key string) string

	// GetBool returns the value under key, or false when it is missing or
	// not a boolean.
	GetBool(key string) bool

	// Set stores value under key and persists it.
	Set(key string, value any) error

	// Delete removes key and persists the change. Deleting a missing key
	// is not an error.
	Delete(key string) error

	// Path describes where values are persisted.
	Path() string
}
