package driven

// ConfigStore reads and writes the vault's settings file. Implementations
// own persistence and type coercion; callers treat keys as flat
// dotted paths ("embedding.provider", "query.top_k").
type ConfigStore interface {
	// Get returns the raw value for a key and whether the key exists.
	Get(key string) (any, bool)

	// GetString returns the value for a key, or "" when the key is
	// missing or holds a non-string.
	GetString(key string) string

	// GetInt returns the value for a key, or 0 when the key is missing
	// or holds a non-integer.
	GetInt(key string) int

	// GetBool returns the value for a key, or false when the key is
	// missing or holds a non-boolean.
	GetBool(key string) bool

	// GetStringSlice returns the value for a key, or nil when the key
	// is missing or holds a non-slice.
	GetStringSlice(key string) []string

	// Set stores a value under a key and persists it immediately.
	Set(key string, value any) error

	// Save writes the current settings to storage.
	Save() error

	// Load replaces the in-memory settings with the stored ones.
	Load() error

	// Path returns the location of the backing settings file.
	Path() string
}
