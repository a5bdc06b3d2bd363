package port

// Preferences is a small durable key-value store used for cache
// bookkeeping.
type Preferences interface {
	// Get returns the stored value and whether the key exists.
	Get(key string) (string, bool, error)

	Set(key, value string) error

	Remove(key string) error

	// Keys lists all stored keys.
	Keys() ([]string, error)
}
