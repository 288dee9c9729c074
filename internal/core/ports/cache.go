package ports

import "time"

// Cache stores compiled stylesheets by key.
//
//go:generate go run go.uber.org/mock/mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type Cache interface {
	// Get returns the value stored under key. It reports false on a miss or an expired entry.
	Get(key string) (string, bool, error)

	// Set stores value under key. A ttl of zero or less never expires.
	Set(key, value string, ttl time.Duration) error

	// Delete removes key.
	Delete(key string) error
}
