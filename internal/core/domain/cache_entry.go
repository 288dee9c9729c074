package domain

import "time"

// InlineCacheKeyPrefix prefixes the cache keys of inline compilations.
const InlineCacheKeyPrefix = "lesstag.inline."

// CacheEntry is a cached compilation result.
type CacheEntry struct {
	Value string `json:"value"`
	// ExpiresAt is zero for entries that never expire.
	ExpiresAt time.Time `json:"expires_at,omitzero"`
}

// NewCacheEntry creates an entry expiring ttl after now. A ttl of zero or less never expires.
func NewCacheEntry(value string, now time.Time, ttl time.Duration) CacheEntry {
	entry := CacheEntry{Value: value}
	if ttl > 0 {
		entry.ExpiresAt = now.Add(ttl)
	}
	return entry
}

// Expired reports whether the entry is no longer valid at now.
func (e CacheEntry) Expired(now time.Time) bool {
	return !e.ExpiresAt.IsZero() && !now.Before(e.ExpiresAt)
}

// InlineCacheKey returns the cache key of an inline block with the given content hash.
func InlineCacheKey(contentHash string) string {
	return InlineCacheKeyPrefix + contentHash
}
