package watcher

import (
	"sync"
	"unique"
)

// FileHasher hashes file contents.
type FileHasher interface {
	ComputeFileHash(path string) (uint64, error)
}

// ContentCache remembers the content hash of each stylesheet so that saves
// without changes do not trigger a compile.
type ContentCache struct {
	mu     sync.Mutex
	hashes map[unique.Handle[string]]uint64
	hasher FileHasher
}

// NewContentCache creates an empty ContentCache.
func NewContentCache(hasher FileHasher) *ContentCache {
	return &ContentCache{
		hashes: make(map[unique.Handle[string]]uint64),
		hasher: hasher,
	}
}

// Changed hashes path and reports whether the hash differs from the one
// recorded before. A path seen for the first time counts as changed.
func (c *ContentCache) Changed(path string) (bool, error) {
	sum, err := c.hasher.ComputeFileHash(path)
	if err != nil {
		return false, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	key := unique.Make(path)
	prev, ok := c.hashes[key]
	c.hashes[key] = sum
	return !ok || prev != sum, nil
}

// Forget drops the recorded hash of path.
func (c *ContentCache) Forget(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.hashes, unique.Make(path))
}

// Len returns the number of recorded hashes.
func (c *ContentCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.hashes)
}
