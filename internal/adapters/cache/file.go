package cache

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.trai.ch/lesstag/internal/core/domain"
	"go.trai.ch/lesstag/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Cache = (*File)(nil)

// File is a cache persisted as a flat JSON file. The file is read once on open and
// rewritten after every mutation.
type File struct {
	path    string
	mu      sync.RWMutex
	entries map[string]domain.CacheEntry
	now     func() time.Time
}

// NewFile opens the cache backed by the file at path. A missing file yields an
// empty cache. Expired entries are dropped while loading.
func NewFile(path string, opts ...Option) (*File, error) {
	o := newOptions(opts)
	f := &File{
		path:    filepath.Clean(path),
		entries: make(map[string]domain.CacheEntry),
		now:     o.now,
	}
	if err := f.load(); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *File) load() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(domain.ErrCacheReadFailed, err.Error()), "path", f.path)
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &f.entries); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrCacheReadFailed, err.Error()), "path", f.path)
	}

	now := f.now()
	for key, entry := range f.entries {
		if entry.Expired(now) {
			delete(f.entries, key)
		}
	}
	return nil
}

// save must be called with mu held.
func (f *File) save() error {
	data, err := json.MarshalIndent(f.entries, "", "  ")
	if err != nil {
		return zerr.Wrap(domain.ErrCacheWriteFailed, err.Error())
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o750); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrCacheWriteFailed, err.Error()), "path", f.path)
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrCacheWriteFailed, err.Error()), "path", f.path)
	}
	return nil
}

// Get returns the value stored under key.
func (f *File) Get(key string) (string, bool, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	entry, ok := f.entries[key]
	if !ok || entry.Expired(f.now()) {
		return "", false, nil
	}
	return entry.Value, true, nil
}

// Set stores value under key and persists the cache.
func (f *File) Set(key, value string, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.entries[key] = domain.NewCacheEntry(value, f.now(), ttl)
	return f.save()
}

// Delete removes key and persists the cache.
func (f *File) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.entries[key]; !ok {
		return nil
	}
	delete(f.entries, key)
	return f.save()
}
