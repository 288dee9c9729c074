// Package cache implements ports.Cache in memory and on disk.
package cache

import (
	"sync"
	"time"

	"go.trai.ch/lesstag/internal/core/domain"
	"go.trai.ch/lesstag/internal/core/ports"
)

// Option configures a cache.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock replaces the clock used for expiry.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func newOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

var _ ports.Cache = (*Memory)(nil)

// Memory is a process-local cache.
type Memory struct {
	mu      sync.Mutex
	entries map[string]domain.CacheEntry
	now     func() time.Time
}

// NewMemory creates an empty Memory cache.
func NewMemory(opts ...Option) *Memory {
	o := newOptions(opts)
	return &Memory{
		entries: make(map[string]domain.CacheEntry),
		now:     o.now,
	}
}

// Get returns the value stored under key.
func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[key]
	if !ok {
		return "", false, nil
	}
	if entry.Expired(m.now()) {
		delete(m.entries, key)
		return "", false, nil
	}
	return entry.Value, true, nil
}

// Set stores value under key.
func (m *Memory) Set(key, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = domain.NewCacheEntry(value, m.now(), ttl)
	return nil
}

// Delete removes key.
func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, key)
	return nil
}
