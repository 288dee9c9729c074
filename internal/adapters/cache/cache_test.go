package cache_test

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lesstag/internal/adapters/cache"
	"go.trai.ch/lesstag/internal/core/domain"
	"go.trai.ch/lesstag/internal/core/ports"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// cacheContract runs the behavior every ports.Cache must share.
func cacheContract(t *testing.T, newCache func(t *testing.T, clock *fakeClock) ports.Cache) {
	t.Run("miss", func(t *testing.T) {
		c := newCache(t, newFakeClock())
		_, ok, err := c.Get("missing")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("set then get", func(t *testing.T) {
		c := newCache(t, newFakeClock())
		require.NoError(t, c.Set("k", "body{color:red}", time.Hour))

		got, ok, err := c.Get("k")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "body{color:red}", got)
	})

	t.Run("expiry", func(t *testing.T) {
		clock := newFakeClock()
		c := newCache(t, clock)
		require.NoError(t, c.Set("k", "v", time.Minute))

		clock.Advance(59 * time.Second)
		_, ok, err := c.Get("k")
		require.NoError(t, err)
		assert.True(t, ok)

		clock.Advance(time.Second)
		_, ok, err = c.Get("k")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("zero ttl never expires", func(t *testing.T) {
		clock := newFakeClock()
		c := newCache(t, clock)
		require.NoError(t, c.Set("k", "v", 0))

		clock.Advance(10 * 365 * 24 * time.Hour)
		_, ok, err := c.Get("k")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("overwrite", func(t *testing.T) {
		c := newCache(t, newFakeClock())
		require.NoError(t, c.Set("k", "old", time.Hour))
		require.NoError(t, c.Set("k", "new", time.Hour))

		got, _, err := c.Get("k")
		require.NoError(t, err)
		assert.Equal(t, "new", got)
	})

	t.Run("delete", func(t *testing.T) {
		c := newCache(t, newFakeClock())
		require.NoError(t, c.Set("k", "v", time.Hour))
		require.NoError(t, c.Delete("k"))
		require.NoError(t, c.Delete("never-set"))

		_, ok, err := c.Get("k")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestMemory(t *testing.T) {
	cacheContract(t, func(_ *testing.T, clock *fakeClock) ports.Cache {
		return cache.NewMemory(cache.WithClock(clock.Now))
	})
}

func TestFile(t *testing.T) {
	cacheContract(t, func(t *testing.T, clock *fakeClock) ports.Cache {
		c, err := cache.NewFile(filepath.Join(t.TempDir(), "cache.json"), cache.WithClock(clock.Now))
		require.NoError(t, err)
		return c
	})
}

func TestFile_Persistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "cache.json")
	clock := newFakeClock()

	first, err := cache.NewFile(path, cache.WithClock(clock.Now))
	require.NoError(t, err)
	require.NoError(t, first.Set("keep", "a{}", 0))
	require.NoError(t, first.Set("short", "b{}", time.Minute))

	clock.Advance(time.Hour)
	second, err := cache.NewFile(path, cache.WithClock(clock.Now))
	require.NoError(t, err)

	got, ok, err := second.Get("keep")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "a{}", got)

	_, ok, err = second.Get("short")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFile_OnDiskFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	clock := newFakeClock()

	c, err := cache.NewFile(path, cache.WithClock(clock.Now))
	require.NoError(t, err)
	require.NoError(t, c.Set("lesstag.inline.abc", "p{}", time.Hour))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entries map[string]domain.CacheEntry
	require.NoError(t, json.Unmarshal(data, &entries))
	assert.Equal(t, "p{}", entries["lesstag.inline.abc"].Value)
	assert.True(t, entries["lesstag.inline.abc"].ExpiresAt.Equal(clock.Now().Add(time.Hour)))
}

func TestFile_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	c, err := cache.NewFile(path)
	require.NoError(t, err)

	_, ok, err := c.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFile_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := cache.NewFile(path)

	assert.True(t, errors.Is(err, domain.ErrCacheReadFailed))
}

func TestFile_WriteFailure(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sub")

	c, err := cache.NewFile(filepath.Join(dir, "cache.json"))
	require.NoError(t, err)

	// A regular file where the cache directory should go.
	require.NoError(t, os.WriteFile(dir, []byte("x"), 0o600))

	err = c.Set("k", "v", 0)
	assert.True(t, errors.Is(err, domain.ErrCacheWriteFailed))
}

func TestNew_SelectsDriver(t *testing.T) {
	settings := domain.DefaultSettings().Less

	c, err := cache.New(settings)
	require.NoError(t, err)
	assert.IsType(t, &cache.Memory{}, c)

	settings.CacheDriver = domain.CacheDriverFile
	settings.CachePath = filepath.Join(t.TempDir(), "cache.json")
	c, err = cache.New(settings)
	require.NoError(t, err)
	assert.IsType(t, &cache.File{}, c)

	settings.CacheDriver = "redis"
	_, err = cache.New(settings)
	assert.True(t, errors.Is(err, domain.ErrInvalidConfig))
}
