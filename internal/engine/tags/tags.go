// Package tags implements the less and inline less template functions.
package tags

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.trai.ch/lesstag/internal/core/domain"
	"go.trai.ch/lesstag/internal/core/ports"
	"go.trai.ch/zerr"
)

// ArtifactVerifier checks compiled artifacts exist.
type ArtifactVerifier interface {
	ArtifactExists(dir, name string) (bool, error)
}

// Deps holds the collaborators of Tags. Cache may be nil, which disables
// inline caching.
type Deps struct {
	Resolver       ports.PathResolver
	Tracker        ports.FreshnessChecker
	Compiler       ports.Compiler
	InlineCompiler ports.InlineCompiler
	Cache          ports.Cache
	Hasher         ports.Hasher
	Verifier       ArtifactVerifier
	Logger         ports.Logger
	Tracer         ports.Tracer
}

// Tags evaluates the file and inline stylesheet tags.
type Tags struct {
	deps Deps

	debug     bool
	devMode   bool
	watchDirs []string
	staticURL string
	useCache  bool
	cacheTTL  time.Duration

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates Tags for the given settings.
func New(settings domain.Settings, deps Deps) *Tags {
	return &Tags{
		deps:      deps,
		debug:     settings.Debug,
		devMode:   settings.Less.DevMode,
		watchDirs: settings.Less.DevModeWatchDirs,
		staticURL: settings.StaticURL,
		useCache:  settings.Less.UseCache && deps.Cache != nil,
		cacheTTL:  settings.Less.CacheTimeout,
		locks:     make(map[string]*sync.Mutex),
	}
}

// Inline compiles LESS source text and returns the CSS. With caching enabled,
// results are memoized by content hash for the configured timeout.
func (t *Tags) Inline(ctx context.Context, content string) (string, error) {
	ctx, span := t.deps.Tracer.Start(ctx, "tags.inline")
	defer span.End()

	var key string
	if t.useCache {
		key = domain.InlineCacheKey(t.deps.Hasher.ContentHash(content))
		css, ok, err := t.deps.Cache.Get(key)
		switch {
		case err != nil:
			t.deps.Logger.Warn("inline cache lookup failed", "key", key, "error", err.Error())
		case ok:
			span.SetAttribute("less.cache_hit", true)
			return css, nil
		}
		span.SetAttribute("less.cache_hit", false)
	}

	css, err := t.deps.InlineCompiler.Compile(ctx, content)
	if err != nil {
		span.RecordError(err)
		if t.useCache {
			// Drop any expired entry still held for content that no longer compiles.
			if delErr := t.deps.Cache.Delete(key); delErr != nil {
				t.deps.Logger.Warn("inline cache eviction failed", "key", key, "error", delErr.Error())
			}
		}
		return "", err
	}

	if t.useCache {
		if err := t.deps.Cache.Set(key, css, t.cacheTTL); err != nil {
			t.deps.Logger.Warn("inline cache store failed", "key", key, "error", err.Error())
		}
	}
	return css, nil
}

// File returns the URL of the compiled artifact for a logical stylesheet path,
// compiling it when needed. A compilation failure is reported as a failed
// result carrying the logical path. Resolution and filesystem errors are
// returned.
func (t *Tags) File(ctx context.Context, logical string) (domain.CompileResult, error) {
	ctx, span := t.deps.Tracer.Start(ctx, "tags.file", ports.WithAttribute("less.path", logical))
	defer span.End()

	res, err := t.file(ctx, span, logical)
	if err != nil {
		span.RecordError(err)
		return domain.CompileResult{}, err
	}
	span.RecordError(res.Reason())
	span.SetAttribute("less.url", res.Value())
	return res, nil
}

func (t *Tags) file(ctx context.Context, span ports.Span, logical string) (domain.CompileResult, error) {
	paths, err := t.deps.Resolver.Resolve(logical)
	if err != nil {
		return domain.CompileResult{}, err
	}

	if t.devMode && t.watched(paths.FullPath) {
		span.SetAttribute("less.devmode", true)
		return domain.Success(domain.DevModeURL(paths.LogicalDir, paths.BaseName)), nil
	}

	hash, err := t.deps.Hasher.MtimeHash(paths.FullPath)
	if err != nil {
		return domain.CompileResult{}, zerr.With(err, "logical", logical)
	}
	name := domain.ArtifactName(paths.BaseName, hash)
	url := domain.ArtifactURL(paths.OutputSubdir, paths.LogicalDir, name)

	unlock := t.lock(filepath.Join(paths.OutputDir, paths.BaseName))
	defer unlock()

	recompile := false
	if t.debug {
		if recompile, err = t.deps.Tracker.CheckFreshness(ctx, logical); err != nil {
			return domain.CompileResult{}, err
		}
	}
	if !recompile {
		exists, err := t.deps.Verifier.ArtifactExists(paths.OutputDir, name)
		if err != nil {
			return domain.CompileResult{}, err
		}
		recompile = !exists
	}
	span.SetAttribute("less.compiled", recompile)
	if !recompile {
		return domain.Success(url), nil
	}

	output := filepath.Join(paths.OutputDir, name)
	if err := t.deps.Compiler.Compile(ctx, paths.FullPath, output, logical); err != nil {
		if !isCompileFailure(err) {
			return domain.CompileResult{}, err
		}
		t.deps.Logger.Warn("stylesheet not compiled, linking source", "path", logical)
		return domain.Failure(logical, err), nil
	}

	if err := removeStale(paths.OutputDir, paths.BaseName, name); err != nil {
		return domain.CompileResult{}, err
	}
	return domain.Success(url), nil
}

// isCompileFailure reports whether err came from the compiler itself rather
// than from the environment it runs in.
func isCompileFailure(err error) bool {
	return errors.Is(err, domain.ErrCompilerOutput) || errors.Is(err, domain.ErrCompilerTimeout)
}

// watched reports whether path lies in one of the devmode watch directories.
func (t *Tags) watched(path string) bool {
	for _, dir := range t.watchDirs {
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			continue
		}
		if rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

// lock serializes compilations writing artifacts of the same stylesheet.
func (t *Tags) lock(key string) func() {
	t.mu.Lock()
	l, ok := t.locks[key]
	if !ok {
		l = &sync.Mutex{}
		t.locks[key] = l
	}
	t.mu.Unlock()

	l.Lock()
	return l.Unlock
}

// removeStale deletes every artifact of base in dir except keep.
func removeStale(dir, base, keep string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStaleCleanupFailed, err.Error()), "path", dir)
	}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || name == keep || !domain.IsArtifactOf(name, base) {
			continue
		}
		p := filepath.Join(dir, name)
		if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			return zerr.With(zerr.Wrap(domain.ErrStaleCleanupFailed, err.Error()), "path", p)
		}
	}
	return nil
}
