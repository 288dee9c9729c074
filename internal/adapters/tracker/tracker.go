// Package tracker decides whether stylesheets changed by following their imports.
package tracker

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"sync"

	"go.trai.ch/lesstag/internal/core/domain"
	"go.trai.ch/lesstag/internal/core/ports"
)

var importPattern = regexp.MustCompile(`@import\s+['"](.+?\.less)['"]\s*;`)

var _ ports.FreshnessChecker = (*Tracker)(nil)

// Tracker records modification times and import edges of stylesheets.
type Tracker struct {
	mu         sync.Mutex
	graph      *domain.ImportGraph
	resolver   ports.PathResolver
	finder     ports.StaticFinder
	acrossApps bool
	tracer     ports.Tracer
}

// New creates a Tracker. With acrossApps set, imports are looked up through the
// finder before falling back to the importing file's directory.
func New(resolver ports.PathResolver, finder ports.StaticFinder, acrossApps bool, tracer ports.Tracer) *Tracker {
	return &Tracker{
		graph:      domain.NewImportGraph(),
		resolver:   resolver,
		finder:     finder,
		acrossApps: acrossApps,
		tracer:     tracer,
	}
}

// CheckFreshness reports whether path or any of its transitive imports changed
// since the previous check.
func (t *Tracker) CheckFreshness(ctx context.Context, path string) (bool, error) {
	_, span := t.tracer.Start(ctx, "tracker.check", ports.WithAttribute("less.path", path))
	defer span.End()

	t.mu.Lock()
	defer t.mu.Unlock()

	key, err := t.locate(path)
	if err != nil {
		err = domain.Annotate(domain.ErrFileNotAccessible, "path", path)
		span.RecordError(err)
		return false, err
	}

	w := &walk{tracker: t, results: make(map[string]bool)}
	changed, err := w.visit(key, nil)
	if err != nil {
		span.RecordError(err)
		return false, err
	}

	span.SetAttribute("less.changed", changed)
	span.SetAttribute("less.visited", len(w.results))
	return changed, nil
}

// Invalidate forgets the observed state of path.
func (t *Tracker) Invalidate(path string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.graph.Forget(t.key(path))
}

// Dependents returns every tracked file importing path directly or transitively.
func (t *Tracker) Dependents(path string) []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.graph.Dependents(t.key(path))
}

// Imports returns the recorded imports of path.
func (t *Tracker) Imports(path string) []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.graph.Imports(t.key(path))
}

// locate maps path to its graph key. Absolute paths are file locations;
// anything else is a logical path resolved against the static root.
func (t *Tracker) locate(path string) (string, error) {
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}
	paths, err := t.resolver.Resolve(path)
	if err != nil {
		return "", err
	}
	return filepath.Clean(paths.FullPath), nil
}

// key is locate falling back to the cleaned path when it cannot be resolved.
func (t *Tracker) key(path string) string {
	if key, err := t.locate(path); err == nil {
		return key
	}
	return filepath.Clean(path)
}

// walk holds the state of one freshness check. results memoizes every file
// already visited so shared imports are checked once.
type walk struct {
	tracker *Tracker
	results map[string]bool
}

// visit checks the file at key, a graph key as returned by locate or recorded
// as an import.
func (w *walk) visit(key string, stack []string) (bool, error) {
	t := w.tracker

	if slices.Contains(stack, key) {
		return false, domain.CycleError(stack, key)
	}
	if changed, done := w.results[key]; done {
		return changed, nil
	}

	info, err := os.Stat(key)
	if err != nil {
		return false, domain.Annotate(domain.ErrFileNotAccessible, "path", key)
	}

	changed := t.graph.Observe(key, info.ModTime())
	if changed {
		imports, err := t.scanImports(key)
		if err != nil {
			return false, err
		}
		t.graph.SetImports(key, imports)
	}

	stack = append(stack, key)
	for _, imported := range t.graph.Imports(key) {
		importChanged, err := w.visit(imported, stack)
		if err != nil {
			return false, err
		}
		changed = changed || importChanged
	}

	w.results[key] = changed
	return changed, nil
}

// scanImports returns the resolved locations of every stylesheet imported by file.
func (t *Tracker) scanImports(file string) ([]string, error) {
	content, err := os.ReadFile(file) //nolint:gosec // stylesheet path resolved by the tracker
	if err != nil {
		return nil, domain.Annotate(domain.ErrFileNotAccessible, "path", file)
	}

	matches := importPattern.FindAllSubmatch(content, -1)
	imports := make([]string, 0, len(matches))
	for _, m := range matches {
		imports = append(imports, t.resolveImport(file, string(m[1])))
	}
	return imports, nil
}

func (t *Tracker) resolveImport(file, target string) string {
	if t.acrossApps {
		if found, ok, err := t.finder.Find(target); err == nil && ok {
			return filepath.Clean(found)
		}
	}
	if filepath.IsAbs(target) {
		return filepath.Clean(target)
	}
	return filepath.Join(filepath.Dir(file), filepath.FromSlash(target))
}
