package domain

import (
	"maps"
	"slices"
	"strings"
	"time"
)

// WatchedFile is the tracked state of a stylesheet.
type WatchedFile struct {
	// ModTime is the last observed modification time. Only meaningful when Seen is set.
	ModTime time.Time
	// Seen is set once the file has been stat'ed at least once.
	Seen bool
	// Dependents holds the paths of the files importing this one.
	Dependents map[string]struct{}
}

// ImportGraph records stylesheet modification times and import edges.
type ImportGraph struct {
	files map[string]*WatchedFile
	edges map[string]map[string]struct{}
}

// NewImportGraph creates a new empty ImportGraph.
func NewImportGraph() *ImportGraph {
	return &ImportGraph{
		files: make(map[string]*WatchedFile),
		edges: make(map[string]map[string]struct{}),
	}
}

// File returns the entry for path, creating it on first use.
func (g *ImportGraph) File(path string) *WatchedFile {
	f, ok := g.files[path]
	if !ok {
		f = &WatchedFile{Dependents: make(map[string]struct{})}
		g.files[path] = f
	}
	return f
}

// Observe records mtime for path and reports whether it differs from the previous
// observation. The first observation always counts as a change.
func (g *ImportGraph) Observe(path string, mtime time.Time) bool {
	f := g.File(path)
	if f.Seen && f.ModTime.Equal(mtime) {
		return false
	}
	f.ModTime = mtime
	f.Seen = true
	return true
}

// SetImports replaces the import edges of parent and registers parent as a dependent
// of every import.
func (g *ImportGraph) SetImports(parent string, imports []string) {
	set := make(map[string]struct{}, len(imports))
	for _, imported := range imports {
		set[imported] = struct{}{}
		g.File(imported).Dependents[parent] = struct{}{}
	}
	g.edges[parent] = set
}

// Imports returns the recorded imports of parent, sorted.
func (g *ImportGraph) Imports(parent string) []string {
	return slices.Sorted(maps.Keys(g.edges[parent]))
}

// Dependents returns every file importing path directly or transitively, sorted.
func (g *ImportGraph) Dependents(path string) []string {
	seen := make(map[string]struct{})
	var visit func(p string)
	visit = func(p string) {
		f, ok := g.files[p]
		if !ok {
			return
		}
		for dep := range f.Dependents {
			if _, done := seen[dep]; done || dep == path {
				continue
			}
			seen[dep] = struct{}{}
			visit(dep)
		}
	}
	visit(path)
	return slices.Sorted(maps.Keys(seen))
}

// Forget drops the observation for path so the next check reports it changed.
// Its dependents are kept.
func (g *ImportGraph) Forget(path string) {
	if f, ok := g.files[path]; ok {
		f.Seen = false
		f.ModTime = time.Time{}
	}
	delete(g.edges, path)
}

// CycleError builds an ErrImportCycle carrying the cycle path. stack is the
// current traversal path and dep the file that closes the cycle.
func CycleError(stack []string, dep string) error {
	start := slices.Index(stack, dep)
	if start < 0 {
		start = 0
	}
	cycle := append(slices.Clone(stack[start:]), dep)
	return Annotate(ErrImportCycle, "cycle", strings.Join(cycle, " -> "))
}
