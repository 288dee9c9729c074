package watcher

import (
	"context"
	"errors"
	"io/fs"
	"iter"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"go.trai.ch/lesstag/internal/core/domain"
	"go.trai.ch/lesstag/internal/core/ports"
	"go.trai.ch/zerr"
)

// StylesheetWalker lists the LESS sources below a directory.
type StylesheetWalker interface {
	Stylesheets(root string, ignores []string) iter.Seq[string]
}

// DevCompiler compiles stylesheets next to their sources whenever they or one
// of their imports change. It produces the files the devmode file tag links to.
type DevCompiler struct {
	mu       sync.Mutex
	watcher  ports.Watcher
	tracker  ports.FreshnessChecker
	compiler ports.Compiler
	walker   StylesheetWalker
	contents *ContentCache
	logger   ports.Logger
	reporter ports.RebuildReporter

	watchDirs   []string
	staticRoots []string
	ignores     []string
	window      time.Duration
}

// Option configures a DevCompiler.
type Option func(*DevCompiler)

// WithDebounceWindow sets the time events are coalesced for.
func WithDebounceWindow(window time.Duration) Option {
	return func(d *DevCompiler) {
		d.window = window
	}
}

// NewDevCompiler creates a DevCompiler watching settings.Less.DevModeWatchDirs.
func NewDevCompiler(
	settings domain.Settings,
	watcher ports.Watcher,
	tracker ports.FreshnessChecker,
	compiler ports.Compiler,
	walker StylesheetWalker,
	contents *ContentCache,
	logger ports.Logger,
	opts ...Option,
) *DevCompiler {
	roots := []string{settings.StaticRoot}
	roots = append(roots, settings.StaticFilesDirs...)
	for _, app := range settings.Apps {
		roots = append(roots, app.StaticDir)
	}

	d := &DevCompiler{
		watcher:     watcher,
		tracker:     tracker,
		compiler:    compiler,
		walker:      walker,
		contents:    contents,
		logger:      logger,
		watchDirs:   settings.Less.DevModeWatchDirs,
		staticRoots: roots,
		ignores:     []string{settings.Less.OutputDir},
		window:      DefaultDebounceWindow,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run primes the tracker and recompiles changed stylesheets until ctx is done.
// A non-nil reporter receives the progress of every rebuild.
func (d *DevCompiler) Run(ctx context.Context, reporter ports.RebuildReporter) error {
	d.mu.Lock()
	d.reporter = reporter
	d.mu.Unlock()

	d.Prime(ctx)

	if err := d.watcher.Start(ctx, d.watchDirs...); err != nil {
		return err
	}
	defer d.watcher.Stop() //nolint:errcheck // Best effort close on shutdown

	d.logger.Info("watching stylesheets", "dirs", strings.Join(d.watchDirs, ", "))

	debouncer := NewDebouncer(d.window, func(paths []string) {
		d.Rebuild(ctx, paths)
	})
	for event := range d.watcher.Events() {
		if isStylesheet(event.Path) {
			debouncer.Add(event.Path)
		}
	}
	debouncer.Flush()
	return nil
}

// Prime records the imports and content hashes of every stylesheet in the
// watched directories.
func (d *DevCompiler) Prime(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, dir := range d.watchDirs {
		for path := range d.walker.Stylesheets(dir, d.ignores) {
			if _, err := d.tracker.CheckFreshness(ctx, path); err != nil {
				d.logger.Warn("failed to track stylesheet", "path", path, "error", err.Error())
			}
			if _, err := d.contents.Changed(path); err != nil {
				d.logger.Warn("failed to hash stylesheet", "path", path, "error", err.Error())
			}
		}
	}
	d.logger.Debug("primed stylesheet tracker", "files", d.contents.Len())
}

// Rebuild compiles every changed path and every stylesheet importing one of
// them. It returns the sources compiled successfully, sorted.
func (d *DevCompiler) Rebuild(ctx context.Context, paths []string) []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	targets := make(map[string]struct{})
	for _, path := range paths {
		path = filepath.Clean(path)
		d.tracker.Invalidate(path)

		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			d.contents.Forget(path)
		} else {
			changed, err := d.contents.Changed(path)
			if err != nil {
				d.logger.Error(err)
				continue
			}
			if !changed {
				d.logger.Debug("stylesheet content unchanged", "path", path)
				continue
			}
			if _, err := d.tracker.CheckFreshness(ctx, path); err != nil {
				d.logger.Warn("failed to track stylesheet", "path", path, "error", err.Error())
			}
			targets[path] = struct{}{}
		}

		for _, dep := range d.tracker.Dependents(path) {
			targets[dep] = struct{}{}
		}
	}

	compiled := make([]string, 0, len(targets))
	for _, target := range slices.Sorted(maps.Keys(targets)) {
		if err := d.compile(ctx, target); err != nil {
			d.logger.Error(err)
			continue
		}
		compiled = append(compiled, target)
	}
	return compiled
}

func (d *DevCompiler) compile(ctx context.Context, source string) error {
	base := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	output := filepath.Join(filepath.Dir(source), base+".css")

	d.report(domain.RebuildEvent{Source: source, Output: output, Status: domain.RebuildStarted})
	if err := d.compiler.Compile(ctx, source, output, d.logicalPath(source)); err != nil {
		err = zerr.With(err, "source", source)
		d.report(domain.RebuildEvent{Source: source, Output: output, Status: domain.RebuildFailed, Err: err})
		return err
	}
	d.report(domain.RebuildEvent{Source: source, Output: output, Status: domain.RebuildCompleted})
	d.logger.Info("compiled", "source", source, "output", output)
	return nil
}

// report must be called with d.mu held.
func (d *DevCompiler) report(event domain.RebuildEvent) {
	if d.reporter != nil {
		d.reporter.Report(event)
	}
}

// logicalPath returns source relative to the first static root containing it,
// or its base name when no root does.
func (d *DevCompiler) logicalPath(source string) string {
	for _, root := range d.staticRoots {
		rel, err := filepath.Rel(root, source)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			continue
		}
		return filepath.ToSlash(rel)
	}
	return filepath.Base(source)
}

func isStylesheet(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".less")
}
