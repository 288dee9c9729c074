// Package app implements the application layer for lesstag.
package app

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.trai.ch/lesstag/internal/adapters/cache"
	"go.trai.ch/lesstag/internal/adapters/fs"
	"go.trai.ch/lesstag/internal/adapters/less"
	"go.trai.ch/lesstag/internal/adapters/logger"
	"go.trai.ch/lesstag/internal/adapters/telemetry"
	"go.trai.ch/lesstag/internal/adapters/tracker"
	"go.trai.ch/lesstag/internal/adapters/watcher"
	"go.trai.ch/lesstag/internal/core/domain"
	"go.trai.ch/lesstag/internal/core/ports"
	"go.trai.ch/lesstag/internal/engine/tags"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       *logger.Logger
	runner       ports.ProcessRunner
	tracer       ports.Tracer
	hasher       *fs.Hasher
	verifier     *fs.Verifier
	walker       *fs.Walker
	watcher      ports.Watcher
	contents     *watcher.ContentCache

	settings *domain.Settings
	tags     *tags.Tags
	dev      *watcher.DevCompiler
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log *logger.Logger,
	runner ports.ProcessRunner,
	tracer ports.Tracer,
	hasher *fs.Hasher,
	verifier *fs.Verifier,
	walker *fs.Walker,
	w ports.Watcher,
	contents *watcher.ContentCache,
) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		runner:       runner,
		tracer:       tracer,
		hasher:       hasher,
		verifier:     verifier,
		walker:       walker,
		watcher:      w,
		contents:     contents,
	}
}

// ConfigureOptions holds the global command line options.
type ConfigureOptions struct {
	ConfigPath string
	Verbose    bool
	LogJSON    bool
}

// Configure loads the settings and builds the stylesheet components.
func (a *App) Configure(opts ConfigureOptions) error {
	a.logger.SetJSON(opts.LogJSON)
	if opts.Verbose {
		a.logger.SetLevel(slog.LevelDebug)
		otel.SetTracerProvider(telemetry.NewProvider(a.logger))
	}

	configPath := opts.ConfigPath
	if configPath == "" {
		configPath = domain.DefaultConfigFileName
	}
	settings, err := a.configLoader.Load(configPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	var inlineCache ports.Cache
	if settings.Less.UseCache {
		if inlineCache, err = cache.New(settings.Less); err != nil {
			return err
		}
	}

	finder := fs.NewFinder(settings)
	resolver := fs.NewPathResolver(settings, finder)
	tr := tracker.New(resolver, finder, settings.Less.IncludeAcrossApps, a.tracer)
	compiler := less.NewCompiler(settings, a.runner, finder, a.logger, a.tracer)

	a.settings = &settings
	a.tags = tags.New(settings, tags.Deps{
		Resolver:       resolver,
		Tracker:        tr,
		Compiler:       compiler,
		InlineCompiler: less.NewInlineCompiler(settings, a.runner, a.logger, a.tracer),
		Cache:          inlineCache,
		Hasher:         a.hasher,
		Verifier:       a.verifier,
		Logger:         a.logger,
		Tracer:         a.tracer,
	})
	a.dev = watcher.NewDevCompiler(settings, a.watcher, tr, compiler, a.walker, a.contents, a.logger)

	a.logger.Debug("configured", "config", configPath, "static_root", settings.StaticRoot, "debug", settings.Debug)
	return nil
}

// Settings returns the loaded settings.
func (a *App) Settings() (domain.Settings, error) {
	if a.settings == nil {
		return domain.Settings{}, domain.ErrNotConfigured
	}
	return *a.settings, nil
}

// CompileOutcome is the result of compiling one stylesheet.
type CompileOutcome struct {
	Path   string
	Result domain.CompileResult
}

// Compile evaluates the file tag for every path concurrently. Outcomes keep
// the order of paths. Resolution and filesystem errors abort the batch.
func (a *App) Compile(ctx context.Context, paths []string) ([]CompileOutcome, error) {
	if a.tags == nil {
		return nil, domain.ErrNotConfigured
	}

	outcomes := make([]CompileOutcome, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, p := range paths {
		g.Go(func() error {
			res, err := a.tags.File(ctx, p)
			if err != nil {
				return zerr.With(err, "path", p)
			}
			outcomes[i] = CompileOutcome{Path: p, Result: res}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

// Inline compiles LESS source read from r.
func (a *App) Inline(ctx context.Context, r io.Reader) (string, error) {
	if a.tags == nil {
		return "", domain.ErrNotConfigured
	}
	source, err := io.ReadAll(r)
	if err != nil {
		return "", zerr.Wrap(err, "failed to read stylesheet source")
	}
	return a.tags.Inline(ctx, string(source))
}

// Render executes the template file at templatePath into w. dataPath names an
// optional YAML file providing the template data.
func (a *App) Render(ctx context.Context, w io.Writer, templatePath, dataPath string) error {
	if a.tags == nil {
		return domain.ErrNotConfigured
	}

	text, err := os.ReadFile(templatePath) //nolint:gosec // path is provided by the user
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to read template"), "path", templatePath)
	}

	var data map[string]any
	if dataPath != "" {
		raw, err := os.ReadFile(dataPath) //nolint:gosec // path is provided by the user
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to read template data"), "path", dataPath)
		}
		if err := yaml.Unmarshal(raw, &data); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to parse template data"), "path", dataPath)
		}
	}

	return a.tags.Render(ctx, w, filepath.Base(templatePath), string(text), data)
}

// Watch recompiles stylesheets in the devmode watch directories until ctx is
// done. reporter may be nil.
func (a *App) Watch(ctx context.Context, reporter ports.RebuildReporter) error {
	if a.dev == nil {
		return domain.ErrNotConfigured
	}
	return a.dev.Run(ctx, reporter)
}

// SetLogOutput redirects log output to w. A nil writer selects stderr.
func (a *App) SetLogOutput(w io.Writer) {
	a.logger.SetOutput(w)
}
