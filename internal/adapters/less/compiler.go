// Package less invokes the external LESS compiler.
package less

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/lesstag/internal/core/domain"
	"go.trai.ch/lesstag/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Compiler = (*Compiler)(nil)

// Compiler compiles LESS files to CSS artifacts.
type Compiler struct {
	runner     ports.ProcessRunner
	finder     ports.StaticFinder
	logger     ports.Logger
	tracer     ports.Tracer
	executable string
	outputRoot string
	staticURL  string
	timeout    time.Duration
	env        map[string]string
}

// NewCompiler creates a Compiler.
func NewCompiler(
	settings domain.Settings,
	runner ports.ProcessRunner,
	finder ports.StaticFinder,
	logger ports.Logger,
	tracer ports.Tracer,
) *Compiler {
	return &Compiler{
		runner:     runner,
		finder:     finder,
		logger:     logger,
		tracer:     tracer,
		executable: settings.Less.Executable,
		outputRoot: filepath.Join(settings.Less.Root, settings.Less.OutputDir),
		staticURL:  settings.StaticURL,
		timeout:    settings.Less.CompileTimeout,
		env:        settings.Less.Env,
	}
}

// Compile compiles sourcePath and writes the URL-rewritten CSS to outputPath.
// Any output on the compiler's error stream fails the compilation.
func (c *Compiler) Compile(ctx context.Context, sourcePath, outputPath, logicalPath string) error {
	ctx, span := c.tracer.Start(ctx, "less.compile",
		ports.WithAttribute("less.source", sourcePath),
		ports.WithAttribute("less.output", outputPath),
	)
	defer span.End()

	err := c.compile(ctx, span, sourcePath, outputPath, logicalPath)
	span.RecordError(err)
	return err
}

func (c *Compiler) compile(ctx context.Context, span ports.Span, sourcePath, outputPath, logicalPath string) error {
	if err := os.MkdirAll(c.outputRoot, 0o750); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrOutputWriteFailed, err.Error()), "path", c.outputRoot)
	}

	res, err := c.runner.Run(ctx, domain.Command{
		Args:    []string{c.executable, "--include-path=" + c.includePath(), sourcePath},
		Env:     c.env,
		Timeout: c.timeout,
	})
	if err != nil {
		return zerr.With(err, "source", sourcePath)
	}

	if len(res.Stderr) > 0 {
		_, _ = span.Write(res.Stderr)
		err := zerr.With(
			domain.Annotate(domain.ErrCompilerOutput, "stderr", strings.TrimSpace(string(res.Stderr))),
			"source", sourcePath,
		)
		c.logger.Error(err)
		return err
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o750); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrOutputWriteFailed, err.Error()), "path", outputPath)
	}

	css := domain.RewriteURLs(string(res.Stdout), domain.SourceURL(c.staticURL, filepath.ToSlash(logicalPath)))
	//nolint:gosec // compiled stylesheets are served publicly
	if err := os.WriteFile(outputPath, []byte(css), 0o644); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrOutputWriteFailed, err.Error()), "path", outputPath)
	}

	span.SetAttribute("less.bytes", len(css))
	c.logger.Debug("compiled stylesheet", "source", sourcePath, "output", outputPath)
	return nil
}

// includePath lists the working directory and every existing app static
// directory, relative to the working directory.
func (c *Compiler) includePath() string {
	paths := []string{"."}
	wd, wdErr := os.Getwd()
	for _, dir := range c.finder.AppDirs() {
		if wdErr == nil {
			if abs, err := filepath.Abs(dir); err == nil {
				if rel, err := filepath.Rel(wd, abs); err == nil {
					dir = rel
				}
			}
		}
		paths = append(paths, dir)
	}
	return strings.Join(paths, string(os.PathListSeparator))
}
