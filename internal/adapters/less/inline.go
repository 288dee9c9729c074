package less

import (
	"context"
	"os"
	"time"

	"go.trai.ch/lesstag/internal/core/domain"
	"go.trai.ch/lesstag/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.InlineCompiler = (*InlineCompiler)(nil)

// InlineCompiler compiles LESS source text through a temporary file.
type InlineCompiler struct {
	runner     ports.ProcessRunner
	logger     ports.Logger
	tracer     ports.Tracer
	executable string
	timeout    time.Duration
	env        map[string]string
	tempDir    string
}

// NewInlineCompiler creates an InlineCompiler. Temporary files go to the
// system temporary directory.
func NewInlineCompiler(settings domain.Settings, runner ports.ProcessRunner, logger ports.Logger, tracer ports.Tracer) *InlineCompiler {
	return &InlineCompiler{
		runner:     runner,
		logger:     logger,
		tracer:     tracer,
		executable: settings.Less.Executable,
		timeout:    settings.Less.CompileTimeout,
		env:        settings.Less.Env,
	}
}

// Compile returns the compiler's standard output, or its error output when the
// standard output is empty.
func (c *InlineCompiler) Compile(ctx context.Context, source string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "less.inline", ports.WithAttribute("less.source_bytes", len(source)))
	defer span.End()

	out, err := c.compile(ctx, span, source)
	span.RecordError(err)
	return out, err
}

func (c *InlineCompiler) compile(ctx context.Context, span ports.Span, source string) (string, error) {
	tmp, err := os.CreateTemp(c.tempDir, "lesstag-*.less")
	if err != nil {
		return "", zerr.Wrap(err, "failed to create temporary stylesheet")
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // Best effort cleanup

	if _, err := tmp.WriteString(source); err != nil {
		_ = tmp.Close()
		return "", zerr.Wrap(err, "failed to write temporary stylesheet")
	}
	if err := tmp.Close(); err != nil {
		return "", zerr.Wrap(err, "failed to write temporary stylesheet")
	}

	res, err := c.runner.Run(ctx, domain.Command{
		Args:    []string{c.executable, tmp.Name()},
		Env:     c.env,
		Timeout: c.timeout,
	})
	if err != nil {
		return "", err
	}

	switch {
	case len(res.Stdout) > 0:
		span.SetAttribute("less.bytes", len(res.Stdout))
		return string(res.Stdout), nil
	case len(res.Stderr) > 0:
		_, _ = span.Write(res.Stderr)
		c.logger.Warn("inline stylesheet produced no CSS", "stderr", string(res.Stderr))
		return string(res.Stderr), nil
	default:
		return "", nil
	}
}
