package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lesstag/internal/adapters/config"
	"go.trai.ch/lesstag/internal/adapters/fs"
	"go.trai.ch/lesstag/internal/adapters/logger"
	"go.trai.ch/lesstag/internal/adapters/shell"
	"go.trai.ch/lesstag/internal/adapters/telemetry"
	"go.trai.ch/lesstag/internal/adapters/watcher"
	"go.trai.ch/lesstag/internal/app"
	"go.trai.ch/lesstag/internal/core/domain"
	"go.trai.ch/lesstag/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const fakeLessc = `#!/bin/sh
for last; do :; done
if grep -q BROKEN "$last"; then
  echo "ParseError: unrecognised input" >&2
  exit 1
fi
cat "$last"
`

func newProvider(t *testing.T, logs *bytes.Buffer) ComponentProvider {
	t.Helper()
	log := logger.New()
	log.SetOutput(logs)
	ctrl := gomock.NewController(t)
	a := app.New(config.NewLoader(log), log, shell.NewRunner(log), telemetry.NewNoOpTracer(),
		fs.NewHasher(), fs.NewVerifier(), fs.NewWalker(), mocks.NewMockWatcher(ctrl),
		watcher.NewContentCache(fs.NewHasher()))
	return func(context.Context) (*app.Components, error) {
		return app.NewComponents(a, log), nil
	}
}

func writeProject(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("uses POSIX shell scripts")
	}
	dir := t.TempDir()
	exe := filepath.Join(dir, "lessc")
	//nolint:gosec // test executable
	require.NoError(t, os.WriteFile(exe, []byte(fakeLessc), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "static", "css"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "static", "css", "ok.less"), []byte("a { b: c; }"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "static", "css", "broken.less"), []byte("BROKEN {"), 0o600))
	cfg := filepath.Join(dir, domain.DefaultConfigFileName)
	require.NoError(t, os.WriteFile(cfg, []byte("less:\n  executable: "+exe+"\n"), 0o600))
	return cfg
}

func TestRun_Version(t *testing.T) {
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	code := run(context.Background(), []string{"version"}, stdout, stderr, newProvider(t, stderr))

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "lesstag version")
}

func TestRun_InitializationError(t *testing.T) {
	stderr := new(bytes.Buffer)
	code := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr,
		func(context.Context) (*app.Components, error) {
			return nil, errors.New("init failed")
		})

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

func TestRun_Compile(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	cfg := writeProject(t)
	stdout, logs := new(bytes.Buffer), new(bytes.Buffer)

	code := run(context.Background(), []string{"compile", "-c", cfg, "css/ok.less"}, stdout, logs, newProvider(t, logs))

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "✓ css/ok.less → LESS_CACHE/css/ok-")
}

func TestRun_CompileFailureIsNotLogged(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	cfg := writeProject(t)
	stdout, logs := new(bytes.Buffer), new(bytes.Buffer)

	code := run(context.Background(), []string{"compile", "-c", cfg, "css/broken.less"}, stdout, logs, newProvider(t, logs))

	assert.Equal(t, 1, code)
	assert.Contains(t, stdout.String(), "✗ css/broken.less")
	assert.NotContains(t, logs.String(), domain.ErrCompileFailed.Error())
}

func TestRun_ExecutionErrorIsLogged(t *testing.T) {
	cfg := writeProject(t)
	stdout, logs := new(bytes.Buffer), new(bytes.Buffer)

	code := run(context.Background(), []string{"compile", "-c", cfg, "css/missing.less"}, stdout, logs, newProvider(t, logs))

	assert.Equal(t, 1, code)
	assert.NotEmpty(t, logs.String())
}
