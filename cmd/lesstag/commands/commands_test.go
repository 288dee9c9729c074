package commands_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lesstag/cmd/lesstag/commands"
	"go.trai.ch/lesstag/internal/app"
	"go.trai.ch/lesstag/internal/build"
	"go.trai.ch/lesstag/internal/core/domain"
	"go.trai.ch/lesstag/internal/core/ports"
)

type fakeApp struct {
	configured app.ConfigureOptions
	configErr  error

	compileFunc func(paths []string) ([]app.CompileOutcome, error)
	inlineInput string
	renderArgs  []string
	watched     bool
	reporter    ports.RebuildReporter
	logOutput   io.Writer
}

func (f *fakeApp) Configure(opts app.ConfigureOptions) error {
	f.configured = opts
	return f.configErr
}

func (f *fakeApp) Compile(_ context.Context, paths []string) ([]app.CompileOutcome, error) {
	return f.compileFunc(paths)
}

func (f *fakeApp) Inline(_ context.Context, r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	f.inlineInput = string(b)
	return "compiled{}", err
}

func (f *fakeApp) Render(_ context.Context, w io.Writer, templatePath, dataPath string) error {
	f.renderArgs = []string{templatePath, dataPath}
	_, err := io.WriteString(w, "<html>")
	return err
}

func (f *fakeApp) Watch(_ context.Context, reporter ports.RebuildReporter) error {
	f.watched = true
	f.reporter = reporter
	return nil
}

func (f *fakeApp) SetLogOutput(w io.Writer) {
	f.logOutput = w
}

func execute(t *testing.T, a commands.Application, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	cli := commands.New(a)
	out := new(bytes.Buffer)
	cli.SetOutput(out, out)
	cli.SetInput(strings.NewReader(stdin))
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return out.String(), err
}

func TestCommands_GlobalFlags(t *testing.T) {
	f := &fakeApp{}
	_, err := execute(t, f, "", "watch", "-c", "site/lesstag.yaml", "--verbose", "--log-json")
	require.NoError(t, err)

	assert.Equal(t, app.ConfigureOptions{ConfigPath: "site/lesstag.yaml", Verbose: true, LogJSON: true}, f.configured)
	assert.True(t, f.watched)
}

func TestCommands_Watch_PlainWithoutTerminal(t *testing.T) {
	f := &fakeApp{}
	_, err := execute(t, f, "", "watch")
	require.NoError(t, err)

	assert.True(t, f.watched)
	assert.Nil(t, f.reporter)
	assert.Nil(t, f.logOutput)
}

func TestCommands_DefaultConfigPath(t *testing.T) {
	f := &fakeApp{}
	_, err := execute(t, f, "", "watch")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfigFileName, f.configured.ConfigPath)
}

func TestCommands_ConfigureError(t *testing.T) {
	f := &fakeApp{configErr: domain.ErrInvalidConfig}
	_, err := execute(t, f, "", "watch")
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
	assert.False(t, f.watched)
}

func TestCommands_Compile(t *testing.T) {
	t.Run("prints artifact paths", func(t *testing.T) {
		f := &fakeApp{compileFunc: func(paths []string) ([]app.CompileOutcome, error) {
			assert.Equal(t, []string{"css/main.less"}, paths)
			return []app.CompileOutcome{
				{Path: "css/main.less", Result: domain.Success("LESS_CACHE/css/main-0123456789ab.css")},
			}, nil
		}}

		out, err := execute(t, f, "", "compile", "css/main.less")
		require.NoError(t, err)
		assert.Equal(t, "✓ css/main.less → LESS_CACHE/css/main-0123456789ab.css\n", out)
	})

	t.Run("reports failures", func(t *testing.T) {
		f := &fakeApp{compileFunc: func([]string) ([]app.CompileOutcome, error) {
			return []app.CompileOutcome{
				{Path: "css/ok.less", Result: domain.Success("LESS_CACHE/css/ok-1.css")},
				{Path: "css/broken.less", Result: domain.Failure("css/broken.less", domain.ErrCompilerOutput)},
			}, nil
		}}

		out, err := execute(t, f, "", "compile", "css/ok.less", "css/broken.less")
		assert.ErrorIs(t, err, domain.ErrCompileFailed)
		assert.Contains(t, out, "✗ css/broken.less (not compiled)\n")
	})

	t.Run("propagates errors", func(t *testing.T) {
		f := &fakeApp{compileFunc: func([]string) ([]app.CompileOutcome, error) {
			return nil, errors.New("simulated error")
		}}

		_, err := execute(t, f, "", "compile", "css/missing.less")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("requires a path", func(t *testing.T) {
		_, err := execute(t, &fakeApp{}, "", "compile")
		require.Error(t, err)
	})
}

func TestCommands_Inline(t *testing.T) {
	t.Run("reads stdin", func(t *testing.T) {
		f := &fakeApp{}
		out, err := execute(t, f, "a { b: c; }", "inline")
		require.NoError(t, err)
		assert.Equal(t, "a { b: c; }", f.inlineInput)
		assert.Equal(t, "compiled{}", out)
	})

	t.Run("reads stdin for dash", func(t *testing.T) {
		f := &fakeApp{}
		_, err := execute(t, f, "x {}", "inline", "-")
		require.NoError(t, err)
		assert.Equal(t, "x {}", f.inlineInput)
	})

	t.Run("reads a file", func(t *testing.T) {
		p := filepath.Join(t.TempDir(), "in.less")
		require.NoError(t, os.WriteFile(p, []byte("file {}"), 0o600))
		f := &fakeApp{}
		_, err := execute(t, f, "", "inline", p)
		require.NoError(t, err)
		assert.Equal(t, "file {}", f.inlineInput)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := execute(t, &fakeApp{}, "", "inline", filepath.Join(t.TempDir(), "nope.less"))
		require.Error(t, err)
	})
}

func TestCommands_Render(t *testing.T) {
	f := &fakeApp{}
	out, err := execute(t, f, "", "render", "page.html", "--data", "data.yaml")
	require.NoError(t, err)
	assert.Equal(t, []string{"page.html", "data.yaml"}, f.renderArgs)
	assert.Equal(t, "<html>", out)
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &fakeApp{}, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "lesstag version "+build.Version+" (commit: "+build.Commit+", date: "+build.Date+")\n", out)
}
