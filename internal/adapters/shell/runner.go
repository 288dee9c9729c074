// Package shell provides the process runner adapter.
package shell

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"go.trai.ch/lesstag/internal/core/domain"
	"go.trai.ch/lesstag/internal/core/ports"
	"go.trai.ch/zerr"
)

// waitDelay bounds how long Run waits for output pipes after the process was killed.
const waitDelay = time.Second

// Runner implements ports.ProcessRunner using os/exec.
type Runner struct {
	logger ports.Logger
}

var _ ports.ProcessRunner = (*Runner)(nil)

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run executes cmd and captures both output streams. Stderr lines are also
// logged at debug level.
func (r *Runner) Run(ctx context.Context, cmd domain.Command) (domain.CommandResult, error) {
	var result domain.CommandResult

	args := platformArgs(cmd.Args)
	if len(args) == 0 {
		return result, domain.ErrEmptyCommand
	}

	if cmd.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cmd.Timeout)
		defer cancel()
	}

	name := args[0]
	env := resolveEnvironment(os.Environ(), cmd.Env)

	executable := name
	if !filepath.IsAbs(name) && len(cmd.Env) > 0 {
		if lp, err := lookPath(name, env); err == nil {
			executable = lp
		}
	}

	c := exec.CommandContext(ctx, executable, args[1:]...) //nolint:gosec // configured compiler
	if len(c.Args) > 0 {
		c.Args[0] = name
	}
	c.Env = env
	c.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	stderrLog := &logWriter{logger: r.logger}
	c.Stdout = &stdout
	c.Stderr = io.MultiWriter(&stderr, stderrLog)

	err := c.Run()
	stderrLog.Flush()
	result.Stdout = stdout.Bytes()
	result.Stderr = stderr.Bytes()

	if err == nil {
		return result, nil
	}

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		result.ExitCode = -1
		return result, zerr.With(domain.Annotate(domain.ErrCompilerTimeout, "timeout", cmd.Timeout.String()), "command", name)
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		result.ExitCode = -1
		return result, zerr.Wrap(ctxErr, "command canceled")
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		return result, nil
	}

	result.ExitCode = -1
	return result, zerr.With(zerr.Wrap(domain.ErrCompilerStartFailed, err.Error()), "command", name)
}

// platformArgs routes the command through the system shell on Windows.
func platformArgs(args []string) []string {
	if runtime.GOOS == "windows" && len(args) > 0 {
		return append([]string{"cmd", "/C"}, args...)
	}
	return args
}

// logWriter logs every complete line written to it at debug level.
type logWriter struct {
	logger ports.Logger
	mu     sync.Mutex
	buf    bytes.Buffer
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf.Write(p)
	for {
		line, err := w.buf.ReadString('\n')
		if err != nil {
			// Partial line: keep it for the next write.
			w.buf.Reset()
			w.buf.WriteString(line)
			break
		}
		w.emit(strings.TrimSuffix(line, "\n"))
	}
	return len(p), nil
}

// Flush logs any buffered partial line.
func (w *logWriter) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	sc := bufio.NewScanner(&w.buf)
	for sc.Scan() {
		w.emit(sc.Text())
	}
	w.buf.Reset()
}

func (w *logWriter) emit(line string) {
	if line == "" {
		return
	}
	w.logger.Debug("compiler stderr", "line", line)
}

// resolveEnvironment applies overrides on top of the inherited environment.
func resolveEnvironment(sysEnv []string, overrides map[string]string) []string {
	if len(overrides) == 0 {
		return sysEnv
	}

	envMap := make(map[string]string, len(sysEnv)+len(overrides))
	for _, entry := range sysEnv {
		if k, v, ok := strings.Cut(entry, "="); ok {
			envMap[k] = v
		}
	}
	for k, v := range overrides {
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	return result
}

// lookPath searches for an executable in the directories named by the PATH entry of env.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if p, ok := strings.CutPrefix(e, "PATH="); ok {
			path = p
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
