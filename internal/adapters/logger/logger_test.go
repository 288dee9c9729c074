package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lesstag/internal/adapters/logger"
	"go.trai.ch/lesstag/internal/core/domain"
)

func newBufferedLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New()
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Info(t *testing.T) {
	lg, buf := newBufferedLogger(t)

	lg.Info("some message", "path", "css/a.less")

	assert.Equal(t, "some message path=css/a.less\n", buf.String())
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := newBufferedLogger(t)

	lg.Warn("careful")

	assert.Equal(t, "! careful\n", buf.String())
}

func TestLogger_DebugRespectsLevel(t *testing.T) {
	lg, buf := newBufferedLogger(t)

	lg.Debug("hidden")
	assert.Empty(t, buf.String())

	lg.SetLevel(slog.LevelDebug)
	lg.Debug("shown")
	assert.Equal(t, "· shown\n", buf.String())
}

func TestLogger_Error(t *testing.T) {
	lg, buf := newBufferedLogger(t)

	err := domain.Annotate(domain.ErrCompilerOutput, "stderr", "ParseError: missing }")
	lg.Error(err)

	assert.Equal(t, "✗ Error: less compiler reported errors\n       stderr: ParseError: missing }\n", buf.String())
}

func TestLogger_ErrorNil(t *testing.T) {
	lg, buf := newBufferedLogger(t)

	lg.Error(nil)

	assert.Empty(t, buf.String())
}

func TestLogger_SetJSON(t *testing.T) {
	lg, buf := newBufferedLogger(t)
	lg.SetJSON(true)

	lg.Error(errors.New("boom"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "operation failed", record["msg"])
	assert.Equal(t, "boom", record["error"])
}

func TestLogger_SetJSONKeepsOutput(t *testing.T) {
	lg, buf := newBufferedLogger(t)
	lg.SetJSON(true)
	lg.SetJSON(false)

	lg.Info("pretty again")

	assert.Equal(t, "pretty again\n", buf.String())
}
