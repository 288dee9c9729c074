package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// LogWriter turns written log output into MsgLog messages, one per line.
type LogWriter struct {
	send func(tea.Msg)
}

// NewLogWriter creates a LogWriter delivering through send, usually the
// Send method of a running tea.Program.
func NewLogWriter(send func(tea.Msg)) *LogWriter {
	return &LogWriter{send: send}
}

func (w *LogWriter) Write(p []byte) (int, error) {
	for line := range strings.Lines(string(p)) {
		line = strings.TrimRight(line, "\r\n")
		if line != "" {
			w.send(MsgLog{Line: line})
		}
	}
	return len(p), nil
}
