package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/lesstag/internal/core/domain"
	"go.trai.ch/lesstag/internal/ui/style"
)

const maxLogLines = 5

// Row is the latest state of one stylesheet.
type Row struct {
	Source string
	Status domain.RebuildStatus
	Err    string
}

type styles struct {
	completed lipgloss.Style
	failed    lipgloss.Style
	dim       lipgloss.Style
}

// Model is the Bubble Tea model listing rebuilt stylesheets.
type Model struct {
	feed    EventSource
	root    string
	rows    []Row
	index   map[string]int
	logs    []string
	width   int
	height  int
	spinner spinner.Model
	styles  styles
}

// NewModel creates a model reading from feed. Sources below root are shown
// relative to it.
func NewModel(feed EventSource, root string) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(style.Yellow)

	return &Model{
		feed:    feed,
		root:    root,
		index:   make(map[string]int),
		spinner: s,
		styles: styles{
			completed: lipgloss.NewStyle().Foreground(style.Green),
			failed:    lipgloss.NewStyle().Foreground(style.Red),
			dim:       lipgloss.NewStyle().Foreground(style.Slate),
		},
	}
}

// Rows returns the stylesheets in the order they were first rebuilt.
func (m *Model) Rows() []Row {
	return m.rows
}

// Init starts reading from the feed.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		WaitForFeed(m.feed),
		m.spinner.Tick,
	)
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case MsgRebuild:
		m.apply(msg.Event)
		return m, WaitForFeed(m.feed)
	case MsgLog:
		m.logs = append(m.logs, msg.Line)
		if len(m.logs) > maxLogLines {
			m.logs = m.logs[len(m.logs)-maxLogLines:]
		}
	case MsgFeedEnded:
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) apply(event domain.RebuildEvent) {
	i, ok := m.index[event.Source]
	if !ok {
		i = len(m.rows)
		m.rows = append(m.rows, Row{Source: event.Source})
		m.index[event.Source] = i
	}
	m.rows[i].Status = event.Status
	m.rows[i].Err = ""
	if event.Err != nil {
		m.rows[i].Err, _, _ = strings.Cut(event.Err.Error(), "\n")
	}
}

// View renders the stylesheet list followed by the latest log lines.
func (m *Model) View() string {
	var s strings.Builder
	s.WriteString(m.styles.dim.Render("watching stylesheets, q to quit"))
	s.WriteString("\n")

	start := 0
	if visible := m.height - len(m.logs) - 2; m.height > 0 && len(m.rows) > visible {
		start = len(m.rows) - max(visible, 0)
	}

	for _, row := range m.rows[start:] {
		var icon string
		switch row.Status {
		case domain.RebuildStarted:
			icon = m.spinner.View()
		case domain.RebuildCompleted:
			icon = m.styles.completed.Render(style.Check)
		case domain.RebuildFailed:
			icon = m.styles.failed.Render(style.Cross)
		}
		line := fmt.Sprintf("%s %s", icon, m.displayName(row.Source))
		if row.Err != "" {
			line += " " + m.styles.dim.Render(row.Err)
		}
		s.WriteString(line)
		s.WriteString("\n")
	}

	if len(m.logs) > 0 {
		s.WriteString("\n")
		for _, l := range m.logs {
			s.WriteString(m.styles.dim.Render(l))
			s.WriteString("\n")
		}
	}
	return s.String()
}

func (m *Model) displayName(source string) string {
	if m.root == "" {
		return source
	}
	rel, err := filepath.Rel(m.root, source)
	if err != nil || strings.HasPrefix(rel, "..") {
		return source
	}
	return rel
}
