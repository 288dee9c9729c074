//nolint:testpackage // Test needs access to unexported fields
package tui

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/lesstag/internal/core/domain"
)

func TestModel_View(t *testing.T) {
	root := filepath.Join("site", "static")
	m := NewModel(nil, root)
	m.rows = []Row{
		{Source: filepath.Join(root, "css", "main.less"), Status: domain.RebuildCompleted},
		{Source: filepath.Join(root, "css", "broken.less"), Status: domain.RebuildFailed, Err: "ParseError"},
		{Source: filepath.Join("elsewhere", "x.less"), Status: domain.RebuildStarted},
	}
	m.logs = []string{"compiled main.css"}

	output := m.View()

	assert.Contains(t, output, "✓ "+filepath.Join("css", "main.less"))
	assert.Contains(t, output, "✗ "+filepath.Join("css", "broken.less")+" ParseError")
	assert.Contains(t, output, filepath.Join("elsewhere", "x.less"))
	assert.Contains(t, output, "compiled main.css")
}

func TestModel_View_KeepsLatestRowsInView(t *testing.T) {
	m := NewModel(nil, "")
	m.height = 4
	for _, s := range []string{"a.less", "b.less", "c.less", "d.less"} {
		m.rows = append(m.rows, Row{Source: s, Status: domain.RebuildCompleted})
	}

	output := m.View()

	assert.NotContains(t, output, "a.less")
	assert.NotContains(t, output, "b.less")
	assert.Contains(t, output, "c.less")
	assert.Contains(t, output, "d.less")
}
