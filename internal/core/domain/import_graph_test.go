package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lesstag/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestImportGraph_Observe(t *testing.T) {
	g := domain.NewImportGraph()
	t0 := time.Unix(1700000000, 0)

	assert.True(t, g.Observe("a.less", t0), "first observation counts as a change")
	assert.False(t, g.Observe("a.less", t0))
	assert.True(t, g.Observe("a.less", t0.Add(time.Second)))
	assert.False(t, g.Observe("a.less", t0.Add(time.Second)))
}

func TestImportGraph_ObserveZeroTime(t *testing.T) {
	g := domain.NewImportGraph()

	assert.True(t, g.Observe("a.less", time.Time{}), "zero mtime on first observation is still a change")
	assert.False(t, g.Observe("a.less", time.Time{}))
}

func TestImportGraph_SetImportsReplaces(t *testing.T) {
	g := domain.NewImportGraph()

	g.SetImports("main.less", []string{"b.less", "a.less"})
	assert.Equal(t, []string{"a.less", "b.less"}, g.Imports("main.less"))

	g.SetImports("main.less", []string{"c.less"})
	assert.Equal(t, []string{"c.less"}, g.Imports("main.less"))
	assert.Empty(t, g.Imports("unknown.less"))
}

func TestImportGraph_Dependents(t *testing.T) {
	g := domain.NewImportGraph()
	g.SetImports("site.less", []string{"layout.less"})
	g.SetImports("print.less", []string{"layout.less"})
	g.SetImports("layout.less", []string{"vars.less"})

	assert.Equal(t, []string{"layout.less", "print.less", "site.less"}, g.Dependents("vars.less"))
	assert.Equal(t, []string{"print.less", "site.less"}, g.Dependents("layout.less"))
	assert.Empty(t, g.Dependents("site.less"))
}

func TestImportGraph_DependentsWithCycle(t *testing.T) {
	g := domain.NewImportGraph()
	g.SetImports("a.less", []string{"b.less"})
	g.SetImports("b.less", []string{"a.less"})

	assert.Equal(t, []string{"b.less"}, g.Dependents("a.less"))
}

func TestImportGraph_Forget(t *testing.T) {
	g := domain.NewImportGraph()
	t0 := time.Unix(1700000000, 0)
	g.Observe("a.less", t0)
	g.SetImports("a.less", []string{"b.less"})

	g.Forget("a.less")

	assert.Empty(t, g.Imports("a.less"))
	assert.True(t, g.Observe("a.less", t0))
	assert.Equal(t, []string{"a.less"}, g.Dependents("b.less"))
}

func TestCycleError(t *testing.T) {
	err := domain.CycleError([]string{"main.less", "a.less", "b.less"}, "a.less")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrImportCycle))
	assert.Contains(t, err.Error(), "import cycle detected")

	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	assert.Equal(t, "a.less -> b.less -> a.less", zErr.Metadata()["cycle"])
}
