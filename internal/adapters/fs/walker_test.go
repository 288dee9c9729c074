package fs_test

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lesstag/internal/adapters/fs"
)

func writeTree(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		p := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o750))
		require.NoError(t, os.WriteFile(p, []byte(f), 0o600))
	}
}

func relPaths(t *testing.T, root string, paths []string) []string {
	t.Helper()
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		rel, err := filepath.Rel(root, p)
		require.NoError(t, err)
		out = append(out, filepath.ToSlash(rel))
	}
	slices.Sort(out)
	return out
}

func TestWalker_WalkFiles(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root,
		".git/config",
		"node_modules/less/index.less",
		"ignored/skip.less",
		"css/site.less",
		"css/site.css",
		"README.md",
	)

	walker := fs.NewWalker()
	got := relPaths(t, root, slices.Collect(walker.WalkFiles(root, []string{"ignored"})))

	assert.Equal(t, []string{"README.md", "css/site.css", "css/site.less"}, got)
}

func TestWalker_WalkFiles_IgnoredFile(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "a.less", "a.less~")

	walker := fs.NewWalker()
	got := relPaths(t, root, slices.Collect(walker.WalkFiles(root, []string{"*~"})))

	assert.Equal(t, []string{"a.less"}, got)
}

func TestWalker_Stylesheets(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root,
		"css/site.less",
		"css/partials/_vars.LESS",
		"css/site.css",
		"js/app.js",
	)

	walker := fs.NewWalker()
	got := relPaths(t, root, slices.Collect(walker.Stylesheets(root, nil)))

	assert.Equal(t, []string{"css/partials/_vars.LESS", "css/site.less"}, got)
}

func TestWalker_EarlyStop(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "a.less", "b.less", "c.less")

	walker := fs.NewWalker()
	count := 0
	for range walker.Stylesheets(root, nil) {
		count++
		break
	}

	assert.Equal(t, 1, count)
}

func TestWalker_MissingRoot(t *testing.T) {
	walker := fs.NewWalker()

	got := slices.Collect(walker.WalkFiles(filepath.Join(t.TempDir(), "missing"), nil))

	assert.Empty(t, got)
}
