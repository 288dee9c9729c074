package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lesstag/internal/adapters/fs"
)

func TestVerifier_ArtifactExists(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "site-0123456789ab.css"), []byte("body{}"), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "print-0123456789ab.css"), 0o750))

	tests := []struct {
		name string
		dir  string
		file string
		want bool
	}{
		{"regular file", dir, "site-0123456789ab.css", true},
		{"missing file", dir, "missing-0123456789ab.css", false},
		{"directory in place", dir, "print-0123456789ab.css", false},
		{"missing dir", filepath.Join(dir, "no-such-dir"), "site-0123456789ab.css", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exists, err := fs.NewVerifier().ArtifactExists(tt.dir, tt.file)
			require.NoError(t, err)
			assert.Equal(t, tt.want, exists)
		})
	}
}

func TestVerifier_ArtifactExists_StatError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	// A file used as a directory fails with ENOTDIR, not ENOENT.
	_, err := fs.NewVerifier().ArtifactExists(blocker, "site.css")
	if err == nil {
		t.Skip("platform reports a missing file for a file path component")
	}
	assert.Contains(t, err.Error(), "failed to stat artifact")
}
