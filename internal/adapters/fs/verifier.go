package fs

import (
	"errors"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
)

// Verifier checks that compiled artifacts are present on disk.
type Verifier struct{}

// NewVerifier creates a new Verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// ArtifactExists reports whether name is a regular file in dir. Anything else
// in its place, such as a directory, counts as missing.
func (v *Verifier) ArtifactExists(dir, name string) (bool, error) {
	path := filepath.Join(dir, name)
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to stat artifact"), "path", path)
	}
	return info.Mode().IsRegular(), nil
}
