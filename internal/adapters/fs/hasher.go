package fs

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/lesstag/internal/core/ports"
	"go.trai.ch/zerr"
)

// mtimeHashLen is the number of hex characters kept from a modification time hash.
const mtimeHashLen = 12

var _ ports.Hasher = (*Hasher)(nil)

// Hasher provides xxhash based hashing of files and strings.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// MtimeHash hashes the modification time of the file at path. Equal modification
// times always give equal hashes.
func (h *Hasher) MtimeHash(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to stat file"), "path", path)
	}

	sum := xxhash.Sum64String(strconv.FormatInt(info.ModTime().UnixNano(), 10))
	return fmt.Sprintf("%016x", sum)[:mtimeHashLen], nil
}

// ContentHash hashes a string.
func (h *Hasher) ContentHash(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}

// ComputeFileHash computes the xxhash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return hasher.Sum64(), nil
}
