package domain

import (
	"path"
	"strings"
)

// StylesheetPaths holds every location derived from a logical stylesheet path.
type StylesheetPaths struct {
	// Logical is the path as given by the caller, relative to the static root.
	Logical string
	// FullPath is the absolute (or static-root joined) source file location.
	FullPath string
	// FileName is the last element of the logical path.
	FileName string
	// BaseName is FileName without its extension.
	BaseName string
	// OutputDir is the directory compiled artifacts are written to.
	OutputDir string
	// OutputSubdir is the configured output subdirectory.
	OutputSubdir string
	// LogicalDir is the directory component of the logical path.
	LogicalDir string
}

// ArtifactName returns the compiled file name for a stylesheet base name and hash.
func ArtifactName(base, hash string) string {
	return base + "-" + hash + ".css"
}

// IsArtifactOf reports whether name is a compiled artifact of the stylesheet with the
// given base name, i.e. "<base>-<hex hash>.css".
func IsArtifactOf(name, base string) bool {
	rest, ok := strings.CutPrefix(name, base+"-")
	if !ok {
		return false
	}
	hash, ok := strings.CutSuffix(rest, ".css")
	if !ok || hash == "" {
		return false
	}
	for _, r := range hash {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return false
		}
	}
	return true
}

// ArtifactURL returns the artifact location relative to the static URL.
func ArtifactURL(outputSubdir, logicalDir, name string) string {
	return path.Join(outputSubdir, logicalDir, name)
}

// DevModeURL returns the location an external compile-on-save process writes to.
func DevModeURL(logicalDir, base string) string {
	return path.Join(logicalDir, base+".css")
}

// CompileResult is the outcome of a file compilation. A failed result carries the
// logical path so callers can fall back to it.
type CompileResult struct {
	url    string
	reason error
}

// Success returns a result pointing at a compiled artifact.
func Success(url string) CompileResult {
	return CompileResult{url: url}
}

// Failure returns a result for a compilation that did not produce an artifact.
func Failure(logical string, reason error) CompileResult {
	return CompileResult{url: logical, reason: reason}
}

// OK reports whether the compilation succeeded.
func (r CompileResult) OK() bool {
	return r.reason == nil
}

// Reason returns the failure cause, or nil on success.
func (r CompileResult) Reason() error {
	return r.reason
}

// Value returns the artifact URL on success and the logical path on failure.
func (r CompileResult) Value() string {
	return r.url
}
