// Package fs provides file system adapters for locating, walking and hashing stylesheets.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
	"strings"
)

// StylesheetExt is the extension of LESS sources.
const StylesheetExt = ".less"

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields all files under root, skipping VCS directories and entries
// matching one of the ignore patterns. Yielded paths start with root.
func (w *Walker) WalkFiles(root string, ignores []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if skip, action := w.shouldSkip(d, ignores); skip {
				return action
			}

			if d.IsDir() {
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}

			return nil
		})
	}
}

// Stylesheets yields the LESS sources under root.
func (w *Walker) Stylesheets(root string, ignores []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for path := range w.WalkFiles(root, ignores) {
			if !strings.EqualFold(filepath.Ext(path), StylesheetExt) {
				continue
			}
			if !yield(path) {
				return
			}
		}
	}
}

// shouldSkip reports whether d is ignored and the WalkDir result to return for it.
func (w *Walker) shouldSkip(d fs.DirEntry, ignores []string) (bool, error) {
	name := d.Name()

	if d.IsDir() && (name == ".git" || name == ".jj" || name == "node_modules") {
		return true, filepath.SkipDir
	}

	for _, ignore := range ignores {
		if matched, _ := filepath.Match(ignore, name); matched {
			if d.IsDir() {
				return true, filepath.SkipDir
			}
			return true, nil
		}
	}

	return false, nil
}
