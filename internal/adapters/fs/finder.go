package fs

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/lesstag/internal/core/domain"
	"go.trai.ch/lesstag/internal/core/ports"
)

var _ ports.StaticFinder = (*Finder)(nil)

// Finder looks static files up in the configured static directories first and
// then in the static directory of every installed app.
type Finder struct {
	locations []string
	appDirs   []string
}

// NewFinder creates a Finder for the given settings.
func NewFinder(settings domain.Settings) *Finder {
	appDirs := make([]string, 0, len(settings.Apps))
	for _, app := range settings.Apps {
		if app.StaticDir != "" {
			appDirs = append(appDirs, app.StaticDir)
		}
	}

	locations := make([]string, 0, len(settings.StaticFilesDirs)+len(appDirs))
	locations = append(locations, settings.StaticFilesDirs...)
	locations = append(locations, appDirs...)

	return &Finder{locations: locations, appDirs: appDirs}
}

// Find returns the first location holding rel.
func (f *Finder) Find(rel string) (string, bool, error) {
	if err := checkRelative(rel); err != nil {
		return "", false, err
	}

	for _, location := range f.locations {
		candidate := filepath.Join(location, filepath.FromSlash(rel))
		if !within(location, candidate) {
			return "", false, domain.Annotate(domain.ErrSuspiciousPath, "path", rel)
		}
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true, nil
		}
	}
	return "", false, nil
}

// AppDirs returns the app static directories that exist on disk.
func (f *Finder) AppDirs() []string {
	dirs := make([]string, 0, len(f.appDirs))
	for _, dir := range f.appDirs {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

func checkRelative(rel string) error {
	if rel == "" || filepath.IsAbs(rel) || strings.HasPrefix(rel, "/") || filepath.VolumeName(rel) != "" {
		return domain.Annotate(domain.ErrSuspiciousPath, "path", rel)
	}
	return nil
}

// within reports whether target lies inside base.
func within(base, target string) bool {
	rel, err := filepath.Rel(base, target)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
