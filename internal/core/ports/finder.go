// Package ports defines the core interfaces for the application.
package ports

// StaticFinder locates static files across the configured asset locations.
//
//go:generate go run go.uber.org/mock/mockgen -source=finder.go -destination=mocks/mock_finder.go -package=mocks
type StaticFinder interface {
	// Find returns the absolute location of the first file matching the relative path.
	// It reports false when no location holds the file, and domain.ErrSuspiciousPath
	// when the path escapes a location.
	Find(rel string) (string, bool, error)

	// AppDirs returns the static directories of installed applications that exist on disk.
	AppDirs() []string
}
