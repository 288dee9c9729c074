package ports

import "context"

// FreshnessChecker decides whether a stylesheet or anything it imports changed.
//
//go:generate go run go.uber.org/mock/mockgen -source=tracker.go -destination=mocks/mock_tracker.go -package=mocks
type FreshnessChecker interface {
	// CheckFreshness reports whether path or any of its transitive imports changed
	// since the previous check. The first check of a path always reports a change.
	CheckFreshness(ctx context.Context, path string) (bool, error)

	// Invalidate forgets the observed state of path so the next check reports it changed.
	Invalidate(path string)

	// Dependents returns every tracked file importing path directly or transitively.
	Dependents(path string) []string
}
