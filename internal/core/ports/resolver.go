package ports

import "go.trai.ch/lesstag/internal/core/domain"

// PathResolver maps logical stylesheet paths to source and output locations.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type PathResolver interface {
	// Resolve returns the locations derived from a logical path.
	Resolve(logical string) (domain.StylesheetPaths, error)
}
