package ports

import "go.trai.ch/lesstag/internal/core/domain"

// RebuildReporter receives the progress of watch-mode rebuilds.
//
//go:generate go run go.uber.org/mock/mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type RebuildReporter interface {
	Report(event domain.RebuildEvent)
}
