package ports

import (
	"context"

	"go.trai.ch/lesstag/internal/core/domain"
)

// ProcessRunner runs external processes and captures their output.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type ProcessRunner interface {
	// Run executes the command and blocks until it exits.
	//
	// A non-zero exit status is reported through the result, not as an error.
	// Errors are returned when the process cannot be started or exceeds its timeout.
	Run(ctx context.Context, cmd domain.Command) (domain.CommandResult, error)
}
