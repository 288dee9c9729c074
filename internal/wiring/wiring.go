// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/lesstag/internal/adapters/config"
	_ "go.trai.ch/lesstag/internal/adapters/fs"
	_ "go.trai.ch/lesstag/internal/adapters/logger"
	_ "go.trai.ch/lesstag/internal/adapters/shell"
	_ "go.trai.ch/lesstag/internal/adapters/telemetry"
	_ "go.trai.ch/lesstag/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/lesstag/internal/app"
)
