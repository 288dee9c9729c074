package app

import "go.trai.ch/lesstag/internal/adapters/logger"

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger *logger.Logger
}

// NewComponents creates a new Components struct from dependencies.
func NewComponents(app *App, log *logger.Logger) *Components {
	return &Components{
		App:    app,
		Logger: log,
	}
}
