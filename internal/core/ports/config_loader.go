package ports

import "go.trai.ch/lesstag/internal/core/domain"

// ConfigLoader defines the interface for loading settings.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the settings from the given config file path. A missing file
	// yields the default settings.
	Load(path string) (domain.Settings, error)
}
