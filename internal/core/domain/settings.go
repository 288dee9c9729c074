// Package domain contains the core value types of lesstag.
package domain

import (
	"time"

	"go.trai.ch/zerr"
)

const (
	// DefaultConfigFileName is the config file looked up in the working directory.
	DefaultConfigFileName = "lesstag.yaml"

	// CacheDriverMemory keeps inline compilation results in process memory.
	CacheDriverMemory = "memory"
	// CacheDriverFile persists inline compilation results to a JSON file.
	CacheDriverFile = "file"
)

// App is an installed application contributing a static directory.
type App struct {
	Name      string `yaml:"name"`
	StaticDir string `yaml:"static_dir"`
}

// LessSettings groups the options governing compilation.
type LessSettings struct {
	Executable        string        `yaml:"executable"`
	UseCache          bool          `yaml:"use_cache"`
	CacheTimeout      time.Duration `yaml:"cache_timeout"`
	CacheDriver       string        `yaml:"cache_driver"`
	CachePath         string        `yaml:"cache_path"`
	Root              string        `yaml:"root"`
	OutputDir         string        `yaml:"output_dir"`
	DevMode           bool          `yaml:"devmode"`
	DevModeWatchDirs  []string      `yaml:"devmode_watch_dirs"`
	IncludeAcrossApps bool          `yaml:"include_across_apps"`
	CompileTimeout    time.Duration `yaml:"compile_timeout"`
	// Env is added to the environment of every compiler process.
	Env map[string]string `yaml:"env"`
}

// Settings is the complete lesstag configuration.
type Settings struct {
	Debug           bool         `yaml:"debug"`
	StaticRoot      string       `yaml:"static_root"`
	StaticURL       string       `yaml:"static_url"`
	StaticFilesDirs []string     `yaml:"staticfiles_dirs"`
	Apps            []App        `yaml:"apps"`
	Less            LessSettings `yaml:"less"`
}

// DefaultSettings returns the settings used when no config file is present.
func DefaultSettings() Settings {
	return Settings{
		StaticRoot: "static",
		StaticURL:  "/static/",
		Less: LessSettings{
			Executable:     "lessc",
			CacheTimeout:   30 * 24 * time.Hour,
			CacheDriver:    CacheDriverMemory,
			CachePath:      ".lesstag/cache.json",
			OutputDir:      "LESS_CACHE",
			CompileTimeout: 30 * time.Second,
		},
	}
}

// ApplyDefaults fills the settings derived from other settings.
func (s *Settings) ApplyDefaults() {
	if s.Less.Root == "" {
		s.Less.Root = s.StaticRoot
	}
	if len(s.Less.DevModeWatchDirs) == 0 {
		s.Less.DevModeWatchDirs = []string{s.StaticRoot}
	}
}

// Validate checks the settings for values the rest of the system cannot work with.
func (s *Settings) Validate() error {
	if s.StaticURL == "" {
		return Annotate(ErrInvalidConfig, "field", "static_url")
	}
	if s.Less.Executable == "" {
		return Annotate(ErrInvalidConfig, "field", "less.executable")
	}
	switch s.Less.CacheDriver {
	case CacheDriverMemory, CacheDriverFile:
	default:
		return zerr.With(Annotate(ErrInvalidConfig, "field", "less.cache_driver"), "value", s.Less.CacheDriver)
	}
	if s.Less.CacheTimeout < 0 {
		return Annotate(ErrInvalidConfig, "field", "less.cache_timeout")
	}
	if s.Less.CompileTimeout < 0 {
		return Annotate(ErrInvalidConfig, "field", "less.compile_timeout")
	}
	return nil
}
