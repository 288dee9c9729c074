// Package config provides the configuration loader for lesstag.
package config

import (
	"errors"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/joho/godotenv"
	"go.trai.ch/lesstag/internal/core/domain"
	"go.trai.ch/lesstag/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// EnvFileName is the dotenv file read from the config file's directory.
const EnvFileName = ".env"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the settings from configPath. A missing file yields the defaults.
// Variables from the process environment take precedence over the .env file,
// and both take precedence over the YAML file. Relative paths are resolved
// against the config file's directory and every path setting is absolute.
func (l *Loader) Load(configPath string) (domain.Settings, error) {
	settings := domain.DefaultSettings()
	baseDir, err := filepath.Abs(filepath.Dir(configPath))
	if err != nil {
		return domain.Settings{}, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", configPath)
	}

	found, err := readAndUnmarshalYAML(configPath, &settings)
	if err != nil {
		return domain.Settings{}, zerr.With(err, "path", configPath)
	}
	if !found {
		l.Logger.Debug("config file not found, using defaults", "path", configPath)
	}

	env, err := l.readEnvFile(filepath.Join(baseDir, EnvFileName))
	if err != nil {
		return domain.Settings{}, err
	}
	if err := applyOverrides(&settings, env); err != nil {
		return domain.Settings{}, err
	}

	resolvePaths(&settings, baseDir)
	settings.ApplyDefaults()

	if err := settings.Validate(); err != nil {
		return domain.Settings{}, zerr.With(err, "path", configPath)
	}
	return settings, nil
}

func (l *Loader) readEnvFile(path string) (map[string]string, error) {
	env, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "path", path)
	}
	l.Logger.Debug("loaded env file", "path", path, "keys", len(env))
	return env, nil
}

// applyOverrides sets every key named by a LESSTAG_ variable, looked up in the
// process environment first and dotenv second.
func applyOverrides(s *domain.Settings, dotenv map[string]string) error {
	for _, name := range slices.Sorted(maps.Keys(overrides)) {
		key := EnvPrefix + name
		value, ok := os.LookupEnv(key)
		if !ok {
			value, ok = dotenv[key]
		}
		if !ok {
			continue
		}
		o := overrides[name]
		if err := o.apply(s, value); err != nil {
			err = zerr.With(domain.Annotate(domain.ErrInvalidConfig, "field", o.field), "env", key)
			return zerr.With(err, "value", value)
		}
	}
	return nil
}

func resolvePaths(s *domain.Settings, baseDir string) {
	s.StaticRoot = resolve(baseDir, s.StaticRoot)
	s.Less.Root = resolve(baseDir, s.Less.Root)
	s.Less.CachePath = resolve(baseDir, s.Less.CachePath)
	for i, dir := range s.StaticFilesDirs {
		s.StaticFilesDirs[i] = resolve(baseDir, dir)
	}
	for i, dir := range s.Less.DevModeWatchDirs {
		s.Less.DevModeWatchDirs[i] = resolve(baseDir, dir)
	}
	for i := range s.Apps {
		s.Apps[i].StaticDir = resolve(baseDir, s.Apps[i].StaticDir)
	}
}

func resolve(baseDir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(baseDir, p)
}

// readAndUnmarshalYAML decodes configPath into target and reports whether the
// file exists.
func readAndUnmarshalYAML[T any](configPath string, target *T) (bool, error) {
	// #nosec G304 -- configPath is provided by the user
	configFile, err := os.ReadFile(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, zerr.Wrap(domain.ErrConfigReadFailed, err.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return true, zerr.Wrap(domain.ErrConfigParseFailed, parseErr.Error())
	}
	return true, nil
}
