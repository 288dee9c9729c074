package config

import (
	"strconv"
	"strings"
	"time"

	"go.trai.ch/lesstag/internal/core/domain"
)

// EnvPrefix prefixes every environment variable overriding a config key.
const EnvPrefix = "LESSTAG_"

type override struct {
	field string
	apply func(s *domain.Settings, value string) error
}

// overrides maps environment variable names (without EnvPrefix) to the key
// they set.
var overrides = map[string]override{
	"DEBUG":       {"debug", setBool(func(s *domain.Settings) *bool { return &s.Debug })},
	"STATIC_ROOT": {"static_root", setString(func(s *domain.Settings) *string { return &s.StaticRoot })},
	"STATIC_URL":  {"static_url", setString(func(s *domain.Settings) *string { return &s.StaticURL })},
	"STATICFILES_DIRS": {"staticfiles_dirs", func(s *domain.Settings, v string) error {
		s.StaticFilesDirs = splitList(v)
		return nil
	}},
	"LESS_EXECUTABLE":    {"less.executable", setString(func(s *domain.Settings) *string { return &s.Less.Executable })},
	"LESS_USE_CACHE":     {"less.use_cache", setBool(func(s *domain.Settings) *bool { return &s.Less.UseCache })},
	"LESS_CACHE_TIMEOUT": {"less.cache_timeout", setDuration(func(s *domain.Settings) *time.Duration { return &s.Less.CacheTimeout })},
	"LESS_CACHE_DRIVER":  {"less.cache_driver", setString(func(s *domain.Settings) *string { return &s.Less.CacheDriver })},
	"LESS_CACHE_PATH":    {"less.cache_path", setString(func(s *domain.Settings) *string { return &s.Less.CachePath })},
	"LESS_ROOT":          {"less.root", setString(func(s *domain.Settings) *string { return &s.Less.Root })},
	"LESS_OUTPUT_DIR":    {"less.output_dir", setString(func(s *domain.Settings) *string { return &s.Less.OutputDir })},
	"LESS_DEVMODE":       {"less.devmode", setBool(func(s *domain.Settings) *bool { return &s.Less.DevMode })},
	"LESS_DEVMODE_WATCH_DIRS": {"less.devmode_watch_dirs", func(s *domain.Settings, v string) error {
		s.Less.DevModeWatchDirs = splitList(v)
		return nil
	}},
	"LESS_INCLUDE_ACROSS_APPS": {"less.include_across_apps", setBool(func(s *domain.Settings) *bool { return &s.Less.IncludeAcrossApps })},
	"LESS_COMPILE_TIMEOUT":     {"less.compile_timeout", setDuration(func(s *domain.Settings) *time.Duration { return &s.Less.CompileTimeout })},
}

func setString(field func(*domain.Settings) *string) func(*domain.Settings, string) error {
	return func(s *domain.Settings, v string) error {
		*field(s) = v
		return nil
	}
}

func setBool(field func(*domain.Settings) *bool) func(*domain.Settings, string) error {
	return func(s *domain.Settings, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		*field(s) = b
		return nil
	}
}

func setDuration(field func(*domain.Settings) *time.Duration) func(*domain.Settings, string) error {
	return func(s *domain.Settings, v string) error {
		d, err := time.ParseDuration(v)
		if err != nil {
			return err
		}
		*field(s) = d
		return nil
	}
}

// splitList splits a comma separated list, dropping empty elements.
func splitList(v string) []string {
	var out []string
	for item := range strings.SplitSeq(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
