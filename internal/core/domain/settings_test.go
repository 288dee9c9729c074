package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/lesstag/internal/core/domain"
)

func TestDefaultSettings(t *testing.T) {
	s := domain.DefaultSettings()
	s.ApplyDefaults()

	assert.Equal(t, "lessc", s.Less.Executable)
	assert.Equal(t, "LESS_CACHE", s.Less.OutputDir)
	assert.Equal(t, s.StaticRoot, s.Less.Root)
	assert.Equal(t, []string{s.StaticRoot}, s.Less.DevModeWatchDirs)
	assert.Equal(t, 30*24*time.Hour, s.Less.CacheTimeout)
	assert.NoError(t, s.Validate())
}

func TestSettings_ApplyDefaultsKeepsExplicitValues(t *testing.T) {
	s := domain.DefaultSettings()
	s.Less.Root = "build"
	s.Less.DevModeWatchDirs = []string{"assets"}
	s.ApplyDefaults()

	assert.Equal(t, "build", s.Less.Root)
	assert.Equal(t, []string{"assets"}, s.Less.DevModeWatchDirs)
}

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.Settings)
	}{
		{name: "empty static url", mutate: func(s *domain.Settings) { s.StaticURL = "" }},
		{name: "empty executable", mutate: func(s *domain.Settings) { s.Less.Executable = "" }},
		{name: "unknown cache driver", mutate: func(s *domain.Settings) { s.Less.CacheDriver = "redis" }},
		{name: "negative cache timeout", mutate: func(s *domain.Settings) { s.Less.CacheTimeout = -time.Second }},
		{name: "negative compile timeout", mutate: func(s *domain.Settings) { s.Less.CompileTimeout = -time.Second }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := domain.DefaultSettings()
			tt.mutate(&s)
			err := s.Validate()
			assert.True(t, errors.Is(err, domain.ErrInvalidConfig), "got %v", err)
		})
	}
}
