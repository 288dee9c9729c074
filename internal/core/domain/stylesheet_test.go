package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/lesstag/internal/core/domain"
)

func TestArtifactName(t *testing.T) {
	assert.Equal(t, "main-0123456789ab.css", domain.ArtifactName("main", "0123456789ab"))
}

func TestIsArtifactOf(t *testing.T) {
	tests := []struct {
		name string
		file string
		base string
		want bool
	}{
		{name: "artifact", file: "main-0123456789ab.css", base: "main", want: true},
		{name: "other base sharing prefix", file: "main-theme-0123456789ab.css", base: "main", want: false},
		{name: "devmode output", file: "main.css", base: "main", want: false},
		{name: "missing hash", file: "main-.css", base: "main", want: false},
		{name: "source file", file: "main.less", base: "main", want: false},
		{name: "different base", file: "print-0123456789ab.css", base: "main", want: false},
		{name: "uppercase hash", file: "main-ABCDEF.css", base: "main", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.IsArtifactOf(tt.file, tt.base))
		})
	}
}

func TestArtifactURL(t *testing.T) {
	assert.Equal(t, "LESS_CACHE/css/main-abc.css", domain.ArtifactURL("LESS_CACHE", "css", "main-abc.css"))
	assert.Equal(t, "LESS_CACHE/main-abc.css", domain.ArtifactURL("LESS_CACHE", "", "main-abc.css"))
}

func TestDevModeURL(t *testing.T) {
	assert.Equal(t, "css/main.css", domain.DevModeURL("css", "main"))
}

func TestCompileResult(t *testing.T) {
	ok := domain.Success("LESS_CACHE/main-abc.css")
	assert.True(t, ok.OK())
	assert.NoError(t, ok.Reason())
	assert.Equal(t, "LESS_CACHE/main-abc.css", ok.Value())

	reason := errors.New("boom")
	failed := domain.Failure("css/main.less", reason)
	assert.False(t, failed.OK())
	assert.Equal(t, reason, failed.Reason())
	assert.Equal(t, "css/main.less", failed.Value())
}
