package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/lesstag/internal/adapters/logger"
	"go.trai.ch/lesstag/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantMessages []string
		wantMetadata []map[string]any
	}{
		{
			name:         "standard error",
			err:          errors.New("simple error"),
			wantMessages: []string{"simple error"},
			wantMetadata: []map[string]any{nil},
		},
		{
			name:         "wrapped chain",
			err:          zerr.Wrap(zerr.Wrap(errors.New("root cause"), "middle"), "outer"),
			wantMessages: []string{"outer", "middle", "root cause"},
			wantMetadata: []map[string]any{{}, {}, nil},
		},
		{
			name:         "annotated sentinel",
			err:          domain.Annotate(domain.ErrStaticFileNotFound, "path", "css/a.less"),
			wantMessages: []string{"can't find static file"},
			wantMetadata: []map[string]any{{"path": "css/a.less"}},
		},
		{
			name: "wrapped annotated sentinel",
			err: zerr.With(zerr.Wrap(
				domain.Annotate(domain.ErrCompilerTimeout, "timeout", "30s"),
				"compile failed",
			), "source", "site.less"),
			wantMessages: []string{"compile failed", "less compiler timed out"},
			wantMetadata: []map[string]any{{"source": "site.less"}, {"timeout": "30s"}},
		},
		{
			name: "nil",
			err:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := logger.CollectErrorEntries(tt.err)
			if tt.err == nil {
				assert.Empty(t, entries)
				return
			}

			assert.Len(t, entries, len(tt.wantMessages))
			for i, want := range tt.wantMessages {
				assert.Equal(t, want, entries[i].Message)
				assert.Equal(t, tt.wantMetadata[i], entries[i].Metadata)
			}
		})
	}
}

func TestFormatErrorEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []logger.ErrorEntry
		want    string
	}{
		{
			name:    "single entry",
			entries: []logger.ErrorEntry{{Message: "single error"}},
			want:    "Error: single error",
		},
		{
			name:    "causes",
			entries: []logger.ErrorEntry{{Message: "first"}, {Message: "second"}, {Message: "third"}},
			want:    "Error: first\n\n  Caused by:\n    → second\n    → third",
		},
		{
			name: "metadata sorted",
			entries: []logger.ErrorEntry{{
				Message:  "error",
				Metadata: map[string]any{"zebra": "z", "alpha": "a"},
			}},
			want: "Error: error\n       alpha: a\n       zebra: z",
		},
		{
			name:    "multiline cause",
			entries: []logger.ErrorEntry{{Message: "main"}, {Message: "line1\nline2", Metadata: map[string]any{"k": 1}}},
			want:    "Error: main\n\n  Caused by:\n    → line1\n      line2\n      k: 1",
		},
		{
			name:    "empty",
			entries: nil,
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatErrorEntries(tt.entries))
		})
	}
}
