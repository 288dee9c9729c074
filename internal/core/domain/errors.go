package domain

import "go.trai.ch/zerr"

var (
	// ErrStaticFileNotFound is returned when a stylesheet cannot be located under the
	// static root nor through the static file finder.
	ErrStaticFileNotFound = zerr.New("can't find static file")

	// ErrSuspiciousPath is returned when a logical path tries to escape its static location.
	ErrSuspiciousPath = zerr.New("path escapes static location")

	// ErrFileNotAccessible is returned by the dependency tracker when a stylesheet
	// cannot be resolved or read.
	ErrFileNotAccessible = zerr.New("file not found or not accessible")

	// ErrImportCycle is returned when stylesheets import each other in a cycle.
	ErrImportCycle = zerr.New("import cycle detected")

	// ErrCompilerOutput is returned when the LESS compiler writes to its error stream.
	ErrCompilerOutput = zerr.New("less compiler reported errors")

	// ErrCompilerStartFailed is returned when the LESS compiler process cannot be started.
	ErrCompilerStartFailed = zerr.New("failed to start less compiler")

	// ErrCompilerTimeout is returned when the LESS compiler exceeds its time bound.
	ErrCompilerTimeout = zerr.New("less compiler timed out")

	// ErrEmptyCommand is returned when a process is requested without arguments.
	ErrEmptyCommand = zerr.New("empty command")

	// ErrOutputWriteFailed is returned when a compiled artifact cannot be written.
	ErrOutputWriteFailed = zerr.New("failed to write compiled stylesheet")

	// ErrStaleCleanupFailed is returned when a previously compiled artifact cannot be removed.
	ErrStaleCleanupFailed = zerr.New("failed to remove stale stylesheet")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when the settings fail validation.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrCacheReadFailed is returned when the cache backing file cannot be read.
	ErrCacheReadFailed = zerr.New("failed to read cache")

	// ErrCacheWriteFailed is returned when the cache backing file cannot be written.
	ErrCacheWriteFailed = zerr.New("failed to write cache")

	// ErrTemplateRender is returned when a template using the less functions fails to render.
	ErrTemplateRender = zerr.New("failed to render template")

	// ErrCompileFailed is returned when at least one stylesheet of a batch did not compile.
	ErrCompileFailed = zerr.New("one or more stylesheets failed to compile")

	// ErrNotConfigured is returned when the application is used before Configure.
	ErrNotConfigured = zerr.New("application is not configured")
)

// Annotate attaches a key-value pair to a sentinel error. The result still matches
// the sentinel with errors.Is.
func Annotate(sentinel error, key string, value any) error {
	return zerr.With(zerr.Wrap(sentinel, ""), key, value)
}
