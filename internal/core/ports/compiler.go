package ports

import "context"

// Compiler compiles a LESS file into a CSS artifact.
//
//go:generate go run go.uber.org/mock/mockgen -source=compiler.go -destination=mocks/mock_compiler.go -package=mocks
type Compiler interface {
	// Compile compiles sourcePath and writes the CSS to outputPath. logicalPath is
	// the caller-supplied path, used to rewrite relative url() references.
	Compile(ctx context.Context, sourcePath, outputPath, logicalPath string) error
}

// InlineCompiler compiles LESS source text.
type InlineCompiler interface {
	// Compile returns the compiled CSS, or the compiler's error text when it
	// produced no CSS.
	Compile(ctx context.Context, source string) (string, error)
}
