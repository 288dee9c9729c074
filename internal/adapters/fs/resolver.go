package fs

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.trai.ch/lesstag/internal/core/domain"
	"go.trai.ch/lesstag/internal/core/ports"
)

var _ ports.PathResolver = (*PathResolver)(nil)

// PathResolver maps logical stylesheet paths to their source and output locations.
type PathResolver struct {
	staticRoot string
	lessRoot   string
	outputDir  string
	debug      bool
	finder     ports.StaticFinder
}

// NewPathResolver creates a PathResolver. The finder is consulted in debug mode
// when a file is missing under the static root.
func NewPathResolver(settings domain.Settings, finder ports.StaticFinder) *PathResolver {
	return &PathResolver{
		staticRoot: settings.StaticRoot,
		lessRoot:   settings.Less.Root,
		outputDir:  settings.Less.OutputDir,
		debug:      settings.Debug,
		finder:     finder,
	}
}

// Resolve returns the locations derived from a logical path.
func (r *PathResolver) Resolve(logical string) (domain.StylesheetPaths, error) {
	fullPath := logical
	if !filepath.IsAbs(logical) {
		fullPath = filepath.Join(r.staticRoot, filepath.FromSlash(logical))
	}

	if r.debug {
		if _, err := os.Stat(fullPath); err != nil {
			found, ok, err := r.finder.Find(logical)
			if err != nil {
				return domain.StylesheetPaths{}, err
			}
			if !ok {
				return domain.StylesheetPaths{}, domain.Annotate(domain.ErrStaticFileNotFound, "path", logical)
			}
			fullPath = found
		}
	}

	slashed := filepath.ToSlash(logical)
	fileName := path.Base(slashed)
	logicalDir := path.Dir(slashed)
	if logicalDir == "." {
		logicalDir = ""
	}

	return domain.StylesheetPaths{
		Logical:      logical,
		FullPath:     fullPath,
		FileName:     fileName,
		BaseName:     strings.TrimSuffix(fileName, path.Ext(fileName)),
		OutputDir:    filepath.Join(r.lessRoot, r.outputDir, filepath.FromSlash(logicalDir)),
		OutputSubdir: r.outputDir,
		LogicalDir:   logicalDir,
	}, nil
}
