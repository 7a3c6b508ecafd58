package meow

import (
	"os"
	"path/filepath"

	"github.com/juju/errors"
)

// SourceLoader is the byte-reader interface the pipeline loads scripts
// through: it hands back the full source for a path. Implementations
// outside the filesystem (embedded scripts, test fixtures) plug in by
// swapping DefaultLoader.
type SourceLoader interface {
	Load(path string) ([]byte, error)
}

// LocalFilesystemLoader reads scripts from the local filesystem,
// resolving relative paths against an optional base directory.
type LocalFilesystemLoader struct {
	baseDir string
}

// NewLocalFileSystemLoader creates a loader rooted at baseDir. An empty
// baseDir resolves paths against the working directory.
func NewLocalFileSystemLoader(baseDir string) *LocalFilesystemLoader {
	return &LocalFilesystemLoader{baseDir: baseDir}
}

// Load reads the script at the given path. The returned error is
// annotated with the resolved path; the caller folds it into an E900
// diagnostic.
func (l *LocalFilesystemLoader) Load(path string) ([]byte, error) {
	resolved := path
	if l.baseDir != "" && !filepath.IsAbs(path) {
		resolved = filepath.Join(l.baseDir, path)
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		return nil, errors.Annotatef(err, "lecture du script %q", resolved)
	}
	return data, nil
}

// DefaultLoader is the loader FromFile goes through.
var DefaultLoader SourceLoader = NewLocalFileSystemLoader("")
