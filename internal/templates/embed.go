// Package templates provides the sample content written into templated
// project files when scaffolding in verbose mode.
//
// The default samples are compiled into the binary. A directory on disk can
// replace them; files are always copied verbatim, with no substitution.
package templates

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
)

//go:embed data/sample_*
var sampleFS embed.FS

const (
	// embeddedRoot is the directory holding the samples inside sampleFS.
	embeddedRoot = "data"

	// samplePrefix is prepended to a templated file name to find its sample.
	samplePrefix = "sample_"

	// OriginEmbedded is reported by Set.Origin for the built-in samples.
	OriginEmbedded = "embedded"
)

// Set is a read-only collection of sample files keyed by templated file name.
type Set struct {
	fsys   fs.FS
	root   string
	origin string
}

// Default returns the samples compiled into the binary.
func Default() Set {
	return Set{fsys: sampleFS, root: embeddedRoot, origin: OriginEmbedded}
}

// FromDir returns a set that reads samples from dir.
func FromDir(dir string) Set {
	return Set{fsys: os.DirFS(dir), root: ".", origin: dir}
}

// FromFS returns a set that reads samples from the root of fsys.
func FromFS(fsys fs.FS, origin string) Set {
	return Set{fsys: fsys, root: ".", origin: origin}
}

// Origin describes where the samples come from.
func (s Set) Origin() string {
	return s.origin
}

// SampleName returns the sample file name for a templated file,
// e.g. "README.md" -> "sample_README.md".
func SampleName(file string) string {
	return samplePrefix + path.Base(file)
}

// Content returns the sample for file exactly as stored.
func (s Set) Content(file string) ([]byte, error) {
	if s.fsys == nil {
		return nil, fmt.Errorf("reading sample for %s: no template set configured", file)
	}

	p := path.Join(s.root, SampleName(file))
	data, err := fs.ReadFile(s.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("reading sample %s: %w", p, err)
	}
	return data, nil
}

// Check reports every templated file whose sample cannot be read.
func (s Set) Check() error {
	var errs []error
	for _, file := range TemplatedFiles() {
		if _, err := s.Content(file); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
