package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/marcospaterson/structure-me/internal/layout"
	"github.com/marcospaterson/structure-me/internal/output"
	"github.com/marcospaterson/structure-me/internal/templates"
)

const (
	dirPerm  fs.FileMode = 0o755
	filePerm fs.FileMode = 0o644
)

// Options controls how planned files are populated.
type Options struct {
	// Verbose fills templated files with their sample content.
	Verbose bool

	// Templates supplies sample content. Only read when Verbose is set.
	Templates templates.Set
}

// File records a file written by Materialize.
type File struct {
	// Path is relative to the project root, slash separated.
	Path string

	// Size is the number of bytes written.
	Size int

	// Populated is true when the file received sample content.
	Populated bool
}

// Result lists what Materialize created, in creation order.
type Result struct {
	Root  string
	Dirs  []string
	Files []File
}

// Empty reports whether nothing was created.
func (r *Result) Empty() bool {
	return len(r.Dirs) == 0 && len(r.Files) == 0
}

// Materialize creates the layout l under root.
//
// If root already exists nothing is created and the error has
// KindAlreadyExists. Otherwise directories are created in plan order, root
// first, followed by files in plan order. The first failure stops the run;
// the returned Result describes what was left on disk.
func Materialize(root string, l layout.Layout, opts Options) (*Result, error) {
	result := &Result{Root: root}

	if _, err := os.Lstat(root); err == nil {
		return result, &Error{Kind: KindAlreadyExists, Path: root}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return result, &Error{Kind: KindDirectoryCreation, Path: root, Err: err}
	}

	if err := createDirs(root, l.Dirs, result); err != nil {
		return result, err
	}

	if err := createFiles(root, l.Files, opts, result); err != nil {
		return result, err
	}

	output.Debug("materialized project",
		"root", root,
		"dirs", len(result.Dirs),
		"files", len(result.Files),
	)
	return result, nil
}

// createDirs makes root and then every other planned directory beneath it.
func createDirs(root string, dirs []string, result *Result) error {
	if err := os.Mkdir(root, dirPerm); err != nil {
		return &Error{Kind: KindDirectoryCreation, Path: root, Err: err}
	}
	result.Dirs = append(result.Dirs, layout.RootDir)
	output.Debug("created directory", "path", root)

	for _, dir := range dirs {
		if dir == layout.RootDir {
			continue
		}

		target := resolve(root, dir)
		if err := os.Mkdir(target, dirPerm); err != nil {
			return &Error{Kind: KindDirectoryCreation, Path: target, Err: err}
		}
		result.Dirs = append(result.Dirs, dir)
		output.Debug("created directory", "path", target)
	}
	return nil
}

// createFiles writes every planned file beneath root.
func createFiles(root string, files []layout.Entry, opts Options, result *Result) error {
	for _, entry := range files {
		target := resolve(root, entry.Path)

		var content []byte
		populated := opts.Verbose && entry.Templated
		if populated {
			data, err := opts.Templates.Content(entry.Path)
			if err != nil {
				return &Error{Kind: KindTemplateRead, Path: target, Err: err}
			}
			content = data
		}

		n, created, err := writeNew(target, content)
		if created {
			result.Files = append(result.Files, File{Path: entry.Path, Size: n, Populated: populated})
		}
		if err != nil {
			return &Error{Kind: KindFileCreation, Path: target, Err: err}
		}
		output.Debug("created file", "path", target, "bytes", n, "populated", populated)
	}
	return nil
}

// writeNew creates path, failing if it exists, and writes content to it.
// created reports whether the file now exists on disk, even when writing
// it failed afterwards.
func writeNew(path string, content []byte) (n int, created bool, err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
	if err != nil {
		return 0, false, err
	}

	n, err = f.Write(content)
	if err != nil {
		_ = f.Close()
		return n, true, fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return n, true, fmt.Errorf("closing %s: %w", path, err)
	}
	return n, true, nil
}

// resolve joins a slash separated plan path onto root.
func resolve(root, rel string) string {
	if rel == layout.RootDir {
		return root
	}
	return filepath.Join(root, filepath.FromSlash(rel))
}
