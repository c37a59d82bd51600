// Package layout plans the directory and file structure of a new project.
//
// Planning is a pure function of the project name: it touches no filesystem
// and never fails. Names are taken verbatim; a name the filesystem rejects
// surfaces later as a creation error.
package layout

import (
	"path"
	"path/filepath"
)

// RootDir is the plan entry for the project root itself.
const RootDir = "."

// Entry is a planned file, relative to the project root.
type Entry struct {
	// Path is slash separated and relative to the project root.
	Path string

	// Templated marks files that receive sample content in verbose mode.
	Templated bool
}

// Layout is the ordered set of directories and files for a project.
type Layout struct {
	// Dirs lists directories in creation order. Dirs[0] is always RootDir.
	Dirs []string

	// Files lists files in creation order.
	Files []Entry
}

// Project identifies the project being scaffolded.
type Project struct {
	Name string
	Root string
}

// packageDirToken is replaced by the project name in baseDirs.
const packageDirToken = "<name>"

var baseDirs = []string{
	RootDir,
	"examples",
	"src",
	path.Join("src", packageDirToken),
	"tests",
	"data",
}

var baseFiles = []Entry{
	{Path: "README.md", Templated: true},
	{Path: "setup.py", Templated: true},
	{Path: "setup.cfg", Templated: true},
	{Path: "MANIFEST.in", Templated: true},
	{Path: "examples/example.py"},
	{Path: "src/__init__.py"},
	{Path: "__init__.py"},
}

// Plan returns the layout for a project called name.
func Plan(name string) Layout {
	dirs := make([]string, len(baseDirs))
	for i, d := range baseDirs {
		if d == path.Join("src", packageDirToken) {
			d = "src/" + name
		}
		dirs[i] = d
	}

	files := make([]Entry, len(baseFiles))
	copy(files, baseFiles)

	return Layout{Dirs: dirs, Files: files}
}

// TemplatedFiles returns the templated entries in plan order.
func (l Layout) TemplatedFiles() []Entry {
	var out []Entry
	for _, f := range l.Files {
		if f.Templated {
			out = append(out, f)
		}
	}
	return out
}

// NewProject builds the project identity rooted under workDir.
func NewProject(workDir, name string) Project {
	return Project{
		Name: name,
		Root: filepath.Join(workDir, name),
	}
}
