// Package testutil provides filesystem helpers for structure-me tests.
package testutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

// Walk returns every directory and file below base, as slash separated paths
// relative to base. Directories are sorted; files map to their size.
func Walk(t *testing.T, base string) ([]string, map[string]int64) {
	t.Helper()

	var dirs []string
	files := map[string]int64{}
	err := filepath.WalkDir(base, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(base, p)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)
		if d.IsDir() {
			dirs = append(dirs, rel)
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		files[rel] = info.Size()
		return nil
	})
	if err != nil {
		t.Fatalf("failed to walk %s: %v", base, err)
	}
	sort.Strings(dirs)
	return dirs, files
}

// Paths returns the sorted keys of a file map returned by Walk.
func Paths(files map[string]int64) []string {
	out := make([]string, 0, len(files))
	for k := range files {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// WriteFile creates a file with the given content in the specified directory.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// SampleDir writes a template directory holding one sample_<file> per entry of
// samples and returns its path.
func SampleDir(t *testing.T, samples map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for file, content := range samples {
		WriteFile(t, dir, "sample_"+filepath.Base(file), content)
	}
	return dir
}
