// Package e2e provides end-to-end tests for the structure-me binary.
package e2e

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcospaterson/structure-me/internal/testutil"
)

var binary string

func TestMain(m *testing.M) {
	// Build the binary once for all tests
	tmpDir, err := os.MkdirTemp("", "structure-me-e2e-*")
	if err != nil {
		panic("failed to create temp dir: " + err.Error())
	}

	binary = filepath.Join(tmpDir, "structure-me")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	cmd := exec.CommandContext(ctx, "go", "build", "-o", binary, "../../cmd/structure-me")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		cancel()
		os.RemoveAll(tmpDir)
		panic("failed to build structure-me binary: " + err.Error())
	}
	cancel() // Call cancel explicitly before os.Exit

	code := m.Run()
	os.RemoveAll(tmpDir)
	os.Exit(code)
}

// run executes the binary in workDir and returns its output and exit code.
func run(t *testing.T, workDir string, args ...string) (stdout, stderr string, code int) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Dir = workDir
	cmd.Env = append(os.Environ(),
		"STRUCTURE_ME_TEMPLATE_DIR=",
		"STRUCTURE_ME_DEBUG=",
		"STRUCTURE_ME_LOG_TIMESTAMPS=",
	)

	stdoutBytes, err := cmd.Output()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return string(stdoutBytes), string(exitErr.Stderr), exitErr.ExitCode()
	}
	require.NoError(t, err)
	return string(stdoutBytes), "", 0
}

func TestE2E_Scaffold(t *testing.T) {
	workDir := t.TempDir()

	stdout, stderr, code := run(t, workDir, "--name", "demo")
	require.Zero(t, code, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Created project")

	dirs, files := testutil.Walk(t, filepath.Join(workDir, "demo"))
	assert.Len(t, dirs, 5)
	assert.Len(t, files, 7)
	for f, size := range files {
		assert.Zero(t, size, f)
	}
}

func TestE2E_ScaffoldVerbose(t *testing.T) {
	workDir := t.TempDir()

	_, stderr, code := run(t, workDir, "-n", "demo", "-v")
	require.Zero(t, code, "stderr: %s", stderr)

	_, files := testutil.Walk(t, filepath.Join(workDir, "demo"))
	for _, f := range []string{"README.md", "setup.py", "setup.cfg", "MANIFEST.in"} {
		assert.Positive(t, files[f], "%s should be populated", f)
	}
	for _, f := range []string{"examples/example.py", "src/__init__.py", "__init__.py"} {
		assert.Zero(t, files[f], "%s should be empty", f)
	}
	assert.DirExists(t, filepath.Join(workDir, "demo", "tests"))
}

func TestE2E_ExitCodes(t *testing.T) {
	workDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(workDir, "taken"), 0o755))

	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantErr  string
	}{
		{
			name:     "missing name",
			args:     nil,
			wantCode: 2,
			wantErr:  "project name is required",
		},
		{
			name:     "target exists",
			args:     []string{"--name", "taken"},
			wantCode: 2,
			wantErr:  "already exists. Please specify a target that does not exist.",
		},
		{
			name:     "unknown flag",
			args:     []string{"--name", "demo", "--force"},
			wantCode: 1,
			wantErr:  "unknown flag",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, stderr, code := run(t, workDir, tt.args...)
			assert.Equal(t, tt.wantCode, code)
			assert.Contains(t, stderr, tt.wantErr)
		})
	}

	entries, err := os.ReadDir(filepath.Join(workDir, "taken"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestE2E_Version(t *testing.T) {
	stdout, stderr, code := run(t, t.TempDir(), "version", "-o", "json")
	require.Zero(t, code, "stderr: %s", stderr)
	assert.Contains(t, stdout, `"version"`)
}
