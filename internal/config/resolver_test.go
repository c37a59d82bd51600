package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_Defaults(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	r, err := Resolve(ResolveOptions{NameFlag: "demo"})
	require.NoError(t, err)

	assert.Equal(t, "demo", r.Name)
	assert.False(t, r.Verbose)
	assert.Equal(t, wd, r.WorkDir.Value)
	assert.Equal(t, SourceDefault, r.WorkDir.Source)
	assert.Empty(t, r.TemplateDir.Value)
	assert.Equal(t, SourceDefault, r.TemplateDir.Source)
}

func TestResolve_ExplicitWorkDir(t *testing.T) {
	dir := t.TempDir()

	r, err := Resolve(ResolveOptions{NameFlag: "demo", VerboseFlag: true, WorkDir: dir})
	require.NoError(t, err)

	assert.True(t, r.Verbose)
	assert.Equal(t, dir, r.WorkDir.Value)
	assert.Equal(t, SourceFlag, r.WorkDir.Source)
	assert.True(t, filepath.IsAbs(r.WorkDir.Value))
}

func TestResolve_FromConfig(t *testing.T) {
	cfg := &Config{
		TemplateDir: "/opt/samples",
		Log:         LogConfig{Debug: true},
	}

	r, err := Resolve(ResolveOptions{NameFlag: "demo", WorkDir: t.TempDir(), Config: cfg})
	require.NoError(t, err)

	assert.Equal(t, "/opt/samples", r.TemplateDir.Value)
	assert.Equal(t, SourceEnv, r.TemplateDir.Source)
	assert.True(t, r.Log.Debug)
}
