package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoader(t *testing.T) {
	loader := NewLoader()
	assert.NotNil(t, loader)
	assert.NotNil(t, loader.v)
}

func TestLoaderLoad(t *testing.T) {
	t.Run("defaults when environment is empty", func(t *testing.T) {
		t.Setenv(EnvTemplateDir, "")
		t.Setenv(EnvDebug, "")
		t.Setenv(EnvLogTimestamps, "")

		cfg, err := NewLoader().Load()
		require.NoError(t, err)
		assert.Empty(t, cfg.TemplateDir)
		assert.False(t, cfg.Log.Debug)
		assert.Nil(t, cfg.Log.Timestamps)
	})

	t.Run("loads from environment variables", func(t *testing.T) {
		t.Setenv(EnvTemplateDir, "/opt/samples")
		t.Setenv(EnvDebug, "true")
		t.Setenv(EnvLogTimestamps, "false")

		cfg, err := NewLoader().Load()
		require.NoError(t, err)
		assert.Equal(t, "/opt/samples", cfg.TemplateDir)
		assert.True(t, cfg.Log.Debug)
		require.NotNil(t, cfg.Log.Timestamps)
		assert.False(t, *cfg.Log.Timestamps)
	})

	t.Run("expands tilde in template dir", func(t *testing.T) {
		home, err := os.UserHomeDir()
		require.NoError(t, err)
		t.Setenv(EnvTemplateDir, "~/samples")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, "samples"), cfg.TemplateDir)
	})

	t.Run("rejects invalid boolean", func(t *testing.T) {
		t.Setenv(EnvDebug, "maybe")

		_, err := NewLoader().Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), EnvDebug)
		assert.Contains(t, err.Error(), "maybe")
	})
}

func TestExpandPath(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string", "", ""},
		{"no tilde", "/absolute/path", "/absolute/path"},
		{"relative path without tilde", "relative/path", "relative/path"},
		{"tilde only", "~", homeDir},
		{"tilde with path", "~/samples/python", filepath.Join(homeDir, "samples", "python")},
		{"tilde username pattern (not expanded)", "~username/file", "~username/file"},
		{"tilde in middle (not expanded)", "/path/~/file", "/path/~/file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ExpandPath(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}
