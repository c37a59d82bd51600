package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue is a string setting and where it came from.
type ResolvedValue struct {
	Value  string
	Source ConfigSource
}

// ResolveOptions contains inputs for Resolve.
type ResolveOptions struct {
	// NameFlag is the --name flag value.
	NameFlag string

	// VerboseFlag is the --verbose flag value.
	VerboseFlag bool

	// WorkDir is the directory the project is created in. Empty means the
	// process working directory.
	WorkDir string

	// Config is the loaded environment configuration. nil means defaults.
	Config *Config
}

// Resolved is the fully resolved configuration for one run.
type Resolved struct {
	// Name is the project name.
	Name string

	// Verbose fills templated files with samples.
	Verbose bool

	// WorkDir is the absolute directory the project root is created in.
	WorkDir ResolvedValue

	// TemplateDir is the sample directory; empty Value means built-in samples.
	TemplateDir ResolvedValue

	// Log holds logging settings.
	Log LogConfig
}

// Resolve combines flags, environment configuration and defaults. The
// process working directory is read here, once, so later stages receive it
// explicitly.
func Resolve(opts ResolveOptions) (*Resolved, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = DefaultConfig()
	}

	r := &Resolved{
		Name:    opts.NameFlag,
		Verbose: opts.VerboseFlag,
		Log:     cfg.Log,
	}

	if opts.WorkDir != "" {
		abs, err := filepath.Abs(opts.WorkDir)
		if err != nil {
			return nil, fmt.Errorf("resolving work directory: %w", err)
		}
		r.WorkDir = ResolvedValue{Value: abs, Source: SourceFlag}
	} else {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		r.WorkDir = ResolvedValue{Value: wd, Source: SourceDefault}
	}

	if cfg.TemplateDir != "" {
		r.TemplateDir = ResolvedValue{Value: cfg.TemplateDir, Source: SourceEnv}
	} else {
		r.TemplateDir = ResolvedValue{Source: SourceDefault}
	}

	return r, nil
}
