// Package cmd provides the structure-me command tree.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/marcospaterson/structure-me/internal/config"
	oerrors "github.com/marcospaterson/structure-me/internal/errors"
	"github.com/marcospaterson/structure-me/internal/output"
)

// rootOptions holds flag values and injected dependencies for one command
// tree. workDir is empty in production, meaning the process working directory.
type rootOptions struct {
	name    string
	verbose bool
	workDir string

	cfg *config.Config
}

// NewRootCmd creates the root command for the structure-me CLI.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&rootOptions{})
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "structure-me --name <NAME> [--verbose]",
		Short: "Scaffold a new Python project layout",
		Long: `structure-me creates the directory layout and boilerplate files for a new
Python project in the current directory:

  <NAME>/
    README.md  setup.py  setup.cfg  MANIFEST.in  __init__.py
    examples/example.py
    src/__init__.py  src/<NAME>/
    tests/  data/

Files are created empty. With --verbose, README.md, setup.py, setup.cfg and
MANIFEST.in are filled with sample content containing tips and directions.

The target directory must not exist. If creation fails part way, whatever was
already created is left in place.

Environment:
  STRUCTURE_ME_TEMPLATE_DIR     directory with sample_* files to use instead of the built-in ones
  STRUCTURE_ME_DEBUG            enable debug logging
  STRUCTURE_ME_LOG_TIMESTAMPS   show timestamps in log output`,
		Example: `  # Empty boilerplate files
  structure-me --name demo

  # Files populated with tips and directions
  structure-me -n demo -v`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initializeGlobals(cmd, opts)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScaffold(cmd, opts)
		},
	}

	rootCmd.Flags().StringVarP(&opts.name, "name", "n", "", "Project name, used for the root directory and src/<NAME> (required)")
	rootCmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Fill README.md, setup.py, setup.cfg and MANIFEST.in with sample content")

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals loads environment configuration and sets up logging.
func initializeGlobals(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := config.Load()
	if err != nil {
		output.Error("invalid configuration", "error", err)
		return &oerrors.ExitError{Code: oerrors.ExitValidationError, Err: err, Printed: true}
	}
	opts.cfg = cfg

	output.SetupLogging(output.LogConfig{
		Debug:      cfg.Log.Debug,
		Timestamps: cfg.Log.Timestamps,
		Output:     cmd.ErrOrStderr(),
	})

	output.Debug("configuration loaded",
		"template_dir", cfg.TemplateDir,
		"debug", cfg.Log.Debug,
	)
	return nil
}
