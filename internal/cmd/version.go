package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	oerrors "github.com/marcospaterson/structure-me/internal/errors"
	"github.com/marcospaterson/structure-me/internal/output"
	"github.com/marcospaterson/structure-me/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	var outputFlag string

	c := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show structure-me version information.

Displays the CLI version, commit, build date and Go toolchain.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runVersion(cmd, outputFlag)
		},
	}

	c.Flags().StringVarP(&outputFlag, "output", "o", "text", "Output format: text, json, yaml")

	return c
}

func runVersion(cmd *cobra.Command, format string) error {
	f, err := output.ParseOutputFormat(format)
	if err != nil {
		return &oerrors.ExitError{
			Code: oerrors.ExitValidationError,
			Err:  oerrors.NewValidationError(err.Error(), "", ""),
		}
	}

	info := version.Get()
	w := cmd.OutOrStdout()

	switch f {
	case output.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	case output.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(info); err != nil {
			return err
		}
		return enc.Close()
	default:
		fmt.Fprintln(w, info.String())
		return nil
	}
}
