// Package main is the entry point for the structure-me CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/marcospaterson/structure-me/internal/cmd"
	oerrors "github.com/marcospaterson/structure-me/internal/errors"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		var exitErr *oerrors.ExitError
		if errors.As(err, &exitErr) {
			if !exitErr.Printed {
				fmt.Fprintln(os.Stderr, err)
			}
			os.Exit(exitErr.Code)
		}
		// Flag parsing and config errors arrive unwrapped.
		fmt.Fprintln(os.Stderr, err)
		os.Exit(oerrors.ExitCodeFromError(err))
	}
}
