// Package cmdutil provides the small pieces of CLI plumbing shared across
// cmd/desktop-indexer's subcommands, grounded on the teacher's cmd/error.go
// and cmd/cobra.go.
package cmdutil

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// JSONMode suppresses colorized Warning/Error prefixes when the CLI is
// running with --json: stderr diagnostics then stay plain text rather than
// mixing ANSI escapes into output a caller is piping alongside the
// machine-readable stdout.
var JSONMode bool

// Warning prints a warning message to standard error.
func Warning(message string) {
	if JSONMode {
		fmt.Fprintln(color.Error, "Warning:", message)
		return
	}
	fmt.Fprintln(color.Error, color.YellowString("Warning:"), message)
}

// Error prints an error message to standard error.
func Error(err error) {
	if JSONMode {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return
	}
	fmt.Fprintln(os.Stderr, color.RedString("Error:"), err)
}

// Fatal prints an error message to standard error and terminates the
// process with a non-zero exit code.
func Fatal(err error) {
	Error(err)
	os.Exit(1)
}

// Mainify wraps a Cobra entry point that returns an error into the
// standard Cobra Run signature, so entry points can rely on defer-based
// cleanup while still signaling failure.
func Mainify(entry func(*cobra.Command, []string) error) func(*cobra.Command, []string) {
	return func(command *cobra.Command, arguments []string) {
		if err := entry(command, arguments); err != nil {
			Fatal(err)
		}
	}
}
