package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Jeremis70/desktop-indexer/internal/cmdutil"
	"github.com/Jeremis70/desktop-indexer/internal/logging"
)

var rootConfiguration struct {
	// jsonOutput requests machine-readable JSON output instead of the
	// default human-readable rendering.
	jsonOutput bool
	// trace enables debug-level logging.
	trace bool
	// noDaemon skips the daemon round trip entirely and always computes
	// locally.
	noDaemon bool
	// respectTryExec filters out entries whose try_exec binary is absent
	// from PATH.
	respectTryExec bool
	// extraPaths are additional applications directories to scan, beyond
	// the XDG-derived defaults.
	extraPaths []string
}

var rootCommand = &cobra.Command{
	Use:   "desktop-indexer",
	Short: "Indexes and searches freedesktop application entries",
	Run: func(command *cobra.Command, arguments []string) {
		command.Help()
	},
}

func init() {
	flags := rootCommand.PersistentFlags()
	flags.BoolVar(&rootConfiguration.jsonOutput, "json", false, "Emit machine-readable JSON output")
	flags.BoolVar(&rootConfiguration.trace, "trace", false, "Enable verbose diagnostic logging")
	flags.BoolVar(&rootConfiguration.noDaemon, "no-daemon", false, "Always compute locally, skipping the daemon")
	flags.BoolVar(&rootConfiguration.respectTryExec, "respect-try-exec", false, "Exclude entries whose try_exec binary is not on PATH")
	flags.StringArrayVarP(&rootConfiguration.extraPaths, "path", "p", nil, "Additional applications directory to scan (repeatable)")

	cobra.EnableCommandSorting = false

	rootCommand.AddCommand(
		searchCommand,
		listCommand,
		launchCommand,
		scanCommand,
		parseCommand,
		statusCommand,
		daemonCommand,
	)
}

// Execute runs the root command, exiting the process on failure.
func Execute() {
	cobra.OnInitialize(func() {
		logging.DebugEnabled = rootConfiguration.trace
		cmdutil.JSONMode = rootConfiguration.jsonOutput
	})

	if err := rootCommand.Execute(); err != nil {
		// Cobra has already printed the error; just set the exit code.
		os.Exit(1)
	}
}
