package main

import (
	"github.com/spf13/cobra"

	"github.com/Jeremis70/desktop-indexer/internal/cmdutil"
)

func daemonMain(command *cobra.Command, arguments []string) error {
	command.Help()
	return nil
}

var daemonCommand = &cobra.Command{
	Use:   "daemon",
	Short: "Controls the background indexing service",
	Run:   cmdutil.Mainify(daemonMain),
}

func init() {
	daemonCommand.AddCommand(
		daemonRunCommand,
		daemonStartCommand,
		daemonStopCommand,
		daemonRestartCommand,
		daemonStatusCommand,
	)
}
