package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Jeremis70/desktop-indexer/internal/cmdutil"
)

func daemonRestartMain(command *cobra.Command, arguments []string) error {
	if len(arguments) != 0 {
		return errors.New("unexpected arguments provided")
	}
	if err := daemonStopMain(command, nil); err != nil {
		cmdutil.Warning(err.Error())
	}
	return daemonStartMain(command, nil)
}

var daemonRestartCommand = &cobra.Command{
	Use:   "restart",
	Short: "Restarts the daemon",
	Run:   cmdutil.Mainify(daemonRestartMain),
}
