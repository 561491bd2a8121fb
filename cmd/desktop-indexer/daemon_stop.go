package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Jeremis70/desktop-indexer/internal/client"
	"github.com/Jeremis70/desktop-indexer/internal/cmdutil"
	"github.com/Jeremis70/desktop-indexer/internal/ipc"
	"github.com/Jeremis70/desktop-indexer/internal/xdg"
)

func daemonStopMain(command *cobra.Command, arguments []string) error {
	if len(arguments) != 0 {
		return errors.New("unexpected arguments provided")
	}

	resp, ok := client.RoundTrip(xdg.SocketPath(), ipc.Request{Cmd: ipc.CmdShutdown})
	if !ok {
		return errors.New("daemon is not running")
	}
	if resp.Type == ipc.TypeError {
		return errors.New(resp.Message)
	}
	return nil
}

var daemonStopCommand = &cobra.Command{
	Use:   "stop",
	Short: "Stops the daemon if it's running",
	Run:   cmdutil.Mainify(daemonStopMain),
}
