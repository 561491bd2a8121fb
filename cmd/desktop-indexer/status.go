package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Jeremis70/desktop-indexer/internal/cmdutil"
	"github.com/Jeremis70/desktop-indexer/internal/daemon"
	"github.com/Jeremis70/desktop-indexer/internal/ipc"
	"github.com/Jeremis70/desktop-indexer/internal/xdg"
)

func statusMain(command *cobra.Command, arguments []string) error {
	if len(arguments) != 0 {
		return errors.New("unexpected arguments provided")
	}

	if resp, ok := tryDaemon(ipc.Request{Cmd: ipc.CmdStatus}); ok {
		if resp.Type == ipc.TypeError {
			return errors.New(resp.Message)
		}
		fmt.Printf("daemon running, %d root-set(s) indexed\n", resp.HasIndexCount)
		return nil
	}

	if daemon.AlreadyRunning(cmdContext(), xdg.SocketPath()) {
		fmt.Println("daemon running, but did not answer status in time")
		return nil
	}
	fmt.Println("daemon not running")
	return nil
}

var statusCommand = &cobra.Command{
	Use:   "status",
	Short: "Report whether the daemon is running and what it has indexed",
	Run:   cmdutil.Mainify(statusMain),
}
