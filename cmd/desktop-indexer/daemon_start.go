package main

import (
	"os"
	"os/exec"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Jeremis70/desktop-indexer/internal/cmdutil"
	idaemon "github.com/Jeremis70/desktop-indexer/internal/daemon"
	"github.com/Jeremis70/desktop-indexer/internal/xdg"
)

func daemonStartMain(command *cobra.Command, arguments []string) error {
	if len(arguments) != 0 {
		return errors.New("unexpected arguments provided")
	}

	if idaemon.AlreadyRunning(cmdContext(), xdg.SocketPath()) {
		return nil
	}

	executablePath, err := os.Executable()
	if err != nil {
		return errors.Wrap(err, "unable to determine executable path")
	}

	process := exec.Command(executablePath, "daemon", "run-daemon")
	process.Stdin = nil
	process.Stdout = nil
	process.Stderr = nil
	if err := process.Start(); err != nil {
		return errors.Wrap(err, "unable to fork daemon")
	}

	go func() { _ = process.Wait() }()

	return nil
}

var daemonStartCommand = &cobra.Command{
	Use:   "start",
	Short: "Starts the daemon if it's not already running",
	Run:   cmdutil.Mainify(daemonStartMain),
}
