package main

import (
	"github.com/spf13/cobra"

	"github.com/Jeremis70/desktop-indexer/internal/cmdutil"
)

var daemonStatusCommand = &cobra.Command{
	Use:   "status",
	Short: "Reports whether the daemon is running",
	Run:   cmdutil.Mainify(statusMain),
}
