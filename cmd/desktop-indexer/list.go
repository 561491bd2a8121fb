package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Jeremis70/desktop-indexer/internal/cmdutil"
	"github.com/Jeremis70/desktop-indexer/internal/ipc"
)

func listMain(command *cobra.Command, arguments []string) error {
	if len(arguments) != 0 {
		return errors.New("unexpected arguments provided")
	}

	cfg := loadConfig()
	roots := scanRoots(cfg)

	req := ipc.Request{Cmd: ipc.CmdList, Roots: roots}
	if resp, ok := tryDaemon(req); ok {
		if resp.Type == ipc.TypeError {
			return errors.New(resp.Message)
		}
		printEntries(resp.Entries)
		return nil
	}

	idx, err := localIndex(roots)
	if err != nil {
		log.Warn(errors.Wrap(err, "index build failed"))
		return errors.New("failed to build index")
	}
	printEntries(publicOf(filterRespectTryExec(cfg, idx.Entries)))
	return nil
}

var listCommand = &cobra.Command{
	Use:   "list",
	Short: "List every indexed application entry",
	Run:   cmdutil.Mainify(listMain),
}
