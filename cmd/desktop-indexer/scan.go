package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Jeremis70/desktop-indexer/internal/cmdutil"
)

func scanMain(command *cobra.Command, arguments []string) error {
	if len(arguments) != 0 {
		return errors.New("unexpected arguments provided")
	}

	cfg := loadConfig()
	roots := scanRoots(cfg)

	idx, err := localIndex(roots)
	if err != nil {
		log.Warn(errors.Wrap(err, "index build failed"))
		return errors.New("failed to build index")
	}

	fmt.Printf("scanned %s root(s), found %s, indexed %s\n",
		humanize.Comma(int64(len(roots))),
		humanize.Comma(int64(idx.FoundCount)),
		humanize.Comma(int64(len(idx.Entries))),
	)
	return nil
}

var scanCommand = &cobra.Command{
	Use:   "scan",
	Short: "Rebuild the index cache for the configured applications directories",
	Run:   cmdutil.Mainify(scanMain),
}
