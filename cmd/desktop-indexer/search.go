package main

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Jeremis70/desktop-indexer/internal/cmdutil"
	"github.com/Jeremis70/desktop-indexer/internal/entry"
	"github.com/Jeremis70/desktop-indexer/internal/ipc"
	"github.com/Jeremis70/desktop-indexer/internal/search"
	"github.com/Jeremis70/desktop-indexer/internal/usage"
)

var searchConfiguration struct {
	limit     int
	emptyMode string
}

func searchMain(command *cobra.Command, arguments []string) error {
	query := strings.Join(arguments, " ")
	cfg := loadConfig()
	roots := scanRoots(cfg)

	emptyMode := searchConfiguration.emptyMode
	if emptyMode == "" {
		emptyMode = cfg.EmptyMode
	}
	wireMode := ipc.EmptyModeRecency
	if emptyMode == "frequency" {
		wireMode = ipc.EmptyModeFrequency
	}

	limit := searchConfiguration.limit
	req := ipc.Request{
		Cmd:       ipc.CmdSearch,
		Roots:     roots,
		Query:     query,
		Limit:     &limit,
		EmptyMode: &wireMode,
	}

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
	entries := filterRespectTryExec(cfg, idx.Entries)

	usageStore := usage.Load(usagePath())
	mode := search.Recency
	if emptyMode == "frequency" {
		mode = search.Frequency
	}

	results := search.Search(entries, usageStore, nil, query, limit, mode, time.Now())
	printEntries(resultsToPublic(results))
	return nil
}

func resultsToPublic(results []search.Result) []entry.PublicEntry {
	out := make([]entry.PublicEntry, len(results))
	for i, r := range results {
		out[i] = r.Entry.Public()
	}
	return out
}

var searchCommand = &cobra.Command{
	Use:   "search <query>",
	Short: "Search indexed application entries",
	Run:   cmdutil.Mainify(searchMain),
}

func init() {
	flags := searchCommand.Flags()
	flags.SortFlags = false
	flags.IntVar(&searchConfiguration.limit, "limit", 20, "Maximum number of results")
	flags.StringVar(&searchConfiguration.emptyMode, "empty-mode", "", "Ranking mode for an empty query: recency or frequency")
}
