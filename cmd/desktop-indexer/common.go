package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/Jeremis70/desktop-indexer/internal/client"
	"github.com/Jeremis70/desktop-indexer/internal/config"
	"github.com/Jeremis70/desktop-indexer/internal/entry"
	"github.com/Jeremis70/desktop-indexer/internal/index"
	"github.com/Jeremis70/desktop-indexer/internal/ipc"
	"github.com/Jeremis70/desktop-indexer/internal/launcher"
	"github.com/Jeremis70/desktop-indexer/internal/logging"
	"github.com/Jeremis70/desktop-indexer/internal/xdg"
)

var log = logging.Root.Sublogger("cli")

// cmdContext returns the context for one-off daemon reachability probes
// issued from CLI subcommands: context.Background(), with no deadline.
func cmdContext() context.Context {
	return context.Background()
}

func loadConfig() config.Config {
	return config.Load(filepath.Join(xdg.ConfigDir(), "config.jsonc"))
}

// scanRoots computes the effective root list: XDG-derived defaults plus
// --path flags plus configured extra_roots.
func scanRoots(cfg config.Config) []string {
	extra := append([]string{}, rootConfiguration.extraPaths...)
	extra = append(extra, cfg.ExtraRoots...)
	return xdg.BuildScanRoots(extra)
}

func usagePath() string {
	return filepath.Join(xdg.DataDir(), "usage.gob")
}

func cacheDir() string {
	return xdg.CacheDir()
}

// localIndex runs the scan/parse/cache pipeline directly, for use when the
// daemon is unreachable or --no-daemon was given.
func localIndex(roots []string) (*index.Index, error) {
	if err := os.MkdirAll(cacheDir(), 0o755); err != nil {
		return nil, err
	}
	return index.Build(context.Background(), roots, 0, cacheDir())
}

// respectTryExec reports whether entries whose try_exec binary is absent
// from PATH should be excluded, combining the --respect-try-exec flag with
// the configured default.
func respectTryExec(cfg config.Config) bool {
	return rootConfiguration.respectTryExec || cfg.RespectTryExec
}

// filterRespectTryExec applies the try_exec filter uniformly, as decided
// for the query-time filter applied across Search, List, and Launch.
func filterRespectTryExec(cfg config.Config, entries []*entry.EntryRecord) []*entry.EntryRecord {
	if !respectTryExec(cfg) {
		return entries
	}
	out := make([]*entry.EntryRecord, 0, len(entries))
	for _, e := range entries {
		if launcher.TryExecAvailable(e) {
			out = append(out, e)
		}
	}
	return out
}

func publicOf(entries []*entry.EntryRecord) []entry.PublicEntry {
	out := make([]entry.PublicEntry, len(entries))
	for i, e := range entries {
		out[i] = e.Public()
	}
	return out
}

// tryDaemon attempts the round trip described by req unless --no-daemon was
// given. ok is false only on transport failure (no response); the caller
// must then fall back to local computation. A response the daemon
// explicitly produced, including an error response, is authoritative and
// is returned with ok=true.
func tryDaemon(req ipc.Request) (ipc.Response, bool) {
	if rootConfiguration.noDaemon {
		return ipc.Response{}, false
	}
	return client.RoundTrip(xdg.SocketPath(), req)
}
