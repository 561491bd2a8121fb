// Package index wires the scanner, index cache, and entry parser together
// into the shared scan/parse/cache pipeline used by both the daemon and a
// client's local fallback, grounded on the teacher's use of
// golang.org/x/sync/errgroup to bound fan-out parallelism during
// synchronization scans.
package index

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/Jeremis70/desktop-indexer/internal/entry"
	"github.com/Jeremis70/desktop-indexer/internal/indexcache"
	"github.com/Jeremis70/desktop-indexer/internal/logging"
	"github.com/Jeremis70/desktop-indexer/internal/scanner"
)

var log = logging.Root.Sublogger("index")

// Index is the built, in-memory result of one scan/parse/cache pass over an
// exact ordered root-set.
type Index struct {
	Roots      []string
	Entries    []*entry.EntryRecord
	FoundCount int
	Limited    bool
}

// Build runs the full pipeline: walk roots (capped at limit, 0 meaning
// unlimited), consult the on-disk cache for unchanged files, parse misses
// in parallel, and persist a new cache generation when warranted.
// cacheDir is the directory the per-root-set cache file lives under.
func Build(ctx context.Context, roots []string, limit int, cacheDir string) (*Index, error) {
	scanRes := scanner.Walk(roots, limit)

	cachePath := filepath.Join(cacheDir, indexcache.FileName(roots))
	cache := indexcache.Load(cachePath, roots)
	next := cache.NewNext()

	entries := make([]*entry.EntryRecord, len(scanRes.Matches))

	var (
		mu          sync.Mutex
		reparsedAny bool
		metaMiss    bool
		parseErr    bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, m := range scanRes.Matches {
		i, m := i, m
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			info, statErr := os.Stat(m.Path)
			if statErr != nil {
				mu.Lock()
				metaMiss = true
				mu.Unlock()
				return nil
			}

			if rec, ok := cache.Lookup(m.Path); ok {
				mu.Lock()
				next.Carry(m.Path, rec)
				mu.Unlock()
				entries[i] = rec.Entry
				return nil
			}

			e, parseErrVal := entry.Parse(m.Path, m.Root)
			if parseErrVal != nil {
				mu.Lock()
				parseErr = true
				mu.Unlock()
				log.Debugf("parse failed for %s: %v", m.Path, parseErrVal)
				return nil
			}

			mu.Lock()
			reparsedAny = true
			next.Insert(m.Path, info.Size(), info.ModTime().Unix(), e)
			mu.Unlock()

			entries[i] = e
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &Index{Roots: roots, FoundCount: scanRes.FoundCount, Limited: limit > 0}
	for _, e := range entries {
		if e != nil {
			out.Entries = append(out.Entries, e)
		}
	}

	if limit == 0 {
		if cache.ShouldPersist(next, reparsedAny, metaMiss, parseErr) {
			if err := os.MkdirAll(cacheDir, 0o755); err != nil {
				log.Warn(err)
			} else if err := indexcache.Persist(cachePath, roots, next); err != nil {
				log.Warn(err)
			}
		}
	}

	return out, nil
}
