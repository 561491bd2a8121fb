// Package scanner walks configured root directories for .desktop files,
// computing application ids and deduplicating across roots, grounded on the
// teacher's doublestar-based glob matching (pkg/filesystem/ignore
// previously used doublestar.Match for ignore rules; here we repurpose
// doublestar.GlobWalk for the recursive walk itself).
package scanner

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"

	"github.com/Jeremis70/desktop-indexer/internal/entry"
	"github.com/Jeremis70/desktop-indexer/internal/logging"
)

// Match is one discovered (root, path) pair together with its precomputed
// application id.
type Match struct {
	Root string
	Path string
	ID   string
}

// Result is the outcome of a Walk: the matches actually returned (capped by
// limit) and the total number found across all roots before capping.
type Result struct {
	Matches    []Match
	FoundCount int
}

var log = logging.Root.Sublogger("scanner")

// Walk scans each root in roots, in order, recursively, without following
// symlinks, yielding every file whose extension case-insensitively equals
// "desktop". Root order determines id precedence: when two files across all
// roots compute the same id, the first-encountered wins and later
// duplicates are dropped from the returned sequence (though still counted
// in FoundCount).
//
// limit caps the number of matches returned; 0 means unlimited. Roots that
// do not exist or are not directories are silently skipped.
func Walk(roots []string, limit int) Result {
	var res Result
	seen := make(map[string]struct{})

	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil || !info.IsDir() {
			continue
		}

		fsys := os.DirFS(root)
		walkErr := doublestar.GlobWalk(fsys, "**", func(relPath string, d fs.DirEntry) error {
			if d.IsDir() {
				return nil
			}
			if d.Type()&fs.ModeSymlink != 0 {
				return nil
			}
			if !strings.EqualFold(filepath.Ext(relPath), ".desktop") {
				return nil
			}

			res.FoundCount++

			path := filepath.Join(root, relPath)
			id := entry.ComputeID(root, path)
			if _, dup := seen[id]; dup {
				return nil
			}
			seen[id] = struct{}{}

			if limit > 0 && len(res.Matches) >= limit {
				return nil
			}
			res.Matches = append(res.Matches, Match{Root: root, Path: path, ID: id})
			return nil
		}, doublestar.WithNoFollow())
		if walkErr != nil {
			log.Warn(errors.Wrapf(walkErr, "walking root %q", root))
		}
	}

	return res
}
