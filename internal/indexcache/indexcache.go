// Package indexcache persists parsed Desktop Entry records keyed by file
// path, so unchanged files are not re-parsed on every scan. Serialization
// uses encoding/gob, grounded on the teacher's legacy rpc/rpc.go and
// message/stream.go (both gob-encode their wire structures directly); the
// teacher's current protocol buffers stack has no hand-written-.pb.go
// equivalent available here, and the original implementation's postcard
// format has no ecosystem analog, so gob is the closest grounded choice for
// a compact, versioned, non-wire binary format.
package indexcache

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"os"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/jinzhu/copier"
	"github.com/pkg/errors"

	"github.com/Jeremis70/desktop-indexer/internal/atomicfile"
	"github.com/Jeremis70/desktop-indexer/internal/entry"
	"github.com/Jeremis70/desktop-indexer/internal/logging"
)

// FormatVersion is bumped whenever the on-disk encoding changes shape; a
// mismatch invalidates the cache file.
const FormatVersion = 1

var log = logging.Root.Sublogger("indexcache")

// Record is one cached, fresh-checked entry.
type Record struct {
	Size    int64
	ModTime int64 // Unix seconds.
	Entry   *entry.EntryRecord
}

// file is the on-disk envelope.
type file struct {
	Version int
	Roots   []string
	Entries map[string]Record // path -> Record
}

// Cache is an in-memory, path-keyed view of a loaded (or empty) cache file
// for one exact ordered root-set.
type Cache struct {
	path    string
	roots   []string
	records map[string]Record

	reparsed    bool
	metaMisses  bool
	parseErrors bool
	pathsDirty  bool
}

// FileName computes the deterministic cache file name for an ordered
// root-set: a hash of the joined root-set string plus the format version.
func FileName(roots []string) string {
	h := xxhash.Sum64String(strings.Join(roots, "\x00"))
	return fmt.Sprintf("index-v%d-%016x.gob", FormatVersion, h)
}

// Load reads the cache file at path. Any error (missing file, corrupt
// data, version mismatch, root-set mismatch) yields an empty cache rather
// than a failure — the scan pipeline simply reparses everything.
func Load(path string, roots []string) *Cache {
	c := &Cache{path: path, roots: roots, records: make(map[string]Record)}

	data, err := os.ReadFile(path)
	if err != nil {
		return c
	}

	var f file
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&f); err != nil {
		log.Debugf("discarding unreadable cache %s: %v", path, err)
		return c
	}
	if f.Version != FormatVersion {
		return c
	}
	if !rootsEqual(f.Roots, roots) {
		return c
	}

	c.records = f.Entries
	if c.records == nil {
		c.records = make(map[string]Record)
	}
	return c
}

func rootsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Lookup returns the cached record for path if it is fresh against the
// file currently on disk (same size and mtime second), and ok=true.
func (c *Cache) Lookup(path string) (Record, bool) {
	rec, ok := c.records[path]
	if !ok {
		return Record{}, false
	}

	info, err := os.Stat(path)
	if err != nil {
		c.metaMisses = true
		return Record{}, false
	}
	if info.Size() != rec.Size || info.ModTime().Unix() != rec.ModTime {
		return Record{}, false
	}
	return rec, true
}

// next holds the records accumulated for the cache file that will replace
// this one, built up via Carry/Insert as the scan pipeline runs.
type next struct {
	records map[string]Record
}

// NewNext starts a fresh accumulator for the cache that will be persisted
// after this scan.
func (c *Cache) NewNext() *next {
	return &next{records: make(map[string]Record, len(c.records))}
}

// Carry forwards a still-fresh cached record into the next cache generation,
// via a defensive copy (grounded on the teacher's use of jinzhu/copier for
// forwarding struct state between generations in its synchronization
// snapshots).
func (n *next) Carry(path string, rec Record) {
	var copied entry.EntryRecord
	if rec.Entry != nil {
		_ = copier.Copy(&copied, rec.Entry)
		rec.Entry = &copied
	}
	n.records[path] = rec
}

// Insert adds a freshly parsed record to the next cache generation. It
// records nothing else: the caller reports the reparse to ShouldPersist
// through its reparsedAny argument.
func (n *next) Insert(path string, size int64, modTime int64, e *entry.EntryRecord) {
	n.records[path] = Record{Size: size, ModTime: modTime, Entry: e}
}

// ShouldPersist reports whether the scan that produced next warrants
// writing a new cache file, per the skip-conditions in the cache's
// persistence rule: nothing reparsed, no metadata misses, no parse
// failures, and the path set is unchanged.
func (c *Cache) ShouldPersist(n *next, reparsedAny, metaMissAny, parseErrorAny bool) bool {
	if reparsedAny || metaMissAny || parseErrorAny {
		return true
	}
	if len(n.records) != len(c.records) {
		return true
	}
	for path := range n.records {
		if _, ok := c.records[path]; !ok {
			return true
		}
	}
	return false
}

// Persist atomically writes the next cache generation to path, only ever
// called when ShouldPersist returned true.
func Persist(path string, roots []string, n *next) error {
	f := file{Version: FormatVersion, Roots: roots, Entries: n.records}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(f); err != nil {
		return errors.Wrap(err, "unable to encode cache")
	}

	return atomicfile.Write(path, buf.Bytes(), 0o644)
}
