// Package usage persists per-application frequency and recency counters
// used to rank search results, serialized with encoding/gob per the same
// grounding as internal/indexcache.
package usage

import (
	"bytes"
	"encoding/gob"
	"math"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/Jeremis70/desktop-indexer/internal/atomicfile"
	"github.com/Jeremis70/desktop-indexer/internal/logging"
)

// FormatVersion is bumped whenever the on-disk encoding changes shape.
const FormatVersion = 1

var log = logging.Root.Sublogger("usage")

// Record is one application's usage counters.
type Record struct {
	Freq     int64
	LastUsed int64 // Unix seconds; 0 means never used.
}

type file struct {
	Version int
	Map     map[string]Record
}

// Store is the in-memory, loaded usage store for one user.
type Store struct {
	path  string
	byID  map[string]Record
	dirty bool
}

// Load reads the usage file at path. A missing, corrupt, or
// version-mismatched file yields an empty store rather than an error.
func Load(path string) *Store {
	s := &Store{path: path, byID: make(map[string]Record)}

	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}

	var f file
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&f); err != nil {
		log.Debugf("discarding unreadable usage store %s: %v", path, err)
		return s
	}
	if f.Version != FormatVersion {
		return s
	}
	if f.Map != nil {
		s.byID = f.Map
	}
	return s
}

// Get returns the usage record for id, the zero value if unknown.
func (s *Store) Get(id string) Record {
	return s.byID[id]
}

// All returns a snapshot of every tracked record, keyed by application id.
func (s *Store) All() map[string]Record {
	out := make(map[string]Record, len(s.byID))
	for k, v := range s.byID {
		out[k] = v
	}
	return out
}

// Increment bumps id's frequency (saturating at the int64 maximum) and
// sets its last-used time to now, marking the store dirty.
func (s *Store) Increment(id string, now time.Time) {
	rec := s.byID[id]
	if rec.Freq < math.MaxInt64 {
		rec.Freq++
	}
	rec.LastUsed = now.Unix()
	s.byID[id] = rec
	s.dirty = true
}

// Flush writes the store to disk atomically if dirty; a write failure is
// logged and swallowed, per the store's silent-failure contract.
func (s *Store) Flush() {
	if !s.dirty {
		return
	}
	if err := s.persist(); err != nil {
		log.Warn(errors.Wrap(err, "flushing usage store"))
		return
	}
	s.dirty = false
}

func (s *Store) persist() error {
	f := file{Version: FormatVersion, Map: s.byID}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(f); err != nil {
		return errors.Wrap(err, "unable to encode usage store")
	}
	return atomicfile.Write(s.path, buf.Bytes(), 0o644)
}
