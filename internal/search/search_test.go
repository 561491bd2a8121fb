package search

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Jeremis70/desktop-indexer/internal/entry"
	"github.com/Jeremis70/desktop-indexer/internal/usage"
)

func mustEntry(t *testing.T, id, name string) *entry.EntryRecord {
	t.Helper()
	e := &entry.EntryRecord{ID: id, Name: &name}
	e.IDLower = entry.ToLower(id)
	e.NameLower = entry.ToLower(name)
	e.Norm = entry.ToLower(id) + " " + entry.ToLower(name)
	return e
}

func TestTokenizeSortsBySelectivity(t *testing.T) {
	require.Equal(t, []string{"editor", "text"}, Tokenize("text editor"))
	require.Equal(t, []string{"abc"}, Tokenize("abc abc"))
}

func TestSearchRankingOrder(t *testing.T) {
	zen := mustEntry(t, "zen-browser", "Zen Browser")
	avahi := mustEntry(t, "avahi-ssh-browser", "Avahi SSH Server Browser")
	lite := mustEntry(t, "browser-lite", "Browser Lite")

	entries := []*entry.EntryRecord{zen, avahi, lite}
	store := usage.Load(filepath.Join(t.TempDir(), "usage.gob"))

	results := Search(entries, store, nil, "browser", 10, Recency, time.Time{})
	require.Len(t, results, 3)
	require.Equal(t, "browser-lite", results[0].Entry.ID)
	require.Equal(t, "zen-browser", results[1].Entry.ID)
	require.Equal(t, "avahi-ssh-browser", results[2].Entry.ID)
}

func TestSearchIncrementalRefinementIsSubsetAndConsistent(t *testing.T) {
	a := mustEntry(t, "text-editor", "Text Editor")
	b := mustEntry(t, "texture-tool", "Texture Tool")
	c := mustEntry(t, "calculator", "Calculator")
	entries := []*entry.EntryRecord{a, b, c}
	store := usage.Load(filepath.Join(t.TempDir(), "usage.gob"))

	session := &Session{}
	first := Search(entries, store, session, "text", 10, Recency, time.Time{})
	require.Len(t, first, 2)

	second := Search(entries, store, session, "text editor", 10, Recency, time.Time{})

	full := Search(entries, store, nil, "text editor", 10, Recency, time.Time{})

	secondIDs := resultIDs(second)
	fullIDs := resultIDs(full)
	require.ElementsMatch(t, fullIDs, secondIDs)

	firstIDSet := map[string]bool{}
	for _, r := range first {
		firstIDSet[r.Entry.ID] = true
	}
	for _, id := range secondIDs {
		require.True(t, firstIDSet[id], "refined result %q must be subset of previous candidates", id)
	}
}

func resultIDs(results []Result) []string {
	ids := make([]string, len(results))
	for i, r := range results {
		ids[i] = r.Entry.ID
	}
	return ids
}

func TestSearchEmptyQueryRecencyMode(t *testing.T) {
	a := mustEntry(t, "a", "A")
	b := mustEntry(t, "b", "B")
	c := mustEntry(t, "c", "C")
	entries := []*entry.EntryRecord{a, b, c}

	store := usage.Load(filepath.Join(t.TempDir(), "usage.gob"))
	store.Increment("a", time.Unix(100, 0))
	store.Increment("b", time.Unix(50, 0))
	for i := 0; i < 4; i++ {
		store.Increment("b", time.Unix(50, 0))
	}

	results := Search(entries, store, nil, "", 10, Recency, time.Time{})
	require.Len(t, results, 2)
	require.Equal(t, "a", results[0].Entry.ID)
	require.Equal(t, "b", results[1].Entry.ID)
}

func TestSearchLimitZeroReturnsEmpty(t *testing.T) {
	entries := []*entry.EntryRecord{mustEntry(t, "a", "A")}
	store := usage.Load(filepath.Join(t.TempDir(), "usage.gob"))
	require.Empty(t, Search(entries, store, nil, "a", 0, Recency, time.Time{}))
}
