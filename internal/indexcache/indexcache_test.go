package indexcache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Jeremis70/desktop-indexer/internal/entry"
)

func TestCacheRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cachePath := filepath.Join(dir, FileName([]string{"/a", "/b"}))
	roots := []string{"/a", "/b"}

	name := "Firefox"
	e := &entry.EntryRecord{ID: "firefox", Name: &name}

	c := Load(cachePath, roots)
	_, ok := c.Lookup("/a/firefox.desktop")
	require.False(t, ok)

	n := c.NewNext()
	n.Insert("/a/firefox.desktop", 100, 1000, e)
	require.NoError(t, Persist(cachePath, roots, n))

	c2 := Load(cachePath, roots)
	rec, ok := c2.records["/a/firefox.desktop"]
	require.True(t, ok)
	require.Equal(t, "firefox", rec.Entry.ID)
	require.Equal(t, int64(100), rec.Size)
}

func TestCacheRejectsMismatchedRootSet(t *testing.T) {
	dir := t.TempDir()
	cachePath := filepath.Join(dir, "cache.gob")

	n := (&Cache{records: map[string]Record{}}).NewNext()
	n.Insert("/a/x.desktop", 1, 1, &entry.EntryRecord{ID: "x"})
	require.NoError(t, Persist(cachePath, []string{"/a"}, n))

	c := Load(cachePath, []string{"/b"})
	require.Empty(t, c.records)
}

func TestLookupFreshness(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "app.desktop")
	require.NoError(t, os.WriteFile(filePath, []byte("[Desktop Entry]\n"), 0o644))
	info, err := os.Stat(filePath)
	require.NoError(t, err)

	c := &Cache{records: map[string]Record{
		filePath: {Size: info.Size(), ModTime: info.ModTime().Unix(), Entry: &entry.EntryRecord{ID: "app"}},
	}}
	rec, ok := c.Lookup(filePath)
	require.True(t, ok)
	require.Equal(t, "app", rec.Entry.ID)

	require.NoError(t, os.WriteFile(filePath, []byte("[Desktop Entry]\nName=Changed\n"), 0o644))
	_, ok = c.Lookup(filePath)
	require.False(t, ok)
}

func TestShouldPersistSkipsWhenUnchanged(t *testing.T) {
	c := &Cache{records: map[string]Record{
		"/a/x.desktop": {Size: 1, ModTime: 1, Entry: &entry.EntryRecord{ID: "x"}},
	}}
	n := c.NewNext()
	n.Carry("/a/x.desktop", c.records["/a/x.desktop"])

	require.False(t, c.ShouldPersist(n, false, false, false))
	require.True(t, c.ShouldPersist(n, true, false, false))
}
