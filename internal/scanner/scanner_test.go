package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeDesktopFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("[Desktop Entry]\nName=X\n"), 0o644))
}

func TestWalkFindsDesktopFilesRecursively(t *testing.T) {
	root := t.TempDir()
	writeDesktopFile(t, filepath.Join(root, "a.desktop"))
	writeDesktopFile(t, filepath.Join(root, "kde4", "konsole.desktop"))
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("hi"), 0o644))

	res := Walk([]string{root}, 0)
	require.Equal(t, 2, res.FoundCount)
	require.Len(t, res.Matches, 2)
}

func TestWalkDeduplicatesAcrossRootsByID(t *testing.T) {
	rootA := t.TempDir()
	rootB := t.TempDir()
	writeDesktopFile(t, filepath.Join(rootA, "firefox.desktop"))
	writeDesktopFile(t, filepath.Join(rootB, "firefox.desktop"))

	res := Walk([]string{rootA, rootB}, 0)
	require.Equal(t, 2, res.FoundCount)
	require.Len(t, res.Matches, 1)
	require.Equal(t, rootA, res.Matches[0].Root)
}

func TestWalkRespectsLimitButCountsAll(t *testing.T) {
	root := t.TempDir()
	writeDesktopFile(t, filepath.Join(root, "a.desktop"))
	writeDesktopFile(t, filepath.Join(root, "b.desktop"))
	writeDesktopFile(t, filepath.Join(root, "c.desktop"))

	res := Walk([]string{root}, 2)
	require.Equal(t, 3, res.FoundCount)
	require.Len(t, res.Matches, 2)
}

func TestWalkSkipsMissingRoot(t *testing.T) {
	res := Walk([]string{"/does/not/exist"}, 0)
	require.Equal(t, 0, res.FoundCount)
	require.Empty(t, res.Matches)
}
