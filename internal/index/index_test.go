package index

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeDesktopFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestBuildParsesAndCaches(t *testing.T) {
	root := t.TempDir()
	cacheDir := t.TempDir()
	writeDesktopFile(t, filepath.Join(root, "a.desktop"), "[Desktop Entry]\nName=A\n")
	writeDesktopFile(t, filepath.Join(root, "b.desktop"), "[Desktop Entry]\nName=B\n")

	idx, err := Build(context.Background(), []string{root}, 0, cacheDir)
	require.NoError(t, err)
	require.Len(t, idx.Entries, 2)
	require.Equal(t, 2, idx.FoundCount)

	entries, err := os.ReadDir(cacheDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestBuildSkipsSecondWriteWhenUnchanged(t *testing.T) {
	root := t.TempDir()
	cacheDir := t.TempDir()
	writeDesktopFile(t, filepath.Join(root, "a.desktop"), "[Desktop Entry]\nName=A\n")

	_, err := Build(context.Background(), []string{root}, 0, cacheDir)
	require.NoError(t, err)

	cacheFiles, err := filepath.Glob(filepath.Join(cacheDir, "*"))
	require.NoError(t, err)
	require.Len(t, cacheFiles, 1)
	info1, err := os.Stat(cacheFiles[0])
	require.NoError(t, err)

	_, err = Build(context.Background(), []string{root}, 0, cacheDir)
	require.NoError(t, err)

	info2, err := os.Stat(cacheFiles[0])
	require.NoError(t, err)
	require.Equal(t, info1.ModTime(), info2.ModTime())
}
