package usage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIncrementAndFlushRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "usage.gob")
	s := Load(path)

	now := time.Unix(1000, 0)
	s.Increment("firefox", now)
	s.Increment("firefox", now)
	require.Equal(t, int64(2), s.Get("firefox").Freq)

	s.Flush()

	s2 := Load(path)
	rec := s2.Get("firefox")
	require.Equal(t, int64(2), rec.Freq)
	require.Equal(t, now.Unix(), rec.LastUsed)
}

func TestFlushIsNoopWhenNotDirty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "usage.gob")
	s := Load(path)
	s.Flush()

	_, statErr := os.Stat(path)
	require.Error(t, statErr)
}

func TestLoadMissingFileYieldsEmptyStore(t *testing.T) {
	s := Load(filepath.Join(t.TempDir(), "missing.gob"))
	require.Equal(t, Record{}, s.Get("anything"))
}
