package daemon

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Jeremis70/desktop-indexer/internal/client"
	"github.com/Jeremis70/desktop-indexer/internal/ipc"
)

func writeDesktopFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func startTestServer(t *testing.T, opts Options) (context.CancelFunc, chan error) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	server := NewServer(opts)
	done := make(chan error, 1)
	go func() {
		done <- server.Run(ctx)
	}()

	require.Eventually(t, func() bool {
		return ipc.ProbeReachable(context.Background(), opts.SocketPath)
	}, 2*time.Second, 10*time.Millisecond)

	return cancel, done
}

func TestServerSearchListStatusLifecycle(t *testing.T) {
	root := t.TempDir()
	writeDesktopFile(t, filepath.Join(root, "firefox.desktop"), "[Desktop Entry]\nName=Firefox\nExec=firefox\n")
	writeDesktopFile(t, filepath.Join(root, "files.desktop"), "[Desktop Entry]\nName=Files\nExec=files\n")

	dir := t.TempDir()
	opts := Options{
		SocketPath: filepath.Join(dir, "daemon.sock"),
		CacheDir:   filepath.Join(dir, "cache"),
		UsagePath:  filepath.Join(dir, "usage.gob"),
	}
	cancel, done := startTestServer(t, opts)
	defer cancel()

	resp, ok := client.RoundTrip(opts.SocketPath, ipc.Request{Cmd: ipc.CmdWarmup, Roots: []string{root}})
	require.True(t, ok)
	require.Equal(t, ipc.TypeOk, resp.Type)

	resp, ok = client.RoundTrip(opts.SocketPath, ipc.Request{Cmd: ipc.CmdList, Roots: []string{root}})
	require.True(t, ok)
	require.Equal(t, ipc.TypeEntries, resp.Type)
	require.Len(t, resp.Entries, 2)

	limit := 5
	resp, ok = client.RoundTrip(opts.SocketPath, ipc.Request{Cmd: ipc.CmdSearch, Roots: []string{root}, Query: "firefox", Limit: &limit})
	require.True(t, ok)
	require.Equal(t, ipc.TypeEntries, resp.Type)
	require.Len(t, resp.Entries, 1)
	require.Equal(t, "firefox", resp.Entries[0].ID)

	resp, ok = client.RoundTrip(opts.SocketPath, ipc.Request{Cmd: ipc.CmdStatus})
	require.True(t, ok)
	require.Equal(t, ipc.TypeStatus, resp.Type)
	require.Equal(t, 1, resp.HasIndexCount)

	resp, ok = client.RoundTrip(opts.SocketPath, ipc.Request{Cmd: ipc.CmdShutdown})
	require.True(t, ok)
	require.Equal(t, ipc.TypeOk, resp.Type)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not shut down after Shutdown request")
	}

	_, statErr := os.Stat(opts.SocketPath)
	require.True(t, os.IsNotExist(statErr))
}

func TestServerIndexRetainedAcrossRequests(t *testing.T) {
	root := t.TempDir()
	writeDesktopFile(t, filepath.Join(root, "a.desktop"), "[Desktop Entry]\nName=A\n")

	dir := t.TempDir()
	opts := Options{
		SocketPath: filepath.Join(dir, "daemon.sock"),
		CacheDir:   filepath.Join(dir, "cache"),
		UsagePath:  filepath.Join(dir, "usage.gob"),
	}
	cancel, _ := startTestServer(t, opts)
	defer cancel()

	_, ok := client.RoundTrip(opts.SocketPath, ipc.Request{Cmd: ipc.CmdList, Roots: []string{root}})
	require.True(t, ok)

	// Remove the source file; the retained in-memory index should still
	// serve the previously discovered entry without rescanning disk.
	require.NoError(t, os.Remove(filepath.Join(root, "a.desktop")))

	resp, ok := client.RoundTrip(opts.SocketPath, ipc.Request{Cmd: ipc.CmdList, Roots: []string{root}})
	require.True(t, ok)
	require.Len(t, resp.Entries, 1)
}

func TestServerLaunchUnknownIDErrors(t *testing.T) {
	root := t.TempDir()
	writeDesktopFile(t, filepath.Join(root, "a.desktop"), "[Desktop Entry]\nName=A\n")

	dir := t.TempDir()
	opts := Options{
		SocketPath: filepath.Join(dir, "daemon.sock"),
		CacheDir:   filepath.Join(dir, "cache"),
		UsagePath:  filepath.Join(dir, "usage.gob"),
	}
	cancel, _ := startTestServer(t, opts)
	defer cancel()

	resp, ok := client.RoundTrip(opts.SocketPath, ipc.Request{Cmd: ipc.CmdLaunch, Roots: []string{root}, DesktopID: "does-not-exist"})
	require.True(t, ok)
	require.Equal(t, ipc.TypeError, resp.Type)
	require.Equal(t, "Unknown desktop-id: does-not-exist", resp.Message)
}

func TestServerLaunchUnknownActionErrors(t *testing.T) {
	root := t.TempDir()
	writeDesktopFile(t, filepath.Join(root, "a.desktop"), "[Desktop Entry]\nName=A\nExec=a\n")

	dir := t.TempDir()
	opts := Options{
		SocketPath: filepath.Join(dir, "daemon.sock"),
		CacheDir:   filepath.Join(dir, "cache"),
		UsagePath:  filepath.Join(dir, "usage.gob"),
	}
	cancel, _ := startTestServer(t, opts)
	defer cancel()

	action := "missing"
	resp, ok := client.RoundTrip(opts.SocketPath, ipc.Request{Cmd: ipc.CmdLaunch, Roots: []string{root}, DesktopID: "a", Action: &action})
	require.True(t, ok)
	require.Equal(t, ipc.TypeError, resp.Type)
	require.Equal(t, "Unknown action 'missing' for id=a", resp.Message)
}

func TestServerContextCancellationStopsAcceptLoop(t *testing.T) {
	dir := t.TempDir()
	opts := Options{
		SocketPath: filepath.Join(dir, "daemon.sock"),
		CacheDir:   filepath.Join(dir, "cache"),
		UsagePath:  filepath.Join(dir, "usage.gob"),
	}
	cancel, done := startTestServer(t, opts)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop after context cancellation")
	}
}
