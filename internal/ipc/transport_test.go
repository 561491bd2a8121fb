package ipc

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewListenerSetsOwnerOnlyPermissions(t *testing.T) {
	socketPath := filepath.Join(t.TempDir(), "daemon.sock")

	listener, err := NewListener(socketPath)
	require.NoError(t, err)
	defer listener.Close()

	info, statErr := os.Stat(socketPath)
	require.NoError(t, statErr)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestProbeReachableReflectsListenerState(t *testing.T) {
	socketPath := filepath.Join(t.TempDir(), "daemon.sock")
	ctx := context.Background()

	require.False(t, ProbeReachable(ctx, socketPath))

	listener, err := NewListener(socketPath)
	require.NoError(t, err)
	defer listener.Close()

	go func() {
		conn, acceptErr := listener.Accept()
		if acceptErr == nil {
			conn.Close()
		}
	}()

	require.Eventually(t, func() bool {
		return ProbeReachable(ctx, socketPath)
	}, time.Second, 10*time.Millisecond)
}
