package client

import (
	"bufio"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Jeremis70/desktop-indexer/internal/ipc"
)

func TestRoundTripNoListenerReturnsNotOK(t *testing.T) {
	socketPath := filepath.Join(t.TempDir(), "daemon.sock")

	_, ok := RoundTrip(socketPath, ipc.Request{Cmd: ipc.CmdStatus})
	require.False(t, ok)
}

func TestRoundTripSuccess(t *testing.T) {
	socketPath := filepath.Join(t.TempDir(), "daemon.sock")

	listener, err := ipc.NewListener(socketPath)
	require.NoError(t, err)
	defer listener.Close()

	go func() {
		conn, acceptErr := listener.Accept()
		if acceptErr != nil {
			return
		}
		defer conn.Close()

		var req ipc.Request
		if readErr := ipc.ReadMessage(bufio.NewReader(conn), &req); readErr != nil {
			return
		}
		ipc.WriteMessage(conn, ipc.StatusResponse(2))
	}()

	resp, ok := RoundTrip(socketPath, ipc.Request{Cmd: ipc.CmdStatus})
	require.True(t, ok)
	require.Equal(t, ipc.TypeStatus, resp.Type)
	require.Equal(t, 2, resp.HasIndexCount)
}
