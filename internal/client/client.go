// Package client implements the short-lived side of the IPC protocol: each
// invocation attempts one round trip to the daemon with a bounded timeout,
// falling through to "no response" on any failure so the caller can
// compute the answer locally via internal/index and internal/search.
package client

import (
	"bufio"
	"context"
	"time"

	"github.com/Jeremis70/desktop-indexer/internal/ipc"
)

// DialTimeout is the connect timeout; RoundTripTimeout bounds the whole
// request/response exchange. Both are short so a wedged or absent daemon
// never blocks the CLI noticeably.
const (
	DialTimeout      = 500 * time.Millisecond
	RoundTripTimeout = 2 * time.Second
)

// RoundTrip attempts to send req to the daemon at socketPath and read back
// its response. ok is false on any failure (connect, write, read,
// decode, or timeout) — the caller must then fall back to local
// computation.
func RoundTrip(socketPath string, req ipc.Request) (resp ipc.Response, ok bool) {
	ctx, cancel := context.WithTimeout(context.Background(), RoundTripTimeout)
	defer cancel()

	dialCtx, dialCancel := context.WithTimeout(ctx, DialTimeout)
	conn, err := ipc.DialContext(dialCtx, socketPath)
	dialCancel()
	if err != nil {
		return ipc.Response{}, false
	}
	defer conn.Close()

	if deadline, has := ctx.Deadline(); has {
		_ = conn.SetDeadline(deadline)
	}

	if err := ipc.WriteMessage(conn, req); err != nil {
		return ipc.Response{}, false
	}

	reader := bufio.NewReader(conn)
	if err := ipc.ReadMessage(reader, &resp); err != nil {
		return ipc.Response{}, false
	}

	return resp, true
}
