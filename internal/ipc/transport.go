package ipc

import (
	"context"
	"net"
	"os"

	"github.com/pkg/errors"
)

// DialContext establishes a connection to the daemon's Unix domain socket,
// timing out if ctx expires first.
func DialContext(ctx context.Context, path string) (net.Conn, error) {
	dialer := &net.Dialer{}
	return dialer.DialContext(ctx, "unix", path)
}

// NewListener creates the daemon's Unix domain socket listener, restricting
// its permissions to the owning user.
func NewListener(path string) (net.Listener, error) {
	listener, err := net.Listen("unix", path)
	if err != nil {
		return nil, err
	}

	if err := os.Chmod(path, 0o600); err != nil {
		listener.Close()
		return nil, errors.Wrap(err, "unable to set socket permissions")
	}

	return listener, nil
}

// ProbeReachable reports whether a server is already listening at path, by
// attempting and immediately closing a connection.
func ProbeReachable(ctx context.Context, path string) bool {
	conn, err := DialContext(ctx, path)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}
