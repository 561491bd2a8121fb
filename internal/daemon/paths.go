package daemon

import "os"

// removeStaleSocket removes a leftover socket file from a crashed previous
// instance. It is safe to call unconditionally: AlreadyRunning is checked
// by the caller first, so any socket file found here is known stale.
func removeStaleSocket(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Warn(err)
	}
}
