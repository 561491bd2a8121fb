// Package xdg resolves the XDG base directories the indexer reads and
// writes: applications scan roots, the cache directory, the data directory,
// and the per-session IPC socket path. This is external-collaborator
// territory per spec.md §1 (XDG directory discovery is explicitly out of
// core scope), implemented here so the CLI is runnable end to end.
package xdg

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const appDirName = "desktop-indexer"

func homeDir() string {
	if h, err := os.UserHomeDir(); err == nil && h != "" {
		return h
	}
	return ""
}

// BuildScanRoots computes the ordered, deduplicated set of applications
// directories to scan: XDG_DATA_HOME/applications, each
// XDG_DATA_DIRS/*/applications, then the caller-supplied extra paths (both
// as given and with an "applications" subdirectory appended, unless the
// path already ends in "applications").
func BuildScanRoots(extra []string) []string {
	var roots []string

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		dataHome = filepath.Join(homeDir(), ".local", "share")
	}
	roots = append(roots, filepath.Join(dataHome, "applications"))

	dataDirs := os.Getenv("XDG_DATA_DIRS")
	if dataDirs == "" {
		dataDirs = "/usr/local/share:/usr/share"
	}
	for _, part := range strings.Split(dataDirs, ":") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		roots = append(roots, filepath.Join(part, "applications"))
	}

	for _, p := range extra {
		roots = append(roots, p)
		if filepath.Base(p) != "applications" {
			roots = append(roots, filepath.Join(p, "applications"))
		}
	}

	return dedup(roots)
}

func dedup(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, r := range in {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}

// CacheDir returns (and does not create) the directory in which the index
// cache files live.
func CacheDir() string {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		base = filepath.Join(homeDir(), ".cache")
	}
	return filepath.Join(base, appDirName)
}

// DataDir returns (and does not create) the directory in which the usage
// store lives.
func DataDir() string {
	base := os.Getenv("XDG_DATA_HOME")
	if base == "" {
		base = filepath.Join(homeDir(), ".local", "share")
	}
	return filepath.Join(base, appDirName)
}

// ConfigDir returns (and does not create) the directory in which the
// optional JSONC configuration file lives.
func ConfigDir() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		base = filepath.Join(homeDir(), ".config")
	}
	return filepath.Join(base, appDirName)
}

// SocketPath returns the path of the per-session IPC socket: preferably
// under XDG_RUNTIME_DIR, falling back to a per-user path under /tmp.
func SocketPath() string {
	if dir := os.Getenv("XDG_RUNTIME_DIR"); dir != "" {
		return filepath.Join(dir, appDirName+".sock")
	}
	user := os.Getenv("USER")
	if user == "" {
		user = "user"
	}
	return filepath.Join("/tmp", fmt.Sprintf("%s-%s.sock", appDirName, user))
}

// LockPath returns the path of the daemon single-instance lock file,
// alongside the socket.
func LockPath() string {
	return filepath.Join(filepath.Dir(SocketPath()), appDirName+".lock")
}
