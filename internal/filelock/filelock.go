//go:build !windows

// Package filelock provides the single-instance advisory file lock used by
// the daemon at startup, adapted from the teacher's
// pkg/filesystem/locking.Locker (same fcntl-based POSIX lock, trimmed to
// the one platform this indexer targets).
package filelock

import (
	"os"
	"syscall"

	"github.com/pkg/errors"
)

// Lock is an open, advisory-locked file.
type Lock struct {
	file *os.File
}

// Acquire opens (creating if necessary) the file at path and attempts to
// take an exclusive, non-blocking advisory lock on it. If the lock is
// already held elsewhere, it returns an error identifying that condition.
func Acquire(path string, perm os.FileMode) (*Lock, error) {
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, perm)
	if err != nil {
		return nil, errors.Wrap(err, "unable to open lock file")
	}

	spec := syscall.Flock_t{Type: syscall.F_WRLCK, Whence: int16(os.SEEK_SET)}
	if err := syscall.FcntlFlock(file.Fd(), syscall.F_SETLK, &spec); err != nil {
		file.Close()
		return nil, errors.Wrap(err, "another instance is already running")
	}

	return &Lock{file: file}, nil
}

// Release unlocks and closes the lock file.
func (l *Lock) Release() error {
	spec := syscall.Flock_t{Type: syscall.F_UNLCK, Whence: int16(os.SEEK_SET)}
	unlockErr := syscall.FcntlFlock(l.file.Fd(), syscall.F_SETLK, &spec)
	closeErr := l.file.Close()
	if unlockErr != nil {
		return errors.Wrap(unlockErr, "unable to unlock file")
	}
	return closeErr
}
