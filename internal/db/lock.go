package db

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	lockFile           = ".shopdesk/store.lock"
	defaultLockTimeout = 500 * time.Millisecond
)

// writeLocker serializes cross-process writes with an advisory file lock.
// The sqlite busy timeout is the fallback when a writer bypasses the lock.
type writeLocker struct {
	path string
	f    *os.File
}

func newWriteLocker(baseDir string) *writeLocker {
	return &writeLocker{path: filepath.Join(baseDir, lockFile)}
}

// acquire opens the lock file and takes an exclusive lock, retrying with
// exponential backoff up to the given timeout.
func (l *writeLocker) acquire(timeout time.Duration) error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		return fmt.Errorf("create lock dir: %w", err)
	}

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return fmt.Errorf("open lock file: %w", err)
	}

	if err := acquireFileLockTimeout(f, timeout); err != nil {
		f.Close()
		return err
	}

	l.f = f
	return nil
}

// release drops the lock and closes the file
func (l *writeLocker) release() {
	if l.f == nil {
		return
	}
	releaseFileLock(l.f)
	l.f.Close()
	l.f = nil
}
