// Package synclock provides the advisory cross-process lock that
// serializes the auto-sync driver's import+export sequence against the
// shared log file across concurrent bd invocations in one worktree.
// SQLite already serializes writers to the index (5s busy timeout); the
// log file has no equivalent built-in protection, which this closes.
package synclock

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

// fileName is the advisory lock file's name inside .beads/.
const fileName = "sync.lock"

// acquireTimeout bounds how long a process waits for a concurrent bd
// invocation to release the lock before giving up.
const acquireTimeout = 10 * time.Second

// Lock wraps an acquired advisory lock; call Unlock to release it.
type Lock struct {
	fl *flock.Flock
}

// Path returns the lock file's path given the .beads/ directory.
func Path(beadsDir string) string {
	return filepath.Join(beadsDir, fileName)
}

// Acquire blocks (with a bounded retry) until the advisory lock at
// beadsDir/sync.lock is held exclusively by this process, or returns an
// error if acquireTimeout elapses first.
func Acquire(beadsDir string) (*Lock, error) {
	fl := flock.New(Path(beadsDir))
	ctx, cancel := context.WithTimeout(context.Background(), acquireTimeout)
	defer cancel()

	locked, err := fl.TryLockContext(ctx, 50*time.Millisecond)
	if err != nil {
		return nil, fmt.Errorf("acquire sync lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("acquire sync lock: timed out after %s", acquireTimeout)
	}
	return &Lock{fl: fl}, nil
}

// Unlock releases the lock. Safe to call on a nil *Lock (a no-op).
func (l *Lock) Unlock() error {
	if l == nil || l.fl == nil {
		return nil
	}
	return l.fl.Unlock()
}

// HeldByOtherProcess reports whether the lock at beadsDir/sync.lock is
// currently held through any other handle, for doctor's diagnostics. The
// probe opens its own handle, so a lock taken by Acquire in this same
// process also reports as held. It never blocks: a failed non-blocking
// TryLock means someone else holds it.
func HeldByOtherProcess(beadsDir string) (bool, error) {
	fl := flock.New(Path(beadsDir))
	locked, err := fl.TryLock()
	if err != nil {
		return false, fmt.Errorf("probe sync lock: %w", err)
	}
	if locked {
		_ = fl.Unlock()
		return false, nil
	}
	return true, nil
}
