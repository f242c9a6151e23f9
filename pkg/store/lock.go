package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

const lockFileSuffix = ".lock"

// Lock is a file-based lock guarding the store file. The data model
// assumes a single writer; the lock keeps a second seplanner process
// from interleaving whole-collection writes.
type Lock struct {
	lock *flock.Flock
	path string
}

// NewLock creates a lock next to the given store path.
func NewLock(storePath string) (*Lock, error) {
	abs, err := filepath.Abs(storePath)
	if err != nil {
		return nil, fmt.Errorf("could not resolve store path: %w", err)
	}
	lockPath := abs + lockFileSuffix
	return &Lock{lock: flock.New(lockPath), path: lockPath}, nil
}

// Acquire takes the lock, waiting if another process holds it.
func (l *Lock) Acquire() error {
	locked, err := l.lock.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire lock on %s: %w", l.path, err)
	}
	if !locked {
		fmt.Fprintf(os.Stderr, "Another seplanner process is writing to the store, waiting for it to finish...\n")
		if err := l.lock.Lock(); err != nil {
			return fmt.Errorf("failed to acquire lock on %s after waiting: %w", l.path, err)
		}
	}
	return nil
}

// Release drops the lock.
func (l *Lock) Release() error {
	if err := l.lock.Unlock(); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to release lock on %s: %w", l.path, err)
	}
	return nil
}
