package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrCatalogLocked reports that another process holds the catalog lock.
var ErrCatalogLocked = errors.New("catalog is in use by another marquee process")

// Lock is an exclusive advisory lock on a catalog file, held for the duration
// of one mutating command.
type Lock struct {
	path string
	lock *flock.Flock
}

// LockPath returns the lock file guarding the catalog at dataFile.
func LockPath(dataFile string) string {
	return dataFile + ".lock"
}

// AcquireLock takes the exclusive lock for dataFile without blocking. It returns
// ErrCatalogLocked when another process already holds it.
func AcquireLock(dataFile string) (*Lock, error) {
	path := LockPath(dataFile)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}
	l := &Lock{path: path, lock: flock.New(path)}
	ok, err := l.lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, ErrCatalogLocked
	}
	return l, nil
}

// Path returns the lock file location.
func (l *Lock) Path() string {
	return l.path
}

// Release unlocks the catalog. It is safe to call on a nil Lock.
func (l *Lock) Release() error {
	if l == nil || l.lock == nil {
		return nil
	}
	if err := l.lock.Unlock(); err != nil {
		return fmt.Errorf("release lock: %w", err)
	}
	return nil
}
