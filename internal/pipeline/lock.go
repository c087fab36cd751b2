package pipeline

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"video2gif/internal/fileutil"
	"video2gif/internal/services"
)

// ErrDestinationBusy reports that another conversion holds the destination.
var ErrDestinationBusy = errors.New("destination is locked by another conversion")

const lockAttempts = 3

// LockPath returns the advisory lock file guarding destination. It sits next
// to the destination as a hidden file.
func LockPath(destination string) string {
	dir, base := filepath.Split(destination)
	return filepath.Join(dir, "."+base+".lock")
}

// lockDestination takes the advisory lock for destination. A lock only counts
// when the locked handle is still the file at LockPath; a holder that released
// and removed the file in between leaves us with an orphaned inode, so we
// retry on the fresh file.
//
// The release func removes the lock file while still holding the lock and
// only then unlocks.
func lockDestination(destination string) (func() error, error) {
	path := LockPath(destination)
	busy := services.Wrap(services.ErrFilesystem, "init", "lock destination", destination, ErrDestinationBusy)

	for range lockAttempts {
		lock := flock.New(path)
		ok, err := lock.TryLock()
		if err != nil {
			return nil, services.Wrap(services.ErrFilesystem, "init", "lock destination", path, err)
		}
		if !ok {
			return nil, busy
		}
		current, err := lockIsCurrent(lock, path)
		if err != nil {
			return nil, services.Wrap(services.ErrFilesystem, "init", "lock destination", path, errors.Join(err, lock.Unlock()))
		}
		if current {
			return func() error {
				_, rmErr := fileutil.RemoveIfExists(path)
				return errors.Join(rmErr, lock.Unlock())
			}, nil
		}
		if err := lock.Unlock(); err != nil {
			return nil, services.Wrap(services.ErrFilesystem, "init", "unlock stale lock", path, err)
		}
	}
	return nil, busy
}

// lockIsCurrent reports whether the handle held by lock is the file now at
// path.
func lockIsCurrent(lock *flock.Flock, path string) (bool, error) {
	held, err := lock.Stat()
	if err != nil {
		return false, err
	}
	onDisk, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return os.SameFile(held, onDisk), nil
}
