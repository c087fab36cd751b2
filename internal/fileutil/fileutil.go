// Package fileutil holds small filesystem helpers shared by the validator and
// the pipeline: access checks and idempotent removal.
package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// RemoveIfExists deletes path when it exists as a regular file. It reports
// whether a file was removed. A missing file is not an error.
func RemoveIfExists(path string) (bool, error) {
	if path == "" {
		return false, nil
	}
	info, err := os.Lstat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("stat %q: %w", path, err)
	}
	if info.IsDir() {
		return false, fmt.Errorf("remove %q: is a directory", path)
	}
	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("remove %q: %w", path, err)
	}
	return true, nil
}

// IsRegularFile reports whether path names an existing regular file.
func IsRegularFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// ReadableFile verifies that path is a regular file the process may read.
func ReadableFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s is not a regular file", path)
	}
	return canRead(path)
}

// WritableDir verifies that dir is an existing directory the process may
// create files in.
func WritableDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}
	return canWrite(dir)
}
