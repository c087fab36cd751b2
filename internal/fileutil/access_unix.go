//go:build unix

package fileutil

import "golang.org/x/sys/unix"

func canRead(path string) error {
	return unix.Access(path, unix.R_OK)
}

func canWrite(dir string) error {
	return unix.Access(dir, unix.W_OK|unix.X_OK)
}
