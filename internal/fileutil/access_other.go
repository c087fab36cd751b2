//go:build !unix

package fileutil

import (
	"os"
)

func canRead(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	return f.Close()
}

func canWrite(dir string) error {
	f, err := os.CreateTemp(dir, ".video2gif-access-*")
	if err != nil {
		return err
	}
	name := f.Name()
	_ = f.Close()
	return os.Remove(name)
}
