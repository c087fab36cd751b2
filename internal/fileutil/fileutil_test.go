package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRemoveIfExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "palette.png")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	removed, err := RemoveIfExists(path)
	if err != nil {
		t.Fatalf("RemoveIfExists: %v", err)
	}
	if !removed {
		t.Fatal("expected file to be reported as removed")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected file to be gone, stat err=%v", err)
	}

	removed, err = RemoveIfExists(path)
	if err != nil {
		t.Fatalf("second RemoveIfExists: %v", err)
	}
	if removed {
		t.Fatal("expected missing file to report removed=false")
	}
}

func TestRemoveIfExistsEmptyPath(t *testing.T) {
	removed, err := RemoveIfExists("")
	if err != nil || removed {
		t.Fatalf("expected no-op for empty path, got removed=%v err=%v", removed, err)
	}
}

func TestRemoveIfExistsRefusesDirectory(t *testing.T) {
	if _, err := RemoveIfExists(t.TempDir()); err == nil {
		t.Fatal("expected error when path is a directory")
	}
}

func TestReadableFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clip.mp4")
	if err := os.WriteFile(path, []byte("data"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := ReadableFile(path); err != nil {
		t.Fatalf("expected readable file, got %v", err)
	}
	if err := ReadableFile(dir); err == nil {
		t.Fatal("expected directory to be rejected")
	}
	if err := ReadableFile(filepath.Join(dir, "missing.mp4")); err == nil {
		t.Fatal("expected missing file to be rejected")
	}
}

func TestWritableDir(t *testing.T) {
	dir := t.TempDir()
	if err := WritableDir(dir); err != nil {
		t.Fatalf("expected temp dir to be writable, got %v", err)
	}
	file := filepath.Join(dir, "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := WritableDir(file); err == nil {
		t.Fatal("expected regular file to be rejected")
	}
	if err := WritableDir(filepath.Join(dir, "nope")); err == nil {
		t.Fatal("expected missing directory to be rejected")
	}
	if !IsRegularFile(file) || IsRegularFile(dir) {
		t.Fatal("IsRegularFile mismatch")
	}
}
