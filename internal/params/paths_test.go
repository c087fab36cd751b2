package params

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestCheckReadable(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "clip.mkv")
	if err := os.WriteFile(src, []byte("video"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got, err := CheckReadable(src); err != nil || got != src {
		t.Fatalf("CheckReadable = %q, %v", got, err)
	}
	if _, err := CheckReadable(filepath.Join(dir, "missing.mkv")); !errors.Is(err, ErrPathNotReadable) {
		t.Fatalf("expected ErrPathNotReadable, got %v", err)
	}
	if _, err := CheckReadable(dir); !errors.Is(err, ErrPathNotReadable) {
		t.Fatalf("expected directory to be rejected, got %v", err)
	}
}

func TestCheckWritableDestination(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "out.gif")
	if got, err := CheckWritableDestination(dest); err != nil || got != dest {
		t.Fatalf("CheckWritableDestination = %q, %v", got, err)
	}
	missing := filepath.Join(dir, "no", "such", "out.gif")
	if _, err := CheckWritableDestination(missing); !errors.Is(err, ErrPathNotWritable) {
		t.Fatalf("expected ErrPathNotWritable, got %v", err)
	}
	if _, err := CheckWritableDestination(""); !errors.Is(err, ErrPathNotWritable) {
		t.Fatalf("expected empty path to be rejected, got %v", err)
	}
}

func TestNormalizeCharset(t *testing.T) {
	tests := map[string]string{
		"UTF-8":        "UTF-8",
		"utf-8":        "UTF-8",
		" utf 8 ":      "UTF8",
		"iso-8859-1":   "ISO-8859-1",
		"windows 1252": "WINDOWS1252",
	}
	for input, want := range tests {
		if got := NormalizeCharset(input); got != want {
			t.Fatalf("NormalizeCharset(%q) = %q, want %q", input, got, want)
		}
	}
}
