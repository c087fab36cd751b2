package params

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"video2gif/internal/fileutil"
)

// CheckReadable verifies path is a readable regular file and returns it.
func CheckReadable(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", inputError(ErrPathNotReadable, path, "a readable file")
	}
	if err := fileutil.ReadableFile(path); err != nil {
		return "", &InputError{Kind: ErrPathNotReadable, Input: path, Expected: "a readable file", Err: err}
	}
	return path, nil
}

// CheckWritableDestination verifies the directory that will hold path is
// writable and returns path unchanged.
func CheckWritableDestination(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", inputError(ErrPathNotWritable, path, "a path in a writable directory")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", &InputError{Kind: ErrPathNotWritable, Input: path, Expected: "a path in a writable directory", Err: err}
	}
	if err := fileutil.WritableDir(filepath.Dir(abs)); err != nil {
		return "", &InputError{Kind: ErrPathNotWritable, Input: path, Expected: "a path in a writable directory", Err: err}
	}
	return path, nil
}

// NormalizeCharset upper-cases an encoding name and drops all whitespace,
// so " utf 8 " becomes "UTF8".
func NormalizeCharset(raw string) string {
	compact := strings.Join(strings.Fields(raw), "")
	return cases.Upper(language.Und).String(compact)
}
