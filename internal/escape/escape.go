// Package escape prepares file paths for embedding inside an ffmpeg filter
// graph, where ':' ',' ';' '[' ']' and quotes are syntax.
//
// A Policy is selected once from the host platform. It must only be applied to
// a value nested inside a filter expression (the subtitles= source), never to
// a top-level command argument.
package escape

import (
	"runtime"
	"strings"
)

// Policy turns a path into a filter-graph-safe literal.
type Policy interface {
	Escape(path string) string
}

const (
	// optionSpecials are significant when ffmpeg splits a filter's options.
	optionSpecials = `\':`
	// graphSpecials are significant when ffmpeg splits the filter graph.
	graphSpecials = `\'[],;`
)

// POSIX escapes the option level and then the filter-graph level.
type POSIX struct{}

// Escape implements Policy.
func (POSIX) Escape(path string) string {
	return escapeLevel(escapeLevel(path, optionSpecials), graphSpecials)
}

// Windows adds one backslash-doubling level on top of POSIX because ffmpeg's
// argument handling on Windows consumes one more level of backslashes.
type Windows struct{}

// Escape implements Policy.
func (Windows) Escape(path string) string {
	return escapeLevel(POSIX{}.Escape(path), `\`)
}

// ForPlatform returns the policy for a GOOS value.
func ForPlatform(goos string) Policy {
	if goos == "windows" {
		return Windows{}
	}
	return POSIX{}
}

// Host returns the policy for the running platform.
func Host() Policy {
	return ForPlatform(runtime.GOOS)
}

func escapeLevel(s, specials string) string {
	if !strings.ContainsAny(s, specials) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 8)
	for _, r := range s {
		if strings.ContainsRune(specials, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
