// Package artifacts names and cleans up the temporary files of a conversion
// run.
package artifacts

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"video2gif/internal/fileutil"
)

const stampLayout = "20060102-150405"

// NewRunID returns a fresh run identifier.
func NewRunID() string {
	return uuid.NewString()
}

// Set holds the temporary paths of one run. Paths are fixed when the set is
// created; nothing is written until a step produces them.
type Set struct {
	RunID     string
	Subtitles string
	Palette   string
	// Intermediate is the pre-optimization GIF, empty when the run does not
	// optimize.
	Intermediate string
}

// New names a run's artifacts inside workDir. The one-second timestamp keeps
// names sortable; the run ID prefix keeps runs started in the same second
// apart.
func New(workDir string, now time.Time, runID, paletteExt string) Set {
	prefix := fmt.Sprintf("%s_%s", now.Format(stampLayout), shortID(runID))
	return Set{
		RunID:     runID,
		Subtitles: filepath.Join(workDir, prefix+"_subtitles.ass"),
		Palette:   filepath.Join(workDir, prefix+"_palette"+paletteExt),
	}
}

func shortID(runID string) string {
	id := strings.ReplaceAll(runID, "-", "")
	if len(id) > 8 {
		id = id[:8]
	}
	if id == "" {
		id = "run"
	}
	return id
}

// Paths lists every artifact path that is set.
func (s Set) Paths() []string {
	out := make([]string, 0, 3)
	for _, path := range []string{s.Subtitles, s.Palette, s.Intermediate} {
		if path != "" {
			out = append(out, path)
		}
	}
	return out
}

// Remove deletes a single artifact. A missing file is not an error.
func Remove(path string) error {
	_, err := fileutil.RemoveIfExists(path)
	return err
}

// Sweep deletes every artifact in the set plus any extra paths, continuing
// past failures. It returns the removed paths and the joined errors.
func (s Set) Sweep(extra ...string) ([]string, error) {
	var removed []string
	var errs []error
	seen := make(map[string]struct{})
	for _, path := range append(s.Paths(), extra...) {
		if path == "" {
			continue
		}
		if _, dup := seen[path]; dup {
			continue
		}
		seen[path] = struct{}{}
		ok, err := fileutil.RemoveIfExists(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if ok {
			removed = append(removed, path)
		}
	}
	return removed, errors.Join(errs...)
}
