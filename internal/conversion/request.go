// Package conversion holds the validated description of a single
// video-to-GIF run and the values derived from it.
package conversion

import (
	"fmt"
	"path/filepath"
	"strconv"

	"video2gif/internal/params"
	"video2gif/internal/services"
)

// UnoptimizedPrefix is prepended to the destination base name for the GIF
// written before the optimizer runs.
const UnoptimizedPrefix = "not_opt_"

// SubtitleKind identifies where burned-in subtitles come from.
type SubtitleKind int

const (
	SubtitlesNone SubtitleKind = iota
	SubtitlesTrack
	SubtitlesFile
)

// SubtitleSource selects subtitles to burn in. Track and File are mutually
// exclusive.
type SubtitleSource struct {
	Track    int
	HasTrack bool
	File     string
}

// FromTrack burns the source's embedded subtitle stream at index.
func FromTrack(index int) SubtitleSource {
	return SubtitleSource{Track: index, HasTrack: true}
}

// FromFile burns subtitles read from an external file.
func FromFile(path string) SubtitleSource {
	return SubtitleSource{File: path}
}

// Kind reports which source is selected. A conflicting source reports the
// track; Validate rejects it before it matters.
func (s SubtitleSource) Kind() SubtitleKind {
	switch {
	case s.HasTrack:
		return SubtitlesTrack
	case s.File != "":
		return SubtitlesFile
	default:
		return SubtitlesNone
	}
}

// Request is one conversion. Build it, call Validate once, and treat it as
// read-only afterwards.
type Request struct {
	Source      string
	Destination string

	FPS    int
	Size   params.Size
	Resize params.ResizeAlgorithm
	Start  params.Offset
	End    params.Offset

	Dither     params.DitherMode
	BayerScale int
	Mode       params.GenerationMode
	Verbosity  params.Verbosity

	Subtitles SubtitleSource
	Charset   string

	OnePass  bool
	Optimize bool
}

// Default returns a request populated with the stock conversion settings and
// no paths.
func Default() Request {
	return Request{
		FPS:        15,
		Size:       params.Size{Width: 640, Height: params.KeepAspect},
		Resize:     params.ResizeLanczos,
		Dither:     params.DitherBayer,
		BayerScale: params.DefaultBayerScale,
		Mode:       params.ModeFull,
		Verbosity:  params.VerbosityQuiet,
		Charset:    "UTF-8",
	}
}

// Validate checks every field and the cross-field invariants. Failures are
// tagged with services.ErrValidation and keep the params sentinel reachable
// through errors.Is.
func (r *Request) Validate() error {
	if r == nil {
		return services.Wrap(services.ErrValidation, "request", "validate", "request is nil", nil)
	}
	checks := []struct {
		field string
		check func() error
	}{
		{"source", func() error { _, err := params.CheckReadable(r.Source); return err }},
		{"destination", func() error { _, err := params.CheckWritableDestination(r.Destination); return err }},
		{"fps", r.checkFPS},
		{"size", r.checkSize},
		{"resize", func() error { return checkChoice(r.Resize, params.ParseResize) }},
		{"dither", func() error { return checkChoice(r.Dither, params.ParseDither) }},
		{"bayer_scale", func() error { return params.CheckBayerScale(r.BayerScale) }},
		{"mode", func() error { return checkChoice(r.Mode, params.ParseMode) }},
		{"log", r.checkVerbosity},
		{"trim", r.checkTrim},
		{"subtitles", r.checkSubtitles},
		{"encoding", r.checkCharset},
	}
	for _, c := range checks {
		if err := c.check(); err != nil {
			return services.Wrap(services.ErrValidation, "request", "validate", c.field, err)
		}
	}
	return nil
}

func (r *Request) checkFPS() error {
	if r.FPS < 0 {
		return &params.InputError{Kind: params.ErrInvalidInt, Input: strconv.Itoa(r.FPS), Expected: "a non-negative integer"}
	}
	return nil
}

func (r *Request) checkSize() error {
	valid := func(side int) bool { return side > 0 || side == params.KeepAspect }
	if !valid(r.Size.Width) || !valid(r.Size.Height) {
		return &params.InputError{Kind: params.ErrInvalidSize, Input: r.Size.String(), Expected: "positive sides or keep-aspect"}
	}
	return nil
}

func (r *Request) checkVerbosity() error {
	if r.Verbosity < params.VerbosityQuiet || r.Verbosity > params.VerbosityTrace {
		return &params.InputError{Kind: params.ErrInvalidChoice, Input: r.Verbosity.String(), Expected: "a known log level"}
	}
	return nil
}

func (r *Request) checkTrim() error {
	for _, offset := range []params.Offset{r.Start, r.End} {
		if offset.IsSet() && offset.Seconds() < 0 {
			return &params.InputError{Kind: params.ErrInvalidTime, Input: offset.String(), Expected: "a non-negative offset"}
		}
	}
	if r.Start.IsSet() && r.End.IsSet() && r.Start.Seconds() >= r.End.Seconds() {
		return &params.InputError{
			Kind:     params.ErrInvalidTrimRange,
			Input:    r.Start.String() + "-" + r.End.String(),
			Expected: "start before end",
		}
	}
	return nil
}

func (r *Request) checkSubtitles() error {
	s := r.Subtitles
	if s.HasTrack && s.File != "" {
		return &params.InputError{
			Kind:     params.ErrConflictingSubtitles,
			Input:    fmt.Sprintf("track %d and file %s", s.Track, s.File),
			Expected: "a subtitle track or a subtitle file",
		}
	}
	if s.HasTrack && s.Track < 0 {
		return &params.InputError{Kind: params.ErrInvalidInt, Input: strconv.Itoa(s.Track), Expected: "a non-negative integer"}
	}
	if s.File != "" {
		if _, err := params.CheckReadable(s.File); err != nil {
			return err
		}
	}
	return nil
}

func (r *Request) checkCharset() error {
	if r.Subtitles.Kind() != SubtitlesNone && r.Charset == "" {
		return &params.InputError{Kind: params.ErrInvalidChoice, Input: r.Charset, Expected: "a character encoding name"}
	}
	return nil
}

func checkChoice[T ~string](value T, parse func(string) (T, error)) error {
	parsed, err := parse(string(value))
	if err != nil {
		return err
	}
	if parsed != value {
		return &params.InputError{Kind: params.ErrInvalidChoice, Input: string(value), Expected: "canonical " + string(parsed)}
	}
	return nil
}

// TrimArgs returns the trim-window fragment: "-ss START" when a start is set
// and "-t DURATION" when an end is set. The duration is measured from the
// start when both are present.
func (r *Request) TrimArgs() []string {
	args := make([]string, 0, 4)
	if r.Start.IsSet() {
		args = append(args, "-ss", formatSeconds(r.Start.Seconds()))
	}
	if r.End.IsSet() {
		duration := r.End.Seconds()
		if r.Start.IsSet() {
			duration -= r.Start.Seconds()
		}
		args = append(args, "-t", formatSeconds(duration))
	}
	return args
}

func formatSeconds(seconds float64) string {
	return fmt.Sprintf("%f", seconds)
}

// PaletteSettings are the palette details derived from the generation mode.
type PaletteSettings struct {
	// Extension of the palette artifact. Single mode emits one palette per
	// frame, which needs a video container instead of an image.
	Extension   string
	NewPerFrame bool
	StatsMode   string
}

// Palette derives the palette settings for the request's mode.
func (r *Request) Palette() PaletteSettings {
	if r.Mode == params.ModeSingle {
		return PaletteSettings{Extension: ".mkv", NewPerFrame: true, StatsMode: string(r.Mode)}
	}
	return PaletteSettings{Extension: ".png", StatsMode: string(r.Mode)}
}

// PrimaryOutput is where the transcoder writes the GIF. With optimization on,
// that is a sibling of the destination so the optimizer can write the
// requested name.
func (r *Request) PrimaryOutput() string {
	if !r.Optimize {
		return r.Destination
	}
	dir, base := filepath.Split(r.Destination)
	return filepath.Join(dir, UnoptimizedPrefix+base)
}

// Steps reports how many external invocations the request needs.
func (r *Request) Steps() int {
	n := 1
	if r.Subtitles.Kind() != SubtitlesNone {
		n++
	}
	if !r.OnePass {
		n++
	}
	if r.Optimize {
		n++
	}
	return n
}
