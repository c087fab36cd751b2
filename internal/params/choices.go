package params

import (
	"strconv"
	"strings"
)

// ResizeAlgorithm selects the transcoder's scaling kernel.
type ResizeAlgorithm string

const (
	ResizeLanczos  ResizeAlgorithm = "lanczos"
	ResizeBicubic  ResizeAlgorithm = "bicubic"
	ResizeSpline16 ResizeAlgorithm = "spline16"
	ResizeSpline36 ResizeAlgorithm = "spline36"
	ResizePoint    ResizeAlgorithm = "point"
	ResizeBilinear ResizeAlgorithm = "bilinear"
)

// ResizeAlgorithms lists the accepted resize algorithms, default first.
var ResizeAlgorithms = []ResizeAlgorithm{
	ResizeLanczos, ResizeBicubic, ResizeSpline16, ResizeSpline36, ResizePoint, ResizeBilinear,
}

// DitherMode selects the palette-apply dithering algorithm.
type DitherMode string

const (
	DitherBayer          DitherMode = "bayer"
	DitherFloydSteinberg DitherMode = "floyd_steinberg"
	DitherSierra2        DitherMode = "sierra2"
	DitherSierra2_4A     DitherMode = "sierra2_4a"
	DitherNone           DitherMode = "none"
)

// DitherModes lists the accepted dithering algorithms, default first.
var DitherModes = []DitherMode{
	DitherBayer, DitherFloydSteinberg, DitherSierra2, DitherSierra2_4A, DitherNone,
}

// GenerationMode selects how palettes are computed.
type GenerationMode string

const (
	// ModeFull computes one palette over the whole clip.
	ModeFull GenerationMode = "full"
	// ModeDiff weights the palette toward regions that change between frames.
	ModeDiff GenerationMode = "diff"
	// ModeSingle computes a new palette for every frame.
	ModeSingle GenerationMode = "single"
)

// GenerationModes lists the accepted generation modes, default first.
var GenerationModes = []GenerationMode{ModeFull, ModeDiff, ModeSingle}

// Bayer scale bounds accepted by the palette-apply filter.
const (
	MinBayerScale     = 0
	MaxBayerScale     = 5
	DefaultBayerScale = 2
)

// Verbosity is the transcoder log level. Values are ordered from least to
// most output.
type Verbosity int

const (
	VerbosityQuiet Verbosity = iota
	VerbosityFatal
	VerbosityError
	VerbosityWarning
	VerbosityInfo
	VerbosityVerbose
	VerbosityDebug
	VerbosityTrace
)

var verbosityNames = [...]string{"quiet", "fatal", "error", "warning", "info", "verbose", "debug", "trace"}

// VerbosityNames returns the accepted verbosity names in order.
func VerbosityNames() []string {
	out := make([]string, len(verbosityNames))
	copy(out, verbosityNames[:])
	return out
}

func (v Verbosity) String() string {
	if v < VerbosityQuiet || int(v) >= len(verbosityNames) {
		return "Verbosity(" + strconv.Itoa(int(v)) + ")"
	}
	return verbosityNames[v]
}

// ShowsToolOutput reports whether child process output and command lines
// should be surfaced. Everything from info upward counts as debug output.
func (v Verbosity) ShowsToolOutput() bool {
	return v >= VerbosityInfo
}

// ParseResize validates a resize algorithm name.
func ParseResize(raw string) (ResizeAlgorithm, error) {
	return parseChoice(raw, ResizeAlgorithms)
}

// ParseDither validates a dithering algorithm name.
func ParseDither(raw string) (DitherMode, error) {
	return parseChoice(raw, DitherModes)
}

// ParseMode validates a palette generation mode.
func ParseMode(raw string) (GenerationMode, error) {
	return parseChoice(raw, GenerationModes)
}

// ParseVerbosity validates a transcoder log level name.
func ParseVerbosity(raw string) (Verbosity, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	for i, name := range verbosityNames {
		if name == value {
			return Verbosity(i), nil
		}
	}
	return VerbosityQuiet, inputError(ErrInvalidChoice, raw, oneOf(verbosityNames[:]))
}

// ParseBayerScale parses a Bayer scale in [MinBayerScale, MaxBayerScale].
func ParseBayerScale(raw string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, inputError(ErrInvalidChoice, raw, bayerRange())
	}
	if err := CheckBayerScale(value); err != nil {
		return 0, err
	}
	return value, nil
}

// CheckBayerScale validates an already numeric Bayer scale.
func CheckBayerScale(value int) error {
	if value < MinBayerScale || value > MaxBayerScale {
		return inputError(ErrInvalidChoice, strconv.Itoa(value), bayerRange())
	}
	return nil
}

func bayerRange() string {
	return "an integer in [" + strconv.Itoa(MinBayerScale) + " - " + strconv.Itoa(MaxBayerScale) + "]"
}

func parseChoice[T ~string](raw string, allowed []T) (T, error) {
	value := T(strings.ToLower(strings.TrimSpace(raw)))
	for _, candidate := range allowed {
		if candidate == value {
			return candidate, nil
		}
	}
	names := make([]string, len(allowed))
	for i, candidate := range allowed {
		names[i] = string(candidate)
	}
	var zero T
	return zero, inputError(ErrInvalidChoice, raw, oneOf(names))
}

func oneOf(names []string) string {
	return "one of (" + strings.Join(names, "|") + ")"
}
