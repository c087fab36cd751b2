package command

import (
	"strconv"
	"strings"
)

// StepKind identifies one external invocation in a conversion.
type StepKind int

const (
	ExtractSubtitleTrack StepKind = iota
	ExtractSubtitleFile
	GeneratePalette
	CreateGIFTwoPass
	CreateGIFOnePass
	OptimizeGIF
	numStepKinds
)

var stepNames = [numStepKinds]string{
	ExtractSubtitleTrack: "extract-subtitle-from-track",
	ExtractSubtitleFile:  "extract-subtitle-from-file",
	GeneratePalette:      "generate-palette",
	CreateGIFTwoPass:     "create-gif-two-pass",
	CreateGIFOnePass:     "create-gif-one-pass",
	OptimizeGIF:          "optimize-gif",
}

func (k StepKind) String() string {
	if k < 0 || k >= numStepKinds {
		return "StepKind(" + strconv.Itoa(int(k)) + ")"
	}
	return stepNames[k]
}

// Tool identifies which external executable a step runs.
type Tool int

const (
	ToolTranscoder Tool = iota
	ToolOptimizer
)

// Tools maps each Tool to the executable to launch.
type Tools struct {
	FFmpeg   string
	Gifsicle string
}

// DefaultTools resolves both executables from PATH.
func DefaultTools() Tools {
	return Tools{FFmpeg: "ffmpeg", Gifsicle: "gifsicle"}
}

func (t Tools) binary(tool Tool) string {
	if tool == ToolOptimizer {
		return t.Gifsicle
	}
	return t.FFmpeg
}

// Step is a fully rendered invocation.
type Step struct {
	Kind   StepKind
	Binary string
	Args   []string
}

// CommandLine renders the step for display, quoting arguments that would be
// ambiguous when read back.
func (s Step) CommandLine() string {
	parts := make([]string, 0, len(s.Args)+1)
	parts = append(parts, quoteArg(s.Binary))
	for _, arg := range s.Args {
		parts = append(parts, quoteArg(arg))
	}
	return strings.Join(parts, " ")
}

func quoteArg(arg string) string {
	if arg == "" || strings.ContainsAny(arg, " \t\n\"';[]") {
		return strconv.Quote(arg)
	}
	return arg
}
