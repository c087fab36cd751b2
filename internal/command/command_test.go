package command

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"video2gif/internal/escape"
	"video2gif/internal/params"
)

func fullValues() *Values {
	return NewValues().
		Set(FieldLog, "quiet").
		Set(FieldCharenc, "UTF-8").
		Set(FieldSource, "in.mp4").
		Set(FieldTrack, "0").
		Set(FieldSubtitleSource, "subs.srt").
		Set(FieldSubtitles, "work/s.ass").
		Set(FieldSubFilter, "").
		Set(FieldFilters, "fps=15,scale=640:-1:flags=lanczos").
		Set(FieldMode, "full").
		Set(FieldPalette, "work/p.png").
		Set(FieldPaletteUse, "paletteuse=diff_mode=rectangle:dither=bayer:bayer_scale=2:new=0").
		Set(FieldGIF, "out.gif").
		Set(FieldOptimized, "final.gif").
		SetTrim(nil)
}

func TestBuildRendersEveryKind(t *testing.T) {
	tools := DefaultTools()
	cases := []struct {
		kind   StepKind
		binary string
		want   []string
	}{
		{
			kind:   ExtractSubtitleTrack,
			binary: "ffmpeg",
			want:   []string{"-v", "quiet", "-y", "-sub_charenc", "UTF-8", "-i", "in.mp4", "-map", "0:s:0", "work/s.ass"},
		},
		{
			kind:   ExtractSubtitleFile,
			binary: "ffmpeg",
			want:   []string{"-v", "quiet", "-y", "-sub_charenc", "UTF-8", "-i", "subs.srt", "work/s.ass"},
		},
		{
			kind:   GeneratePalette,
			binary: "ffmpeg",
			want:   []string{"-v", "quiet", "-y", "-i", "in.mp4", "-vf", "fps=15,scale=640:-1:flags=lanczos,palettegen=stats_mode=full", "work/p.png"},
		},
		{
			kind:   CreateGIFTwoPass,
			binary: "ffmpeg",
			want: []string{
				"-v", "quiet", "-y", "-i", "in.mp4", "-i", "work/p.png", "-lavfi",
				"fps=15,scale=640:-1:flags=lanczos[x];[x][1:v]paletteuse=diff_mode=rectangle:dither=bayer:bayer_scale=2:new=0",
				"-f", "gif", "out.gif",
			},
		},
		{
			kind:   CreateGIFOnePass,
			binary: "ffmpeg",
			want:   []string{"-v", "quiet", "-y", "-i", "in.mp4", "-vf", "fps=15,scale=640:-1:flags=lanczos", "-f", "gif", "out.gif"},
		},
		{
			kind:   OptimizeGIF,
			binary: "gifsicle",
			want:   []string{"-b", "-O3", "out.gif", "-o", "final.gif"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			step, err := Build(tc.kind, tools, fullValues())
			if err != nil {
				t.Fatalf("Build: %v", err)
			}
			if step.Kind != tc.kind {
				t.Fatalf("kind = %v, want %v", step.Kind, tc.kind)
			}
			if step.Binary != tc.binary {
				t.Fatalf("binary = %q, want %q", step.Binary, tc.binary)
			}
			if !reflect.DeepEqual(step.Args, tc.want) {
				t.Fatalf("args mismatch\n got: %q\nwant: %q", step.Args, tc.want)
			}
		})
	}
}

func TestBuildSplicesTrimWindow(t *testing.T) {
	values := fullValues().SetTrim([]string{"-ss", "1.500000", "-t", "2.000000"})
	step, err := Build(GeneratePalette, DefaultTools(), values)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	want := []string{"-v", "quiet", "-y", "-ss", "1.500000", "-t", "2.000000", "-i", "in.mp4"}
	if !reflect.DeepEqual(step.Args[:len(want)], want) {
		t.Fatalf("args prefix = %q, want %q", step.Args[:len(want)], want)
	}
}

func TestBuildSubtitleFilterPrefix(t *testing.T) {
	values := fullValues().Set(FieldSubFilter, SubtitleFilter(`work/s.ass`, "UTF-8"))
	step, err := Build(CreateGIFOnePass, DefaultTools(), values)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	want := "subtitles=filename=work/s.ass:charenc=UTF-8,fps=15,scale=640:-1:flags=lanczos"
	if step.Args[6] != want {
		t.Fatalf("filter = %q, want %q", step.Args[6], want)
	}
}

func TestBuildMissingField(t *testing.T) {
	values := NewValues().Set(FieldGIF, "out.gif").SetTrim(nil)
	_, err := Build(OptimizeGIF, DefaultTools(), values)
	if !errors.Is(err, ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got %v", err)
	}
	if !strings.Contains(err.Error(), "optimized") {
		t.Fatalf("error should name the field: %v", err)
	}
}

func TestBuildMissingTrim(t *testing.T) {
	values := fullValues()
	values.trimSet = false
	_, err := Build(CreateGIFOnePass, DefaultTools(), values)
	if !errors.Is(err, ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got %v", err)
	}
}

func TestBuildUsesConfiguredTools(t *testing.T) {
	tools := Tools{FFmpeg: "/opt/ffmpeg/bin/ffmpeg", Gifsicle: "/opt/gifsicle"}
	step, err := Build(OptimizeGIF, tools, fullValues())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if step.Binary != "/opt/gifsicle" {
		t.Fatalf("binary = %q", step.Binary)
	}
	if _, err := Build(GeneratePalette, Tools{}, fullValues()); err == nil {
		t.Fatal("expected error when no executable is configured")
	}
}

func TestBuildDoesNotReexpandValues(t *testing.T) {
	values := fullValues().Set(FieldSource, "{palette}.mp4")
	step, err := Build(CreateGIFOnePass, DefaultTools(), values)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if step.Args[4] != "{palette}.mp4" {
		t.Fatalf("source = %q", step.Args[4])
	}
}

func TestFragments(t *testing.T) {
	if got := BaseFilters(10, params.Size{Width: 320, Height: params.KeepAspect}, params.ResizeBicubic); got != "fps=10,scale=320:-1:flags=bicubic" {
		t.Fatalf("BaseFilters = %q", got)
	}
	if got := PaletteUse(params.DitherSierra2, 0, true); got != "paletteuse=diff_mode=rectangle:dither=sierra2:bayer_scale=0:new=1" {
		t.Fatalf("PaletteUse = %q", got)
	}
	if got := SubtitleFilter(`a\\:b.ass`, "CP1252"); got != `subtitles=filename=a\\:b.ass:charenc=CP1252,` {
		t.Fatalf("SubtitleFilter = %q", got)
	}
}

func TestSubtitleFilterNamesTheFileOption(t *testing.T) {
	// A path segment ending in "=" must not be read as an option key.
	got := SubtitleFilter(escape.POSIX{}.Escape("/tmp/run=1/s.ass"), "UTF-8")
	if got != "subtitles=filename=/tmp/run=1/s.ass:charenc=UTF-8," {
		t.Fatalf("SubtitleFilter = %q", got)
	}
}

func TestStepKindString(t *testing.T) {
	if OptimizeGIF.String() != "optimize-gif" {
		t.Fatalf("unexpected name %q", OptimizeGIF.String())
	}
	if got := StepKind(42).String(); got != "StepKind(42)" {
		t.Fatalf("unexpected name %q", got)
	}
	if _, ok := TemplateFor(StepKind(-1)); ok {
		t.Fatal("expected no template for invalid kind")
	}
}

func TestCommandLineQuotes(t *testing.T) {
	step := Step{Binary: "ffmpeg", Args: []string{"-i", "my clip.mp4", "-lavfi", "a[x];[x]b"}}
	want := `ffmpeg -i "my clip.mp4" -lavfi "a[x];[x]b"`
	if got := step.CommandLine(); got != want {
		t.Fatalf("CommandLine = %q, want %q", got, want)
	}
}
