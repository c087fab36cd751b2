package params

import (
	"errors"
	"strings"
	"testing"
)

func TestParseChoices(t *testing.T) {
	if got, err := ParseResize("Bicubic"); err != nil || got != ResizeBicubic {
		t.Fatalf("ParseResize = %q, %v", got, err)
	}
	if got, err := ParseDither(" sierra2_4a "); err != nil || got != DitherSierra2_4A {
		t.Fatalf("ParseDither = %q, %v", got, err)
	}
	if got, err := ParseMode("single"); err != nil || got != ModeSingle {
		t.Fatalf("ParseMode = %q, %v", got, err)
	}
	if got, err := ParseVerbosity("warning"); err != nil || got != VerbosityWarning {
		t.Fatalf("ParseVerbosity = %v, %v", got, err)
	}
}

func TestParseChoicesRejectUnknown(t *testing.T) {
	checks := []struct {
		name string
		err  error
	}{
		{"resize", func() error { _, err := ParseResize("nearest"); return err }()},
		{"dither", func() error { _, err := ParseDither("atkinson"); return err }()},
		{"mode", func() error { _, err := ParseMode("partial"); return err }()},
		{"verbosity", func() error { _, err := ParseVerbosity("loud"); return err }()},
		{"bayer", func() error { _, err := ParseBayerScale("6"); return err }()},
		{"bayer-nan", func() error { _, err := ParseBayerScale("two"); return err }()},
	}
	for _, c := range checks {
		if !errors.Is(c.err, ErrInvalidChoice) {
			t.Fatalf("%s: expected ErrInvalidChoice, got %v", c.name, c.err)
		}
	}
}

func TestChoiceErrorListsAllowedValues(t *testing.T) {
	_, err := ParseMode("partial")
	if err == nil || !strings.Contains(err.Error(), "full|diff|single") {
		t.Fatalf("expected allowed values in message, got %v", err)
	}
}

func TestVerbosityOrdering(t *testing.T) {
	if VerbosityWarning.ShowsToolOutput() {
		t.Fatal("warning must not surface tool output")
	}
	for _, v := range []Verbosity{VerbosityInfo, VerbosityVerbose, VerbosityDebug, VerbosityTrace} {
		if !v.ShowsToolOutput() {
			t.Fatalf("%s should surface tool output", v)
		}
	}
	names := VerbosityNames()
	if len(names) != 8 || names[0] != "quiet" || names[7] != "trace" {
		t.Fatalf("unexpected verbosity names: %v", names)
	}
}

func TestParseBayerScaleBounds(t *testing.T) {
	for _, input := range []string{"0", "2", "5"} {
		if _, err := ParseBayerScale(input); err != nil {
			t.Fatalf("ParseBayerScale(%q): %v", input, err)
		}
	}
	if err := CheckBayerScale(-1); !errors.Is(err, ErrInvalidChoice) {
		t.Fatalf("expected -1 to be rejected, got %v", err)
	}
}
