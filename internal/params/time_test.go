package params

import (
	"errors"
	"testing"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"01:02:03.250", 3723.250},
		{"02:03", 123.0},
		{"5", 5.0},
		{"00:00:01.050", 1.050},
		{"10.5", 10.5},
		{"1:00:00", 3600},
		{" 07 ", 7},
	}
	for _, tc := range tests {
		got, err := ParseTime(tc.input)
		if err != nil {
			t.Fatalf("ParseTime(%q) returned error: %v", tc.input, err)
		}
		if !got.IsSet() {
			t.Fatalf("ParseTime(%q) returned unset offset", tc.input)
		}
		if got.Seconds() != tc.want {
			t.Fatalf("ParseTime(%q) = %v, want %v", tc.input, got.Seconds(), tc.want)
		}
	}
}

func TestParseTimeRejectsMalformed(t *testing.T) {
	for _, input := range []string{"", "   ", "1,5", "00:01,500", "5.", "01:02.", "1:2:3:4", "1.2.3", "a", "01:xx", "-5", "+5", ".5", "1:", "1::2"} {
		if _, err := ParseTime(input); !errors.Is(err, ErrInvalidTime) {
			t.Fatalf("ParseTime(%q) expected ErrInvalidTime, got %v", input, err)
		}
	}
}

func TestParseTimeRejectsOverflow(t *testing.T) {
	for _, input := range []string{
		"5124095576030432:00:00",
		"3000000000000000:00:00",
		"00:153722867280912931:00",
		"99999999999999999999",
		"2562047788015215:30:08",
	} {
		got, err := ParseTime(input)
		if !errors.Is(err, ErrInvalidTime) {
			t.Fatalf("ParseTime(%q) = %v, %v; want ErrInvalidTime", input, got.Seconds(), err)
		}
	}
}

func TestParseTimeKeepsLongFractions(t *testing.T) {
	got, err := ParseTime("00:00:01.0500000000000000000001")
	if err != nil {
		t.Fatalf("ParseTime: %v", err)
	}
	if got.Seconds() < 1.04 || got.Seconds() > 1.06 {
		t.Fatalf("seconds = %v, want about 1.05", got.Seconds())
	}
}

func TestOffsetZeroValueIsUnset(t *testing.T) {
	var o Offset
	if o.IsSet() {
		t.Fatal("zero Offset must be unset")
	}
	if o.String() != "" {
		t.Fatalf("unset offset should render empty, got %q", o.String())
	}
	if At(2.5).String() != "2.5" {
		t.Fatalf("unexpected rendering: %q", At(2.5).String())
	}
}
