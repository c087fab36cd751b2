package escape

import (
	"strings"
	"testing"
)

func TestPOSIXEscape(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"/tmp/subtitle.ass", "/tmp/subtitle.ass"},
		{"/tmp/a:b.ass", `/tmp/a\\:b.ass`},
		{"/tmp/it's.ass", `/tmp/it\\\'s.ass`},
		{"/tmp/[x],y;z.ass", `/tmp/\[x\]\,y\;z.ass`},
		{`/tmp/back\slash.ass`, `/tmp/back\\\\slash.ass`},
	}
	for _, tc := range tests {
		if got := (POSIX{}).Escape(tc.input); got != tc.want {
			t.Fatalf("POSIX.Escape(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestWindowsEscapeDoublesBackslashes(t *testing.T) {
	input := `C:\clips\sub.ass`
	posix := (POSIX{}).Escape(input)
	got := (Windows{}).Escape(input)
	if got != strings.ReplaceAll(posix, `\`, `\\`) {
		t.Fatalf("Windows.Escape(%q) = %q, want backslashes of %q doubled", input, got, posix)
	}
	if want := `C\\\\:\\\\\\\\clips\\\\\\\\sub.ass`; got != want {
		t.Fatalf("Windows.Escape(%q) = %q, want %q", input, got, want)
	}
}

func TestForPlatform(t *testing.T) {
	if _, ok := ForPlatform("windows").(Windows); !ok {
		t.Fatal("expected Windows policy for windows")
	}
	for _, goos := range []string{"linux", "darwin", "freebsd"} {
		if _, ok := ForPlatform(goos).(POSIX); !ok {
			t.Fatalf("expected POSIX policy for %s", goos)
		}
	}
	if Host() == nil {
		t.Fatal("Host returned nil policy")
	}
}
