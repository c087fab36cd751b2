// Package testsupport builds throwaway configurations and stub tool
// executables for tests.
package testsupport

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"video2gif/internal/config"
)

// TouchLastArg is a stub body that creates the file named by its final
// argument, which is where ffmpeg and gifsicle write their output.
const TouchLastArg = "for last; do :; done\n: > \"$last\"\n"

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config whose work directory is unique to the test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.WorkDir = filepath.Join(base, "work")
	if err := os.MkdirAll(cfgVal.Paths.WorkDir, 0o755); err != nil {
		t.Fatalf("mkdir work dir: %v", err)
	}

	builder := &configBuilder{t: t, baseDir: base, cfg: &cfgVal}
	for _, opt := range opts {
		opt(builder)
	}
	return builder.cfg
}

// WithStubbedTools writes ffmpeg and gifsicle stubs running the given shell
// bodies and points the config at them. Tests using it are skipped on
// Windows.
func WithStubbedTools(ffmpegBody, gifsicleBody string) ConfigOption {
	return func(b *configBuilder) {
		if runtime.GOOS == "windows" {
			b.t.Skip("shell stubs require a POSIX shell")
		}
		binDir := filepath.Join(b.baseDir, "bin")
		b.cfg.Tools.FFmpeg = WriteExecutable(b.t, binDir, "ffmpeg", ffmpegBody)
		b.cfg.Tools.Gifsicle = WriteExecutable(b.t, binDir, "gifsicle", gifsicleBody)
	}
}

// WriteExecutable writes a /bin/sh script and returns its path.
func WriteExecutable(t testing.TB, dir, name, body string) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755); err != nil {
		t.Fatalf("write stub %s: %v", name, err)
	}
	return path
}

// WriteConfig encodes cfg as TOML at path.
func WriteConfig(t testing.TB, path string, cfg *config.Config) {
	t.Helper()
	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("encode config: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}
