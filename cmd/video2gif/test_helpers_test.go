package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"video2gif/internal/testsupport"
)

type cliResult struct {
	stdout string
	stderr string
	err    error
}

func runCLI(t *testing.T, args ...string) cliResult {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return cliResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

// isolateHome keeps the developer's own configuration out of the test.
func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	return home
}

const touchLastArg = testsupport.TouchLastArg

type testEnv struct {
	dir        string
	workDir    string
	configPath string
	ffmpeg     string
	gifsicle   string
	source     string
}

func newTestEnv(t *testing.T, ffmpegBody, gifsicleBody string) *testEnv {
	t.Helper()
	isolateHome(t)
	cfg := testsupport.NewConfig(t, testsupport.WithStubbedTools(ffmpegBody, gifsicleBody))
	cfg.GIF.FPS = 12

	dir := t.TempDir()
	env := &testEnv{
		dir:        dir,
		workDir:    cfg.Paths.WorkDir,
		configPath: filepath.Join(dir, "config.toml"),
		ffmpeg:     cfg.Tools.FFmpeg,
		gifsicle:   cfg.Tools.Gifsicle,
		source:     filepath.Join(dir, "clip.mp4"),
	}
	testsupport.WriteFile(t, env.source, 4096)
	testsupport.WriteConfig(t, env.configPath, cfg)
	return env
}

func (e *testEnv) run(t *testing.T, args ...string) cliResult {
	t.Helper()
	return runCLI(t, append([]string{"--config", e.configPath}, args...)...)
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q, got:\n%s", needle, haystack)
	}
}
