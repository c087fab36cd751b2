package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigInitAndValidate(t *testing.T) {
	isolateHome(t)
	target := filepath.Join(t.TempDir(), "nested", "config.toml")

	res := runCLI(t, "config", "init", "--path", target)
	if res.err != nil {
		t.Fatalf("config init: %v", res.err)
	}
	requireContains(t, res.stdout, "Wrote sample configuration to "+target)
	requireContains(t, res.stdout, "[gif] fps=15 size=640:0 resize_mode=lanczos")

	res = runCLI(t, "config", "init", "--path", target)
	if res.err == nil || !strings.Contains(res.err.Error(), "already exists") {
		t.Fatalf("expected existing file error, got %v", res.err)
	}
	if res := runCLI(t, "config", "init", "--path", target, "--overwrite"); res.err != nil {
		t.Fatalf("config init --overwrite: %v", res.err)
	}

	res = runCLI(t, "--config", target, "config", "validate")
	if res.err != nil {
		t.Fatalf("config validate: %v", res.err)
	}
	requireContains(t, res.stdout, "Config path: "+target)
	requireContains(t, res.stdout, "Configuration valid")
	requireContains(t, res.stdout, "Tools: ffmpeg=ffmpeg gifsicle=gifsicle")
	requireContains(t, res.stdout, "Work directory: ")
	if strings.Contains(res.stdout, "did not exist") {
		t.Fatalf("unexpected defaults notice:\n%s", res.stdout)
	}
}

func TestConfigValidateWithoutFile(t *testing.T) {
	isolateHome(t)
	res := runCLI(t, "config", "validate")
	if res.err != nil {
		t.Fatalf("config validate: %v", res.err)
	}
	requireContains(t, res.stdout, "Config file did not exist; defaults were used")
}

func TestConfigValidateRejectsBadValues(t *testing.T) {
	isolateHome(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[gif]\nbayer_scale = 7\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if res := runCLI(t, "--config", path, "config", "validate"); res.err == nil {
		t.Fatal("expected invalid config to fail")
	}
}

func TestConfigValidateReportsConfiguredValues(t *testing.T) {
	env := newTestEnv(t, touchLastArg, touchLastArg)

	res := env.run(t, "config", "validate")
	if res.err != nil {
		t.Fatalf("config validate: %v", res.err)
	}
	requireContains(t, res.stdout, "[gif] fps=12 ")
	requireContains(t, res.stdout, "ffmpeg="+env.ffmpeg)
	requireContains(t, res.stdout, "Work directory: "+env.workDir)
}

func TestCheckReportsTools(t *testing.T) {
	env := newTestEnv(t, "echo 'ffmpeg version 7.1-test'\n", "echo 'LCDF Gifsicle 1.95'\n")

	res := env.run(t, "check")
	if res.err != nil {
		t.Fatalf("check: %v\n%s", res.err, res.stdout)
	}
	requireContains(t, res.stdout, "== video2gif dependencies ==")
	requireContains(t, res.stdout, "ffmpeg version 7.1-test")
	requireContains(t, res.stdout, "LCDF Gifsicle 1.95")
	requireContains(t, res.stdout, "Work directory")
	requireContains(t, res.stdout, "[OK] ready to convert")
}

func TestCheckReportsMissingTools(t *testing.T) {
	env := newTestEnv(t, touchLastArg, touchLastArg)
	if err := os.Remove(env.gifsicle); err != nil {
		t.Fatalf("remove gifsicle: %v", err)
	}

	res := env.run(t, "check")
	if res.err != nil {
		t.Fatalf("optional gifsicle should not fail check: %v", res.err)
	}
	requireContains(t, res.stdout, "[WARN]")
	requireContains(t, res.stdout, "(optional)")

	res = env.run(t, "check", "--gifsicle")
	if res.err == nil {
		t.Fatal("expected check --gifsicle to fail without gifsicle")
	}
	requireContains(t, res.stdout, "[ERROR] 1 required check(s) failed")
}

func TestRenderTablePadsShortRows(t *testing.T) {
	out := renderTable([]string{"A", "B"}, [][]string{{"only"}}, nil)
	requireContains(t, out, "only")
	if renderTable(nil, nil, nil) != "" {
		t.Fatal("expected empty render without headers")
	}
}
