package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"video2gif/internal/command"
	"video2gif/internal/logging"
	"video2gif/internal/services"
)

var commandContext = exec.CommandContext

// Runner executes one rendered step and blocks until it exits.
type Runner interface {
	Run(ctx context.Context, step command.Step, showOutput bool) error
}

// ExecRunner runs steps as child processes.
type ExecRunner struct {
	output   io.Writer
	fontsDir string
	goos     string
	logger   *slog.Logger
}

// NewExecRunner returns a runner that copies child output to output when a
// step asks for it. fontsDir, when set, is exported to the child's fontconfig
// on Windows so subtitle rendering finds its fonts.
func NewExecRunner(output io.Writer, fontsDir string, logger *slog.Logger) *ExecRunner {
	if output == nil {
		output = os.Stderr
	}
	return &ExecRunner{
		output:   output,
		fontsDir: strings.TrimSpace(fontsDir),
		goos:     runtime.GOOS,
		logger:   logging.NewComponentLogger(logger, "runner"),
	}
}

// Run starts step and waits for it. Without showOutput the child's stdout and
// stderr go to the null device.
func (r *ExecRunner) Run(ctx context.Context, step command.Step, showOutput bool) error {
	cmd := commandContext(ctx, step.Binary, step.Args...) //nolint:gosec
	cmd.Env = childEnv(r.goos, r.fontsDir, os.Environ())
	if showOutput {
		logging.WithContext(ctx, r.logger).Debug(
			"running command",
			logging.String(logging.FieldEventType, "command_start"),
			logging.String("command", step.CommandLine()),
		)
		cmd.Stdout = r.output
		cmd.Stderr = r.output
	}

	err := cmd.Run()
	if showOutput {
		fmt.Fprintln(r.output)
	}
	if err == nil {
		return nil
	}

	tool := filepath.Base(step.Binary)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return services.Wrap(services.ErrExternalTool, step.Kind.String(), "run", tool+" interrupted", ctxErr)
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return services.Wrap(
			services.ErrExternalTool,
			step.Kind.String(),
			"run",
			fmt.Sprintf("%s exited with status %d", tool, exitErr.ExitCode()),
			err,
		)
	}
	return services.Wrap(services.ErrExternalTool, step.Kind.String(), "start", tool, err)
}

// childEnv returns the environment for a child process, or nil to inherit the
// parent's unchanged.
func childEnv(goos, fontsDir string, base []string) []string {
	if goos != "windows" || fontsDir == "" {
		return nil
	}
	env := append([]string(nil), base...)
	return append(env,
		"FC_CONFIG_DIR="+fontsDir,
		"FONTCONFIG_PATH="+fontsDir,
		"FONTCONFIG_FILE=fonts.conf",
	)
}

var _ Runner = (*ExecRunner)(nil)
