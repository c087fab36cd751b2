package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"video2gif/internal/command"
	"video2gif/internal/escape"
	"video2gif/internal/logging"
	"video2gif/internal/pipeline"
	"video2gif/internal/preflight"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	ctx := newCommandContext(&configFlag)
	opts := newConvertOptions()

	rootCmd := &cobra.Command{
		Use:   "video2gif [flags] SOURCE DESTINATION",
		Short: "Convert a video clip into an animated GIF",
		Long: "video2gif drives ffmpeg (and optionally gifsicle) to turn SOURCE into an\n" +
			"animated GIF at DESTINATION, optionally burning in subtitles.",
		Version:       version,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, ctx, opts, args[0], args[1])
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	opts.register(rootCmd)

	rootCmd.AddCommand(newCheckCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}

func runConvert(cmd *cobra.Command, ctx *commandContext, opts *convertOptions, source, destination string) error {
	started := time.Now()
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	req, err := opts.request(cmd.Flags(), cfg, source, destination)
	if err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return err
	}

	level := cfg.Logging.Level
	if req.Verbosity.ShowsToolOutput() {
		level = "debug"
	}
	logger, err := logging.New(logging.Options{
		Level:  level,
		Format: cfg.Logging.Format,
		Writer: cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}

	fail := func(err error) error {
		errOut := cmd.ErrOrStderr()
		fmt.Fprintln(errOut, "An error occurred!")
		fmt.Fprintln(errOut, err)
		fmt.Fprintf(errOut, "Time elapsed -> %s\n", pipeline.FormatElapsed(time.Since(started)))
		return &reportedError{err: err}
	}

	if err := preflight.Verify(cfg, req.Optimize); err != nil {
		return fail(err)
	}

	runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	orchestrator := pipeline.New(pipeline.Options{
		Runner:   pipeline.NewExecRunner(cmd.ErrOrStderr(), cfg.Paths.FontsDir, logger),
		Tools:    command.Tools{FFmpeg: cfg.Tools.FFmpeg, Gifsicle: cfg.Tools.Gifsicle},
		WorkDir:  cfg.Paths.WorkDir,
		Escaper:  escape.Host(),
		Progress: cmd.OutOrStdout(),
		Logger:   logger,
	})
	if _, err := orchestrator.Run(runCtx, &req); err != nil {
		return fail(err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Finished - Time elapsed -> %s\n", pipeline.FormatElapsed(time.Since(started)))
	return nil
}
