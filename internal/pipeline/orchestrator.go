package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"video2gif/internal/artifacts"
	"video2gif/internal/command"
	"video2gif/internal/conversion"
	"video2gif/internal/escape"
	"video2gif/internal/fileutil"
	"video2gif/internal/logging"
	"video2gif/internal/services"
)

// Options configures an Orchestrator. Zero values fall back to production
// defaults except Runner, which is required.
type Options struct {
	Runner   Runner
	Tools    command.Tools
	WorkDir  string
	Escaper  escape.Policy
	Progress io.Writer
	Logger   *slog.Logger
	Clock    func() time.Time
	NewRunID func() string
}

// Orchestrator runs conversions one at a time.
type Orchestrator struct {
	runner   Runner
	tools    command.Tools
	workDir  string
	escaper  escape.Policy
	progress io.Writer
	logger   *slog.Logger
	clock    func() time.Time
	newRunID func() string
}

// Result describes a finished or failed run.
type Result struct {
	RunID       string
	Destination string
	Steps       []command.StepKind
	Final       State
	Elapsed     time.Duration
}

// New builds an Orchestrator from opts.
func New(opts Options) *Orchestrator {
	o := &Orchestrator{
		runner:   opts.Runner,
		tools:    opts.Tools,
		workDir:  opts.WorkDir,
		escaper:  opts.Escaper,
		progress: opts.Progress,
		logger:   logging.NewComponentLogger(opts.Logger, "pipeline"),
		clock:    opts.Clock,
		newRunID: opts.NewRunID,
	}
	if o.tools == (command.Tools{}) {
		o.tools = command.DefaultTools()
	}
	if o.workDir == "" {
		o.workDir = os.TempDir()
	}
	if o.escaper == nil {
		o.escaper = escape.Host()
	}
	if o.progress == nil {
		o.progress = io.Discard
	}
	if o.clock == nil {
		o.clock = time.Now
	}
	if o.newRunID == nil {
		o.newRunID = artifacts.NewRunID
	}
	return o
}

// Run validates req and drives it to completion. On failure every artifact
// and any output the run started writing is removed before Run returns.
func (o *Orchestrator) Run(ctx context.Context, req *conversion.Request) (Result, error) {
	started := o.clock()
	if o.runner == nil {
		return Result{}, services.Wrap(services.ErrConfiguration, "init", "runner", "no runner configured", nil)
	}
	if err := req.Validate(); err != nil {
		return Result{Final: StateFailed}, err
	}

	runID := o.newRunID()
	ctx = services.WithRunID(ctx, runID)
	logger := logging.WithContext(ctx, o.logger)

	palette := req.Palette()
	set := artifacts.New(o.workDir, started, runID, palette.Extension)
	primary := req.PrimaryOutput()
	if req.Optimize {
		set.Intermediate = primary
	}

	result := Result{RunID: runID, Destination: req.Destination, Final: StateInit}
	release, err := lockDestination(req.Destination)
	if err != nil {
		result.Final = StateFailed
		return result, err
	}
	defer func() {
		if err := release(); err != nil {
			logger.Warn("destination lock release failed",
				logging.String(logging.FieldEventType, "lock_release_failed"),
				logging.String("lock_path", LockPath(req.Destination)),
				logging.Error(err),
			)
		}
	}()

	logger.Debug("conversion started",
		logging.String(logging.FieldEventType, "run_start"),
		logging.String("source", req.Source),
		logging.String("destination", req.Destination),
		logging.Int("steps", req.Steps()),
		logging.String("palette", set.Palette),
	)

	r := &run{
		o:       o,
		req:     req,
		set:     set,
		primary: primary,
		values:  buildValues(req, set, primary, palette),
		logger:  logger,
		result:  &result,
	}

	state := StateInit
	for state != StateDone {
		next, err := r.advance(ctx, state)
		if err != nil {
			result.Final = StateFailed
			result.Elapsed = o.clock().Sub(started)
			r.sweep()
			logging.ErrorWithContext(logger, "conversion failed", "run_failed",
				logging.String("state", state.String()),
				logging.Error(err),
			)
			return result, err
		}
		state = next
	}

	result.Final = StateDone
	result.Elapsed = o.clock().Sub(started)
	logger.Debug("conversion finished",
		logging.String(logging.FieldEventType, "run_complete"),
		logging.Duration("elapsed", result.Elapsed),
	)
	return result, nil
}

type run struct {
	o       *Orchestrator
	req     *conversion.Request
	set     artifacts.Set
	primary string
	values  *command.Values
	logger  *slog.Logger
	result  *Result
	// outputs the run has started writing; only these are swept besides the
	// temporary artifacts, so a pre-existing destination survives an early
	// failure.
	touched []string
}

func (r *run) advance(ctx context.Context, state State) (State, error) {
	hasSubtitles := r.req.Subtitles.Kind() != conversion.SubtitlesNone
	switch state {
	case StateInit:
		switch {
		case hasSubtitles:
			return StateSubtitles, nil
		case r.req.OnePass:
			return StateCreate, nil
		default:
			return StatePalette, nil
		}

	case StateSubtitles:
		r.progress("Extracting subtitles...")
		kind := command.ExtractSubtitleTrack
		if r.req.Subtitles.Kind() == conversion.SubtitlesFile {
			kind = command.ExtractSubtitleFile
		}
		if err := r.step(ctx, kind, r.set.Subtitles); err != nil {
			return StateFailed, err
		}
		escaped := r.o.escaper.Escape(r.set.Subtitles)
		r.values.Set(command.FieldSubFilter, command.SubtitleFilter(escaped, r.req.Charset))
		if r.req.OnePass {
			return StateCreate, nil
		}
		return StatePalette, nil

	case StatePalette:
		r.progress("Creating palette...")
		if err := r.step(ctx, command.GeneratePalette, r.set.Palette); err != nil {
			return StateFailed, err
		}
		return StateCreate, nil

	case StateCreate:
		r.progress("Creating GIF...")
		kind := command.CreateGIFTwoPass
		if r.req.OnePass {
			kind = command.CreateGIFOnePass
		}
		r.touched = append(r.touched, r.primary)
		if err := r.step(ctx, kind, r.primary); err != nil {
			return StateFailed, err
		}
		if !r.req.OnePass {
			if err := r.remove(r.set.Palette); err != nil {
				return StateFailed, err
			}
		}
		return StateSubtitleCleanup, nil

	case StateSubtitleCleanup:
		if hasSubtitles {
			if err := r.remove(r.set.Subtitles); err != nil {
				return StateFailed, err
			}
		}
		if r.req.Optimize {
			return StateOptimize, nil
		}
		return StateDone, nil

	case StateOptimize:
		r.progress("Optimizing GIF...")
		r.touched = append(r.touched, r.req.Destination)
		if err := r.step(ctx, command.OptimizeGIF, r.req.Destination); err != nil {
			return StateFailed, err
		}
		if err := r.remove(r.primary); err != nil {
			return StateFailed, err
		}
		return StateDone, nil
	}
	return StateFailed, fmt.Errorf("pipeline: no transition from state %s", state)
}

// step renders and runs kind, then checks that output exists.
func (r *run) step(ctx context.Context, kind command.StepKind, output string) error {
	stepCtx := services.WithStep(ctx, kind.String())
	logger := logging.WithContext(stepCtx, r.o.logger)

	step, err := command.Build(kind, r.o.tools, r.values)
	if err != nil {
		return services.Wrap(services.ErrConfiguration, kind.String(), "render", "", err)
	}
	logger.Debug("step started",
		logging.String(logging.FieldEventType, "step_start"),
		logging.String("binary", step.Binary),
		logging.Int("arg_count", len(step.Args)),
	)
	started := r.o.clock()
	if err := r.o.runner.Run(stepCtx, step, r.req.Verbosity.ShowsToolOutput()); err != nil {
		return err
	}
	r.result.Steps = append(r.result.Steps, kind)
	if !fileutil.IsRegularFile(output) {
		return services.Wrap(services.ErrExternalTool, kind.String(), "verify output", output+" was not created", nil)
	}
	logger.Debug("step completed",
		logging.String(logging.FieldEventType, "step_complete"),
		logging.Duration("duration", r.o.clock().Sub(started)),
		logging.String("output", output),
	)
	return nil
}

func (r *run) remove(path string) error {
	if err := artifacts.Remove(path); err != nil {
		logging.ErrorWithContext(r.logger, "artifact removal failed", "cleanup_failed",
			logging.String("path", path),
			logging.Error(err),
		)
		return services.Wrap(services.ErrFilesystem, "cleanup", "remove", path, err)
	}
	r.logger.Debug("artifact removed",
		logging.String(logging.FieldEventType, "cleanup"),
		logging.String("path", path),
	)
	return nil
}

func (r *run) sweep() {
	// The intermediate GIF is only swept once the run has started writing it.
	set := r.set
	set.Intermediate = ""
	removed, err := set.Sweep(r.touched...)
	for _, path := range removed {
		r.logger.Debug("artifact swept",
			logging.String(logging.FieldEventType, "cleanup"),
			logging.String("path", path),
		)
	}
	if err != nil {
		logging.ErrorWithContext(r.logger, "artifact sweep incomplete", "cleanup_failed", logging.Error(err))
	}
}

func (r *run) progress(message string) {
	fmt.Fprintln(r.o.progress, message)
}

func buildValues(req *conversion.Request, set artifacts.Set, primary string, palette conversion.PaletteSettings) *command.Values {
	values := command.NewValues().
		Set(command.FieldLog, req.Verbosity.String()).
		Set(command.FieldCharenc, req.Charset).
		Set(command.FieldSource, req.Source).
		Set(command.FieldSubtitles, set.Subtitles).
		Set(command.FieldSubFilter, "").
		Set(command.FieldFilters, command.BaseFilters(req.FPS, req.Size, req.Resize)).
		Set(command.FieldMode, palette.StatsMode).
		Set(command.FieldPalette, set.Palette).
		Set(command.FieldPaletteUse, command.PaletteUse(req.Dither, req.BayerScale, palette.NewPerFrame)).
		Set(command.FieldGIF, primary).
		Set(command.FieldOptimized, req.Destination).
		SetTrim(req.TrimArgs())
	switch req.Subtitles.Kind() {
	case conversion.SubtitlesTrack:
		values.Set(command.FieldTrack, strconv.Itoa(req.Subtitles.Track))
	case conversion.SubtitlesFile:
		values.Set(command.FieldSubtitleSource, req.Subtitles.File)
	}
	return values
}
