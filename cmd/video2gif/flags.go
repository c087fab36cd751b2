package main

import (
	"errors"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"video2gif/internal/config"
	"video2gif/internal/conversion"
	"video2gif/internal/params"
	"video2gif/internal/services"
)

// Flag values parse through internal/params so bad input is rejected while
// cobra is still reading arguments.

type sizeValue struct{ target *params.Size }

func (v sizeValue) String() string {
	if v.target == nil {
		return ""
	}
	return v.target.String()
}

func (v sizeValue) Set(raw string) error {
	size, err := params.ParseSize(raw)
	if err != nil {
		return err
	}
	*v.target = size
	return nil
}

func (sizeValue) Type() string { return "WIDTH:HEIGHT" }

type offsetValue struct{ target *params.Offset }

func (v offsetValue) String() string {
	if v.target == nil || !v.target.IsSet() {
		return ""
	}
	return v.target.String()
}

func (v offsetValue) Set(raw string) error {
	offset, err := params.ParseTime(raw)
	if err != nil {
		return err
	}
	*v.target = offset
	return nil
}

func (offsetValue) Type() string { return "time" }

// intValue parses with a caller-supplied bound check.
type intValue struct {
	target *int
	parse  func(string) (int, error)
}

func (v intValue) String() string {
	if v.target == nil {
		return ""
	}
	return strconv.Itoa(*v.target)
}

func (v intValue) Set(raw string) error {
	value, err := v.parse(raw)
	if err != nil {
		return err
	}
	*v.target = value
	return nil
}

func (intValue) Type() string { return "int" }

type choiceValue[T ~string] struct {
	target *T
	parse  func(string) (T, error)
	kind   string
}

func (v choiceValue[T]) String() string {
	if v.target == nil {
		return ""
	}
	return string(*v.target)
}

func (v choiceValue[T]) Set(raw string) error {
	value, err := v.parse(raw)
	if err != nil {
		return err
	}
	*v.target = value
	return nil
}

func (v choiceValue[T]) Type() string { return v.kind }

type verbosityValue struct{ target *params.Verbosity }

func (v verbosityValue) String() string {
	if v.target == nil {
		return ""
	}
	return v.target.String()
}

func (v verbosityValue) Set(raw string) error {
	level, err := params.ParseVerbosity(raw)
	if err != nil {
		return err
	}
	*v.target = level
	return nil
}

func (verbosityValue) Type() string { return "level" }

type charsetValue struct{ target *string }

func (v charsetValue) String() string {
	if v.target == nil {
		return ""
	}
	return *v.target
}

func (v charsetValue) Set(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return errEmptyCharset
	}
	*v.target = params.NormalizeCharset(raw)
	return nil
}

var errEmptyCharset = errors.New("encoding must not be empty")

func (charsetValue) Type() string { return "charset" }

// convertOptions receives the conversion flags. Only flags the user actually
// set override the configuration.
type convertOptions struct {
	req      conversion.Request
	subTrack int
	subFile  string
}

func newConvertOptions() *convertOptions {
	return &convertOptions{req: conversion.Default()}
}

const (
	flagFPS        = "fps"
	flagSize       = "size"
	flagResize     = "resize-mode"
	flagAt         = "at"
	flagTo         = "to"
	flagDither     = "dither"
	flagBayerScale = "bayer-scale"
	flagMode       = "mode"
	flagLog        = "log"
	flagEncoding   = "encoding"
	flagOneStep    = "onestep"
	flagGifsicle   = "gifsicle"
	flagSubTrack   = "burn-sub-track"
	flagSubFile    = "burn-sub-file"
)

func (o *convertOptions) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	r := &o.req

	flags.VarP(intValue{target: &r.FPS, parse: params.ParseNonNegativeInt}, flagFPS, "f", "Frames per second")
	flags.VarP(sizeValue{target: &r.Size}, flagSize, "s", "Output size as WIDTH:HEIGHT (0 keeps the aspect ratio)")
	flags.VarP(choiceValue[params.ResizeAlgorithm]{target: &r.Resize, parse: params.ParseResize, kind: "algorithm"},
		flagResize, "r", "Resize algorithm: "+joinChoices(params.ResizeAlgorithms))
	flags.VarP(offsetValue{target: &r.Start}, flagAt, "a", "Start time (seconds or HH:MM:SS[.fraction])")
	flags.VarP(offsetValue{target: &r.End}, flagTo, "t", "End time (seconds or HH:MM:SS[.fraction])")
	flags.VarP(choiceValue[params.DitherMode]{target: &r.Dither, parse: params.ParseDither, kind: "dither"},
		flagDither, "d", "Dither algorithm: "+joinChoices(params.DitherModes))
	flags.VarP(intValue{target: &r.BayerScale, parse: params.ParseBayerScale}, flagBayerScale, "b", "Bayer scale (0-5)")
	flags.VarP(choiceValue[params.GenerationMode]{target: &r.Mode, parse: params.ParseMode, kind: "mode"},
		flagMode, "m", "Palette mode: "+joinChoices(params.GenerationModes))
	flags.VarP(verbosityValue{target: &r.Verbosity}, flagLog, "l",
		"ffmpeg log level: "+strings.Join(params.VerbosityNames(), ", "))
	flags.VarP(charsetValue{target: &r.Charset}, flagEncoding, "e", "Subtitle character encoding")
	flags.BoolVarP(&r.OnePass, flagOneStep, "o", false, "Convert in a single ffmpeg pass")
	flags.BoolVarP(&r.Optimize, flagGifsicle, "g", false, "Optimize the result with gifsicle")
	flags.Var(intValue{target: &o.subTrack, parse: params.ParseNonNegativeInt}, flagSubTrack, "Burn in the embedded subtitle track at this index")
	flags.StringVar(&o.subFile, flagSubFile, "", "Burn in subtitles from this file")

	cmd.MarkFlagsMutuallyExclusive(flagSubTrack, flagSubFile)
}

// request layers the changed flags over the configured defaults.
func (o *convertOptions) request(flags *pflag.FlagSet, cfg *config.Config, source, destination string) (conversion.Request, error) {
	req, err := requestFromConfig(cfg)
	if err != nil {
		return conversion.Request{}, err
	}
	req.Source = source
	req.Destination = destination

	changed := flags.Changed
	if changed(flagFPS) {
		req.FPS = o.req.FPS
	}
	if changed(flagSize) {
		req.Size = o.req.Size
	}
	if changed(flagResize) {
		req.Resize = o.req.Resize
	}
	if changed(flagAt) {
		req.Start = o.req.Start
	}
	if changed(flagTo) {
		req.End = o.req.End
	}
	if changed(flagDither) {
		req.Dither = o.req.Dither
	}
	if changed(flagBayerScale) {
		req.BayerScale = o.req.BayerScale
	}
	if changed(flagMode) {
		req.Mode = o.req.Mode
	}
	if changed(flagLog) {
		req.Verbosity = o.req.Verbosity
	}
	if changed(flagEncoding) {
		req.Charset = o.req.Charset
	}
	if changed(flagOneStep) {
		req.OnePass = o.req.OnePass
	}
	if changed(flagGifsicle) {
		req.Optimize = o.req.Optimize
	}
	switch {
	case changed(flagSubTrack):
		req.Subtitles = conversion.FromTrack(o.subTrack)
	case changed(flagSubFile):
		req.Subtitles = conversion.FromFile(o.subFile)
	}
	return req, nil
}

func requestFromConfig(cfg *config.Config) (conversion.Request, error) {
	req := conversion.Default()
	if cfg == nil {
		return req, nil
	}
	gif := cfg.GIF
	wrap := func(field string, err error) error {
		return services.Wrap(services.ErrConfiguration, "config", "apply gif defaults", field, err)
	}

	var err error
	req.FPS = gif.FPS
	req.BayerScale = gif.BayerScale
	if req.Size, err = params.ParseSize(gif.Size); err != nil {
		return req, wrap("size", err)
	}
	if req.Resize, err = params.ParseResize(gif.ResizeMode); err != nil {
		return req, wrap("resize_mode", err)
	}
	if req.Dither, err = params.ParseDither(gif.Dither); err != nil {
		return req, wrap("dither", err)
	}
	if req.Mode, err = params.ParseMode(gif.Mode); err != nil {
		return req, wrap("mode", err)
	}
	if req.Verbosity, err = params.ParseVerbosity(gif.FFmpegLog); err != nil {
		return req, wrap("ffmpeg_log", err)
	}
	req.Charset = params.NormalizeCharset(gif.Encoding)
	req.OnePass = gif.OneStep
	req.Optimize = gif.Optimize
	return req, nil
}

func joinChoices[T ~string](values []T) string {
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = string(v)
	}
	return strings.Join(names, ", ")
}
