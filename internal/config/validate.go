package config

import (
	"errors"
	"fmt"

	"video2gif/internal/params"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateGIF(); err != nil {
		return err
	}
	if err := c.validateTools(); err != nil {
		return err
	}
	if err := c.validatePaths(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateGIF() error {
	if c.GIF.FPS < 0 {
		return fmt.Errorf("gif.fps must be non-negative, got %d", c.GIF.FPS)
	}
	if _, err := params.ParseSize(c.GIF.Size); err != nil {
		return fmt.Errorf("gif.size: %w", err)
	}
	if _, err := params.ParseResize(c.GIF.ResizeMode); err != nil {
		return fmt.Errorf("gif.resize_mode: %w", err)
	}
	if _, err := params.ParseDither(c.GIF.Dither); err != nil {
		return fmt.Errorf("gif.dither: %w", err)
	}
	if err := params.CheckBayerScale(c.GIF.BayerScale); err != nil {
		return fmt.Errorf("gif.bayer_scale: %w", err)
	}
	if _, err := params.ParseMode(c.GIF.Mode); err != nil {
		return fmt.Errorf("gif.mode: %w", err)
	}
	if _, err := params.ParseVerbosity(c.GIF.FFmpegLog); err != nil {
		return fmt.Errorf("gif.ffmpeg_log: %w", err)
	}
	if c.GIF.Encoding == "" {
		return errors.New("gif.encoding must be set")
	}
	return nil
}

func (c *Config) validateTools() error {
	if c.Tools.FFmpeg == "" {
		return errors.New("tools.ffmpeg must be set")
	}
	if c.Tools.Gifsicle == "" {
		return errors.New("tools.gifsicle must be set")
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.WorkDir == "" {
		return errors.New("paths.work_dir must be set")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (want console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q (want debug, info, warn or error)", c.Logging.Level)
	}
	return nil
}
