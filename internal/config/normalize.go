package config

import (
	"fmt"
	"os"
	"strings"

	"video2gif/internal/params"
)

func (c *Config) normalize() error {
	c.normalizeGIF()
	c.normalizeTools()
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeGIF() {
	c.GIF.Size = strings.TrimSpace(c.GIF.Size)
	if c.GIF.Size == "" {
		c.GIF.Size = defaultSize
	}
	c.GIF.ResizeMode = lowerOr(c.GIF.ResizeMode, string(params.ResizeLanczos))
	c.GIF.Dither = lowerOr(c.GIF.Dither, string(params.DitherBayer))
	c.GIF.Mode = lowerOr(c.GIF.Mode, string(params.ModeFull))
	c.GIF.FFmpegLog = lowerOr(c.GIF.FFmpegLog, params.VerbosityQuiet.String())
	if strings.TrimSpace(c.GIF.Encoding) == "" {
		c.GIF.Encoding = defaultEncoding
	}
	c.GIF.Encoding = params.NormalizeCharset(c.GIF.Encoding)
}

func (c *Config) normalizeTools() {
	c.Tools.FFmpeg = strings.TrimSpace(c.Tools.FFmpeg)
	if c.Tools.FFmpeg == "" {
		c.Tools.FFmpeg = defaultFFmpeg
	}
	c.Tools.Gifsicle = strings.TrimSpace(c.Tools.Gifsicle)
	if c.Tools.Gifsicle == "" {
		c.Tools.Gifsicle = defaultGifsicle
	}
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.WorkDir) == "" {
		c.Paths.WorkDir = os.TempDir()
	}
	if c.Paths.WorkDir, err = expandPath(strings.TrimSpace(c.Paths.WorkDir)); err != nil {
		return fmt.Errorf("paths.work_dir: %w", err)
	}
	if c.Paths.FontsDir, err = expandPath(strings.TrimSpace(c.Paths.FontsDir)); err != nil {
		return fmt.Errorf("paths.fonts_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = lowerOr(c.Logging.Format, defaultLogFormat)
	c.Logging.Level = lowerOr(c.Logging.Level, defaultLogLevel)
}

func lowerOr(value, fallback string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return fallback
	}
	return value
}
