package config

import (
	"os"

	"video2gif/internal/params"
)

const (
	defaultFPS       = 15
	defaultSize      = "640:0"
	defaultEncoding  = "UTF-8"
	defaultFFmpeg    = "ffmpeg"
	defaultGifsicle  = "gifsicle"
	defaultLogLevel  = "info"
	defaultLogFormat = "console"
)

// Default returns a Config populated with the built-in defaults.
func Default() Config {
	return Config{
		GIF: GIF{
			FPS:        defaultFPS,
			Size:       defaultSize,
			ResizeMode: string(params.ResizeLanczos),
			Dither:     string(params.DitherBayer),
			BayerScale: params.DefaultBayerScale,
			Mode:       string(params.ModeFull),
			FFmpegLog:  params.VerbosityQuiet.String(),
			Encoding:   defaultEncoding,
		},
		Tools: Tools{
			FFmpeg:   defaultFFmpeg,
			Gifsicle: defaultGifsicle,
		},
		Paths: Paths{
			WorkDir: os.TempDir(),
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
