package command

import (
	"strconv"

	"video2gif/internal/params"
)

const (
	baseFilterFormat     = "fps={fps},scale={size}:flags={resize}"
	subtitleFilterFormat = "subtitles=filename={escaped_subtitles}:charenc={charenc},"
	paletteUseFormat     = "paletteuse=diff_mode={diff_mode}:dither={dither}:bayer_scale={bayer_scale}:new={new}"

	// rectangle gives the best quality/size balance of the available diff
	// modes, so it is not a user option.
	paletteDiffMode = "rectangle"
)

// BaseFilters renders the frame-rate and scaling chain.
func BaseFilters(fps int, size params.Size, resize params.ResizeAlgorithm) string {
	return mustExpand(baseFilterFormat, map[Field]string{
		FieldFPS:    strconv.Itoa(fps),
		FieldSize:   size.String(),
		FieldResize: string(resize),
	})
}

// SubtitleFilter renders the burn-in clause that is prepended to the chain.
// escapedPath must already be escaped for filter-graph use.
func SubtitleFilter(escapedPath, charenc string) string {
	return mustExpand(subtitleFilterFormat, map[Field]string{
		FieldEscapedSub: escapedPath,
		FieldCharenc:    charenc,
	})
}

// PaletteUse renders the palette-apply options.
func PaletteUse(dither params.DitherMode, bayerScale int, newPerFrame bool) string {
	newFlag := "0"
	if newPerFrame {
		newFlag = "1"
	}
	return mustExpand(paletteUseFormat, map[Field]string{
		FieldDiffMode:   paletteDiffMode,
		FieldDither:     string(dither),
		FieldBayerScale: strconv.Itoa(bayerScale),
		FieldNew:        newFlag,
	})
}
