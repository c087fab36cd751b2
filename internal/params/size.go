package params

import (
	"strconv"
	"strings"
)

// KeepAspect tells the transcoder to derive a dimension from the aspect ratio.
const KeepAspect = -1

const sizeFormat = "WIDTH:HEIGHT with non-negative integers (0 keeps the ratio)"

// Size is a target frame size. Either side may be KeepAspect.
type Size struct {
	Width  int
	Height int
}

// String renders the size in the transcoder's WIDTH:HEIGHT form.
func (s Size) String() string {
	return strconv.Itoa(s.Width) + ":" + strconv.Itoa(s.Height)
}

// ParseSize parses "W:H". A zero on either side becomes KeepAspect.
func ParseSize(raw string) (Size, error) {
	value := strings.TrimSpace(raw)
	fields := strings.Split(value, ":")
	if value == "" || len(fields) != 2 {
		return Size{}, inputError(ErrInvalidSize, raw, sizeFormat)
	}
	width, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil || width < 0 {
		return Size{}, inputError(ErrInvalidSize, raw, sizeFormat)
	}
	height, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil || height < 0 {
		return Size{}, inputError(ErrInvalidSize, raw, sizeFormat)
	}
	if width == 0 {
		width = KeepAspect
	}
	if height == 0 {
		height = KeepAspect
	}
	return Size{Width: width, Height: height}, nil
}
