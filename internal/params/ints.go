package params

import (
	"strconv"
	"strings"
)

// ParseNonNegativeInt parses a base-10 integer >= 0.
func ParseNonNegativeInt(raw string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, inputError(ErrInvalidInt, raw, "a non-negative integer")
	}
	if value < 0 {
		return 0, inputError(ErrInvalidInt, raw, "a non-negative integer")
	}
	return value, nil
}
