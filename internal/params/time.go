package params

import (
	"math"
	"strconv"
	"strings"
)

const timeFormat = `seconds or "HH:MM:SS[.fraction]"`

// Offset is an optional, non-negative position in the source video.
type Offset struct {
	seconds float64
	set     bool
}

// At returns a set offset.
func At(seconds float64) Offset {
	return Offset{seconds: seconds, set: true}
}

// IsSet reports whether the offset was provided.
func (o Offset) IsSet() bool { return o.set }

// Seconds returns the offset in seconds; zero when unset.
func (o Offset) Seconds() float64 { return o.seconds }

func (o Offset) String() string {
	if !o.set {
		return ""
	}
	return strconv.FormatFloat(o.seconds, 'f', -1, 64)
}

// ParseTime converts "((HH:)MM:)SS(.fraction)" into a set Offset.
//
// The fractional digits are appended to the integral seconds as text before
// the float conversion so "00:00:01.050" yields 1.050 and not a value rebuilt
// from a parsed fraction.
func ParseTime(raw string) (Offset, error) {
	value := strings.TrimSpace(raw)
	invalid := func() (Offset, error) {
		return Offset{}, inputError(ErrInvalidTime, raw, timeFormat)
	}
	if value == "" || strings.Contains(value, ",") || strings.HasSuffix(value, ".") {
		return invalid()
	}

	fields := strings.Split(value, ":")
	if len(fields) > 3 {
		return invalid()
	}

	var hours, minutes int
	var ok bool
	switch len(fields) {
	case 3:
		if hours, ok = parseDigits(fields[0]); !ok {
			return invalid()
		}
		if minutes, ok = parseDigits(fields[1]); !ok {
			return invalid()
		}
	case 2:
		if minutes, ok = parseDigits(fields[0]); !ok {
			return invalid()
		}
	}

	secParts := strings.Split(fields[len(fields)-1], ".")
	if len(secParts) > 2 {
		return invalid()
	}
	seconds, ok := parseDigits(secParts[0])
	if !ok {
		return invalid()
	}
	fraction := "0"
	if len(secParts) == 2 {
		fraction = secParts[1]
		if !allDigits(fraction) {
			return invalid()
		}
	}

	total, ok := combineClock(hours, minutes, seconds)
	if !ok {
		return invalid()
	}
	parsed, err := strconv.ParseFloat(strconv.Itoa(total)+"."+fraction, 64)
	if err != nil {
		return invalid()
	}
	return At(parsed), nil
}

// combineClock returns hours*3600 + minutes*60 + seconds, or false when the
// sum does not fit in an int.
func combineClock(hours, minutes, seconds int) (int, bool) {
	if minutes > (math.MaxInt-seconds)/60 {
		return 0, false
	}
	rest := minutes*60 + seconds
	if hours > (math.MaxInt-rest)/3600 {
		return 0, false
	}
	return hours*3600 + rest, true
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// parseDigits accepts a non-empty run of ASCII digits that fits in an int.
func parseDigits(s string) (int, bool) {
	if !allDigits(s) {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
