// Package params parses and normalizes the raw values a user supplies for a
// conversion: sizes, time offsets, integers, closed option sets, paths and
// subtitle character encodings.
//
// Every parser returns either a canonical value or an *InputError naming the
// offending input and the expected format. InputError wraps one of the
// sentinel errors below so callers can branch with errors.Is. Validation here
// runs before any external process is started.
package params
