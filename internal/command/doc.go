// Package command renders the fixed set of external invocations a conversion
// can run.
//
// Each StepKind owns one argv template. Tokens carry {name} placeholders that
// are filled from Values; the bare {trim} token splices the trim-window
// fragment (zero or more arguments). A placeholder without a value is a
// programming error and Build reports ErrMissingField instead of emitting a
// half-rendered command.
package command
